package controller

import (
	"errors"

	"ai-legaldoc-be/internal/dto"
	"ai-legaldoc-be/internal/pkg/serverutils"
	"ai-legaldoc-be/internal/service"
	"ai-legaldoc-be/pkg/store"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("ask", c.Ask)
	h.Get("history", c.History)
}

func (c *chatController) Ask(ctx *fiber.Ctx) error {
	sessionID := serverutils.SessionID(ctx)

	var req dto.AskChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Ask(ctx.Context(), sessionID, req.Question)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyQuestion):
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Question is required"))
		case errors.Is(err, store.ErrBusy):
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, "A question is already being answered"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	sessionID := serverutils.SessionID(ctx)

	res, err := c.chatService.History(ctx.Context(), sessionID)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}
