package controller

import (
	"errors"
	"io"

	"ai-legaldoc-be/internal/pkg/serverutils"
	"ai-legaldoc-be/internal/service"
	"ai-legaldoc-be/pkg/engine/analysis"
	"ai-legaldoc-be/pkg/store"
	"ai-legaldoc-be/pkg/upload"

	"github.com/gofiber/fiber/v2"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
}

func NewDocumentController(documentService service.IDocumentService) IDocumentController {
	return &documentController{
		documentService: documentService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Post("upload", c.Upload)
}

func (c *documentController) Upload(ctx *fiber.Ctx) error {
	sessionID := serverutils.SessionID(ctx)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Document file is required"))
	}

	f, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to open file"))
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to read file"))
	}

	candidate := upload.File{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     content,
	}

	res, err := c.documentService.Analyze(ctx.Context(), sessionID, candidate)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrInvalidType), errors.Is(err, upload.ErrTooLarge):
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		case errors.Is(err, store.ErrBusy):
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, "An upload is already being processed"))
		case errors.Is(err, analysis.ErrUnavailable):
			return ctx.Status(fiber.StatusBadGateway).JSON(serverutils.ErrorResponse(502, "Document analysis is currently unavailable"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Document analyzed", res))
}
