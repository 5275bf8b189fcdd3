package controller

import (
	"errors"
	"fmt"

	"ai-legaldoc-be/internal/dto"
	"ai-legaldoc-be/internal/pkg/serverutils"
	"ai-legaldoc-be/internal/service"
	"ai-legaldoc-be/pkg/report"

	"github.com/gofiber/fiber/v2"
)

type IReportController interface {
	RegisterRoutes(r fiber.Router)
	Download(ctx *fiber.Ctx) error
	Email(ctx *fiber.Ctx) error
}

type reportController struct {
	reportService service.IReportService
}

func NewReportController(reportService service.IReportService) IReportController {
	return &reportController{
		reportService: reportService,
	}
}

func (c *reportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/report/v1")
	h.Get("download", c.Download)
	h.Post("email", c.Email)
}

func (c *reportController) Download(ctx *fiber.Ctx) error {
	sessionID := serverutils.SessionID(ctx)

	res, err := c.reportService.Download(ctx.Context(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrNoAnalysis) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "No document analyzed yet"))
		}
		return err
	}

	ctx.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", res.Filename))
	return ctx.SendString(res.Content)
}

func (c *reportController) Email(ctx *fiber.Ctx) error {
	sessionID := serverutils.SessionID(ctx)

	var req dto.SendReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	err := c.reportService.Email(ctx.Context(), sessionID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrMissingRecipient):
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Recipient email is required"))
		case errors.Is(err, service.ErrNoAnalysis):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "No document analyzed yet"))
		case errors.Is(err, report.ErrDeliveryFailed), errors.Is(err, report.ErrServerUnreachable):
			return ctx.Status(fiber.StatusBadGateway).JSON(serverutils.ErrorResponse(502, err.Error()))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Report email sent", nil))
}
