package controller

import (
	"panel-review-be/internal/dto"
	"panel-review-be/internal/pkg/apperror"
	"panel-review-be/internal/pkg/serverutils"
	"panel-review-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITaggingController interface {
	RegisterRoutes(r fiber.Router)
	React(ctx *fiber.Ctx) error
	MarkSimilar(ctx *fiber.Ctx) error
	Undo(ctx *fiber.Ctx) error
}

type taggingController struct {
	taggingService service.ITaggingService
}

func NewTaggingController(taggingService service.ITaggingService) ITaggingController {
	return &taggingController{
		taggingService: taggingService,
	}
}

func (c *taggingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/panel/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post(":panelId/tagging", c.React)
	h.Post(":panelId/mark_similar", c.MarkSimilar)
	h.Post(":panelId/tagging/undo", c.Undo)
}

func (c *taggingController) React(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	panelId, err := panelIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.ReactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Wrap(apperror.CodeValidation, "invalid request body", err)
	}
	req.PanelId = panelId

	if err := serverutils.ValidateRequest(req); err != nil {
		return apperror.Wrap(apperror.CodeValidation, "invalid reaction", err)
	}

	res, err := c.taggingService.React(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success record reaction", res))
}

func (c *taggingController) MarkSimilar(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	panelId, err := panelIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.MarkSimilarRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Wrap(apperror.CodeValidation, "invalid request body", err)
	}
	req.PanelId = panelId

	if err := serverutils.ValidateRequest(req); err != nil {
		return apperror.Wrap(apperror.CodeValidation, "invalid merge request", err)
	}

	res, err := c.taggingService.MarkSimilar(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success mark questions similar", res))
}

func (c *taggingController) Undo(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	panelId, err := panelIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.taggingService.Undo(ctx.Context(), userId, panelId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success undo merge", res))
}
