package controller

import (
	"panel-review-be/internal/dto"
	"panel-review-be/internal/pkg/apperror"
	"panel-review-be/internal/pkg/serverutils"
	"panel-review-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPanelController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type panelController struct {
	panelService service.IPanelService
}

func NewPanelController(panelService service.IPanelService) IPanelController {
	return &panelController{
		panelService: panelService,
	}
}

func (c *panelController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/panel/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":panelId", c.Show)
}

func (c *panelController) Create(ctx *fiber.Ctx) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	var req dto.CreatePanelRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Wrap(apperror.CodeValidation, "invalid request body", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return apperror.Wrap(apperror.CodeValidation, "invalid panel", err)
	}

	res, err := c.panelService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create panel", res))
}

func (c *panelController) List(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)
	res, err := c.panelService.List(ctx.Context(), role)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list panels", res))
}

func (c *panelController) Show(ctx *fiber.Ctx) error {
	panelId, err := panelIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.panelService.Show(ctx.Context(), panelId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show panel", res))
}
