package controller

import (
	"panel-review-be/internal/pkg/apperror"
	"panel-review-be/internal/pkg/serverutils"
	"panel-review-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMetricController interface {
	RegisterRoutes(r fiber.Router)
	PanelMetrics(ctx *fiber.Ctx) error
	MyMetric(ctx *fiber.Ctx) error
}

type metricController struct {
	metricService service.IMetricService
}

func NewMetricController(metricService service.IMetricService) IMetricController {
	return &metricController{
		metricService: metricService,
	}
}

func (c *metricController) RegisterRoutes(r fiber.Router) {
	panel := r.Group("/panel/v1")
	panel.Use(serverutils.JwtMiddleware)
	panel.Get(":panelId/metrics", c.PanelMetrics)

	metric := r.Group("/metric/v1")
	metric.Use(serverutils.JwtMiddleware)
	metric.Get("me", c.MyMetric)
}

func (c *metricController) PanelMetrics(ctx *fiber.Ctx) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	panelId, err := panelIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.metricService.GetPanelMetrics(ctx.Context(), panelId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success load panel metrics", res))
}

func (c *metricController) MyMetric(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	panelId, err := uuid.Parse(ctx.Query("panel_id"))
	if err != nil {
		return apperror.New(apperror.CodeValidation, "panel_id query parameter is required")
	}

	res, err := c.metricService.GetUserMetric(ctx.Context(), panelId, userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success load metric", res))
}
