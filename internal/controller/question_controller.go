package controller

import (
	"panel-review-be/internal/dto"
	"panel-review-be/internal/pkg/apperror"
	"panel-review-be/internal/pkg/serverutils"
	"panel-review-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQuestionController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
	TaggingPool(ctx *fiber.Ctx) error
	Distribute(ctx *fiber.Ctx) error
}

type questionController struct {
	questionService service.IQuestionService
}

func NewQuestionController(questionService service.IQuestionService) IQuestionController {
	return &questionController{
		questionService: questionService,
	}
}

func (c *questionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/panel/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post(":panelId/questions", c.Submit)
	h.Get(":panelId/questions", c.ListMine)
	h.Get(":panelId/tagging", c.TaggingPool)
	h.Post(":panelId/distribute", c.Distribute)
}

func (c *questionController) Submit(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	panelId, err := panelIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SubmitQuestionsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Wrap(apperror.CodeValidation, "invalid request body", err)
	}
	req.PanelId = panelId

	if err := serverutils.ValidateRequest(req); err != nil {
		return apperror.Wrap(apperror.CodeValidation, "invalid submission", err)
	}

	res, err := c.questionService.SubmitQuestions(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success submit questions", res))
}

func (c *questionController) ListMine(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	panelId, err := panelIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.questionService.GetSubmitted(ctx.Context(), userId, panelId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list questions", res))
}

func (c *questionController) TaggingPool(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	panelId, err := panelIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.questionService.GetTaggingPool(ctx.Context(), userId, panelId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success load tagging pool", res))
}

func (c *questionController) Distribute(ctx *fiber.Ctx) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	panelId, err := panelIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.questionService.Distribute(ctx.Context(), panelId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success distribute questions", res))
}
