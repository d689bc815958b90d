package controller

import (
	"panel-review-be/internal/dto"
	"panel-review-be/internal/pkg/apperror"
	"panel-review-be/internal/pkg/serverutils"
	"panel-review-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IVotingController interface {
	RegisterRoutes(r fiber.Router)
	VotingSet(ctx *fiber.Ctx) error
	SubmitVote(ctx *fiber.Ctx) error
}

type votingController struct {
	votingService service.IVotingService
}

func NewVotingController(votingService service.IVotingService) IVotingController {
	return &votingController{
		votingService: votingService,
	}
}

func (c *votingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/panel/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get(":panelId/questions/voting", c.VotingSet)
	h.Post(":panelId/vote", c.SubmitVote)
}

func (c *votingController) VotingSet(ctx *fiber.Ctx) error {
	panelId, err := panelIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.votingService.GetRepresentativeSet(ctx.Context(), panelId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success load voting set", res))
}

func (c *votingController) SubmitVote(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	panelId, err := panelIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SubmitVoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Wrap(apperror.CodeValidation, "invalid request body", err)
	}
	req.PanelId = panelId

	if err := serverutils.ValidateRequest(req); err != nil {
		return apperror.Wrap(apperror.CodeValidation, "invalid ranking", err)
	}

	res, err := c.votingService.SubmitVoteOrder(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success submit ranking", res))
}
