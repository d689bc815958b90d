package controller

import (
	"panel-review-be/internal/constant"
	"panel-review-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func currentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return userId, nil
}

func panelIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("panelId"))
	if err != nil {
		return uuid.Nil, apperror.New(apperror.CodeValidation, "invalid panel id")
	}
	return id, nil
}

func requireAdmin(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)
	if role != constant.RoleAdmin {
		return apperror.New(apperror.CodeForbidden, "admin role required")
	}
	return nil
}
