package contract

import (
	"context"

	"panel-review-be/internal/entity"
	"panel-review-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ReactionRepository interface {
	Create(ctx context.Context, reaction *entity.Reaction) error
	Update(ctx context.Context, reaction *entity.Reaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Reaction, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Reaction, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
