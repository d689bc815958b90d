package contract

import (
	"context"

	"panel-review-be/internal/entity"
	"panel-review-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SimilarityGroupRepository interface {
	Create(ctx context.Context, group *entity.SimilarityGroup) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SimilarityGroup, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SimilarityGroup, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
