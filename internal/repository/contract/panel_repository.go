package contract

import (
	"context"

	"panel-review-be/internal/entity"
	"panel-review-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PanelRepository interface {
	Create(ctx context.Context, panel *entity.Panel) error
	Update(ctx context.Context, panel *entity.Panel) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Panel, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Panel, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Panel, error)
}
