package contract

import (
	"context"

	"panel-review-be/internal/entity"
	"panel-review-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TaggingAssignmentRepository interface {
	Upsert(ctx context.Context, assignment *entity.TaggingAssignment) error
	DeleteByPanel(ctx context.Context, panelId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TaggingAssignment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TaggingAssignment, error)
}
