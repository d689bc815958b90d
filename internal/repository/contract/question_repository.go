package contract

import (
	"context"

	"panel-review-be/internal/entity"
	"panel-review-be/internal/repository/specification"

	"github.com/google/uuid"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	CreateBatch(ctx context.Context, questions []*entity.Question) error
	Update(ctx context.Context, question *entity.Question) error
	// AdjustCounters applies atomic relative deltas to the reaction counters.
	// Deltas may be negative; invoked under a row lock held by the caller.
	AdjustCounters(ctx context.Context, id uuid.UUID, likeDelta, dislikeDelta, flagDelta int) error
	// SetGroup assigns (or clears, with nil) the similarity group of a question.
	SetGroup(ctx context.Context, id uuid.UUID, groupId *uuid.UUID) error
	DeleteByPanelAndUser(ctx context.Context, panelId, userId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Question, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Question, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
