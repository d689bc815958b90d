package contract

import (
	"context"

	"panel-review-be/internal/entity"
	"panel-review-be/internal/repository/specification"
)

type VoteOrderRepository interface {
	// Upsert stores the order, replacing any existing row for the same
	// (panel, user) pair.
	Upsert(ctx context.Context, order *entity.VoteOrder) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VoteOrder, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VoteOrder, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
