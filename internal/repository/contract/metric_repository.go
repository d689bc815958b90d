package contract

import (
	"context"

	"panel-review-be/internal/entity"
	"panel-review-be/internal/repository/specification"
)

type MetricRepository interface {
	// Upsert stores the snapshot, replacing any existing row for the same
	// (panel, user) pair.
	Upsert(ctx context.Context, metric *entity.Metric) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Metric, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Metric, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
