package implementation

import (
	"context"
	"errors"

	"panel-review-be/internal/entity"
	"panel-review-be/internal/mapper"
	"panel-review-be/internal/model"
	"panel-review-be/internal/repository/contract"
	"panel-review-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MetricRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MetricMapper
}

func NewMetricRepository(db *gorm.DB) contract.MetricRepository {
	return &MetricRepositoryImpl{
		db:     db,
		mapper: mapper.NewMetricMapper(),
	}
}

func (r *MetricRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MetricRepositoryImpl) Upsert(ctx context.Context, metric *entity.Metric) error {
	m := r.mapper.ToModel(metric)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "panel_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"question_stage_score", "tag_stage_score", "vote_stage_score",
			"entered_questions_total_score", "final_total_score", "computed_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*metric = *r.mapper.ToEntity(m)
	return nil
}

func (r *MetricRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Metric, error) {
	var m model.Metric
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MetricRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Metric, error) {
	var models []*model.Metric
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MetricRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Metric{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
