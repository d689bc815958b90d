package implementation

import (
	"context"
	"errors"

	"panel-review-be/internal/entity"
	"panel-review-be/internal/mapper"
	"panel-review-be/internal/model"
	"panel-review-be/internal/repository/contract"
	"panel-review-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaggingAssignmentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TaggingAssignmentMapper
}

func NewTaggingAssignmentRepository(db *gorm.DB) contract.TaggingAssignmentRepository {
	return &TaggingAssignmentRepositoryImpl{
		db:     db,
		mapper: mapper.NewTaggingAssignmentMapper(),
	}
}

func (r *TaggingAssignmentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TaggingAssignmentRepositoryImpl) Upsert(ctx context.Context, assignment *entity.TaggingAssignment) error {
	m := r.mapper.ToModel(assignment)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "panel_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"question_ids"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*assignment = *r.mapper.ToEntity(m)
	return nil
}

func (r *TaggingAssignmentRepositoryImpl) DeleteByPanel(ctx context.Context, panelId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("panel_id = ?", panelId).
		Delete(&model.TaggingAssignment{}).Error
}

func (r *TaggingAssignmentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TaggingAssignment, error) {
	var m model.TaggingAssignment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TaggingAssignmentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TaggingAssignment, error) {
	var models []*model.TaggingAssignment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
