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
)

type SimilarityGroupRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SimilarityGroupMapper
}

func NewSimilarityGroupRepository(db *gorm.DB) contract.SimilarityGroupRepository {
	return &SimilarityGroupRepositoryImpl{
		db:     db,
		mapper: mapper.NewSimilarityGroupMapper(),
	}
}

func (r *SimilarityGroupRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SimilarityGroupRepositoryImpl) Create(ctx context.Context, group *entity.SimilarityGroup) error {
	m := r.mapper.ToModel(group)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*group = *r.mapper.ToEntity(m)
	return nil
}

func (r *SimilarityGroupRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SimilarityGroup{}, id).Error
}

func (r *SimilarityGroupRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SimilarityGroup, error) {
	var m model.SimilarityGroup
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SimilarityGroupRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SimilarityGroup, error) {
	var models []*model.SimilarityGroup
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SimilarityGroupRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SimilarityGroup{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
