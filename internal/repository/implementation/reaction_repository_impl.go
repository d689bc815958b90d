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

type ReactionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReactionMapper
}

func NewReactionRepository(db *gorm.DB) contract.ReactionRepository {
	return &ReactionRepositoryImpl{
		db:     db,
		mapper: mapper.NewReactionMapper(),
	}
}

func (r *ReactionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ReactionRepositoryImpl) Create(ctx context.Context, reaction *entity.Reaction) error {
	m := r.mapper.ToModel(reaction)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*reaction = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReactionRepositoryImpl) Update(ctx context.Context, reaction *entity.Reaction) error {
	m := r.mapper.ToModel(reaction)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*reaction = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReactionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Reaction{}, id).Error
}

func (r *ReactionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Reaction, error) {
	var m model.Reaction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ReactionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Reaction, error) {
	var models []*model.Reaction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ReactionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Reaction{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

