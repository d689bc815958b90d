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

type PanelRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PanelMapper
}

func NewPanelRepository(db *gorm.DB) contract.PanelRepository {
	return &PanelRepositoryImpl{
		db:     db,
		mapper: mapper.NewPanelMapper(),
	}
}

func (r *PanelRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PanelRepositoryImpl) Create(ctx context.Context, panel *entity.Panel) error {
	m := r.mapper.ToModel(panel)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*panel = *r.mapper.ToEntity(m)
	return nil
}

func (r *PanelRepositoryImpl) Update(ctx context.Context, panel *entity.Panel) error {
	m := r.mapper.ToModel(panel)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*panel = *r.mapper.ToEntity(m)
	return nil
}

func (r *PanelRepositoryImpl) Get(ctx context.Context, id uuid.UUID) (*entity.Panel, error) {
	return r.FindOne(ctx, specification.ByID{ID: id})
}

func (r *PanelRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Panel, error) {
	var m model.Panel
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PanelRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Panel, error) {
	var models []*model.Panel
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PanelRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Panel{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
