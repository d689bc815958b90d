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

type VoteOrderRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VoteOrderMapper
}

func NewVoteOrderRepository(db *gorm.DB) contract.VoteOrderRepository {
	return &VoteOrderRepositoryImpl{
		db:     db,
		mapper: mapper.NewVoteOrderMapper(),
	}
}

func (r *VoteOrderRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *VoteOrderRepositoryImpl) Upsert(ctx context.Context, order *entity.VoteOrder) error {
	m := r.mapper.ToModel(order)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "panel_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"order_ids", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*order = *r.mapper.ToEntity(m)
	return nil
}

func (r *VoteOrderRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VoteOrder, error) {
	var m model.VoteOrder
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *VoteOrderRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VoteOrder, error) {
	var models []*model.VoteOrder
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *VoteOrderRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.VoteOrder{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
