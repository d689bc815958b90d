package mapper

import (
	"encoding/json"
	"time"

	"panel-review-be/internal/entity"
	"panel-review-be/internal/model"

	"github.com/google/uuid"
)

// VoteOrderMapper translates between the jsonb-backed model and the typed
// entity. Unmarshal failures surface as an empty order rather than a panic;
// the service layer treats a stored order as opaque until revalidated.
type VoteOrderMapper struct{}

func NewVoteOrderMapper() *VoteOrderMapper {
	return &VoteOrderMapper{}
}

func (m *VoteOrderMapper) ToEntity(v *model.VoteOrder) *entity.VoteOrder {
	if v == nil {
		return nil
	}

	var order []uuid.UUID
	_ = json.Unmarshal(v.Order, &order)

	var updatedAt *time.Time
	if !v.UpdatedAt.IsZero() {
		t := v.UpdatedAt
		updatedAt = &t
	}

	return &entity.VoteOrder{
		Id:        v.Id,
		PanelId:   v.PanelId,
		UserId:    v.UserId,
		Order:     order,
		CreatedAt: v.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *VoteOrderMapper) ToModel(v *entity.VoteOrder) *model.VoteOrder {
	if v == nil {
		return nil
	}

	raw, _ := json.Marshal(v.Order)

	var updatedAt time.Time
	if v.UpdatedAt != nil {
		updatedAt = *v.UpdatedAt
	}

	return &model.VoteOrder{
		Id:        v.Id,
		PanelId:   v.PanelId,
		UserId:    v.UserId,
		Order:     raw,
		CreatedAt: v.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *VoteOrderMapper) ToEntities(orders []*model.VoteOrder) []*entity.VoteOrder {
	entities := make([]*entity.VoteOrder, len(orders))
	for i, v := range orders {
		entities[i] = m.ToEntity(v)
	}
	return entities
}
