package mapper

import (
	"time"

	"panel-review-be/internal/entity"
	"panel-review-be/internal/model"
)

type ReactionMapper struct{}

func NewReactionMapper() *ReactionMapper {
	return &ReactionMapper{}
}

func (m *ReactionMapper) ToEntity(r *model.Reaction) *entity.Reaction {
	if r == nil {
		return nil
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.Reaction{
		Id:         r.Id,
		PanelId:    r.PanelId,
		QuestionId: r.QuestionId,
		UserId:     r.UserId,
		Type:       r.Type,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *ReactionMapper) ToModel(r *entity.Reaction) *model.Reaction {
	if r == nil {
		return nil
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.Reaction{
		Id:         r.Id,
		PanelId:    r.PanelId,
		QuestionId: r.QuestionId,
		UserId:     r.UserId,
		Type:       r.Type,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *ReactionMapper) ToEntities(reactions []*model.Reaction) []*entity.Reaction {
	entities := make([]*entity.Reaction, len(reactions))
	for i, r := range reactions {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
