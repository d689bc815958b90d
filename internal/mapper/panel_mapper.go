package mapper

import (
	"time"

	"panel-review-be/internal/entity"
	"panel-review-be/internal/model"
)

type PanelMapper struct{}

func NewPanelMapper() *PanelMapper {
	return &PanelMapper{}
}

func (m *PanelMapper) ToEntity(p *model.Panel) *entity.Panel {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Panel{
		Id:                    p.Id,
		Name:                  p.Name,
		Description:           p.Description,
		Visibility:            p.Visibility,
		VideoLink:             p.VideoLink,
		ExpectedQuestionCount: p.ExpectedQuestionCount,
		IntakeDeadline:        p.IntakeDeadline,
		TagDeadline:           p.TagDeadline,
		VoteDeadline:          p.VoteDeadline,
		PresentationDate:      p.PresentationDate,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             updatedAt,
	}
}

func (m *PanelMapper) ToModel(p *entity.Panel) *model.Panel {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Panel{
		Id:                    p.Id,
		Name:                  p.Name,
		Description:           p.Description,
		Visibility:            p.Visibility,
		VideoLink:             p.VideoLink,
		ExpectedQuestionCount: p.ExpectedQuestionCount,
		IntakeDeadline:        p.IntakeDeadline,
		TagDeadline:           p.TagDeadline,
		VoteDeadline:          p.VoteDeadline,
		PresentationDate:      p.PresentationDate,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             updatedAt,
	}
}

func (m *PanelMapper) ToEntities(panels []*model.Panel) []*entity.Panel {
	entities := make([]*entity.Panel, len(panels))
	for i, p := range panels {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
