package mapper

import (
	"encoding/json"

	"panel-review-be/internal/entity"
	"panel-review-be/internal/model"

	"github.com/google/uuid"
)

type TaggingAssignmentMapper struct{}

func NewTaggingAssignmentMapper() *TaggingAssignmentMapper {
	return &TaggingAssignmentMapper{}
}

func (m *TaggingAssignmentMapper) ToEntity(a *model.TaggingAssignment) *entity.TaggingAssignment {
	if a == nil {
		return nil
	}

	var ids []uuid.UUID
	_ = json.Unmarshal(a.QuestionIds, &ids)

	return &entity.TaggingAssignment{
		Id:          a.Id,
		PanelId:     a.PanelId,
		UserId:      a.UserId,
		QuestionIds: ids,
		CreatedAt:   a.CreatedAt,
	}
}

func (m *TaggingAssignmentMapper) ToModel(a *entity.TaggingAssignment) *model.TaggingAssignment {
	if a == nil {
		return nil
	}

	raw, _ := json.Marshal(a.QuestionIds)

	return &model.TaggingAssignment{
		Id:          a.Id,
		PanelId:     a.PanelId,
		UserId:      a.UserId,
		QuestionIds: raw,
		CreatedAt:   a.CreatedAt,
	}
}

func (m *TaggingAssignmentMapper) ToEntities(assignments []*model.TaggingAssignment) []*entity.TaggingAssignment {
	entities := make([]*entity.TaggingAssignment, len(assignments))
	for i, a := range assignments {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
