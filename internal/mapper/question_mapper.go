package mapper

import (
	"time"

	"panel-review-be/internal/entity"
	"panel-review-be/internal/model"
)

type QuestionMapper struct{}

func NewQuestionMapper() *QuestionMapper {
	return &QuestionMapper{}
}

func (m *QuestionMapper) ToEntity(q *model.Question) *entity.Question {
	if q == nil {
		return nil
	}

	var updatedAt *time.Time
	if !q.UpdatedAt.IsZero() {
		t := q.UpdatedAt
		updatedAt = &t
	}

	return &entity.Question{
		Id:           q.Id,
		PanelId:      q.PanelId,
		UserId:       q.UserId,
		Text:         q.Text,
		LikeCount:    q.LikeCount,
		DislikeCount: q.DislikeCount,
		FlagCount:    q.FlagCount,
		GroupId:      q.GroupId,
		FinalScore:   q.FinalScore,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *QuestionMapper) ToModel(q *entity.Question) *model.Question {
	if q == nil {
		return nil
	}

	var updatedAt time.Time
	if q.UpdatedAt != nil {
		updatedAt = *q.UpdatedAt
	}

	return &model.Question{
		Id:           q.Id,
		PanelId:      q.PanelId,
		UserId:       q.UserId,
		Text:         q.Text,
		LikeCount:    q.LikeCount,
		DislikeCount: q.DislikeCount,
		FlagCount:    q.FlagCount,
		GroupId:      q.GroupId,
		FinalScore:   q.FinalScore,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *QuestionMapper) ToEntities(questions []*model.Question) []*entity.Question {
	entities := make([]*entity.Question, len(questions))
	for i, q := range questions {
		entities[i] = m.ToEntity(q)
	}
	return entities
}

func (m *QuestionMapper) ToModels(questions []*entity.Question) []*model.Question {
	models := make([]*model.Question, len(questions))
	for i, q := range questions {
		models[i] = m.ToModel(q)
	}
	return models
}
