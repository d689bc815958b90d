package mapper

import (
	"panel-review-be/internal/entity"
	"panel-review-be/internal/model"
)

type MetricMapper struct{}

func NewMetricMapper() *MetricMapper {
	return &MetricMapper{}
}

func (m *MetricMapper) ToEntity(mm *model.Metric) *entity.Metric {
	if mm == nil {
		return nil
	}
	return &entity.Metric{
		Id:                         mm.Id,
		PanelId:                    mm.PanelId,
		UserId:                     mm.UserId,
		QuestionStageScore:         mm.QuestionStageScore,
		TagStageScore:              mm.TagStageScore,
		VoteStageScore:             mm.VoteStageScore,
		EnteredQuestionsTotalScore: mm.EnteredQuestionsTotalScore,
		FinalTotalScore:            mm.FinalTotalScore,
		ComputedAt:                 mm.ComputedAt,
	}
}

func (m *MetricMapper) ToModel(e *entity.Metric) *model.Metric {
	if e == nil {
		return nil
	}
	return &model.Metric{
		Id:                         e.Id,
		PanelId:                    e.PanelId,
		UserId:                     e.UserId,
		QuestionStageScore:         e.QuestionStageScore,
		TagStageScore:              e.TagStageScore,
		VoteStageScore:             e.VoteStageScore,
		EnteredQuestionsTotalScore: e.EnteredQuestionsTotalScore,
		FinalTotalScore:            e.FinalTotalScore,
		ComputedAt:                 e.ComputedAt,
	}
}

func (m *MetricMapper) ToEntities(metrics []*model.Metric) []*entity.Metric {
	entities := make([]*entity.Metric, len(metrics))
	for i, mm := range metrics {
		entities[i] = m.ToEntity(mm)
	}
	return entities
}
