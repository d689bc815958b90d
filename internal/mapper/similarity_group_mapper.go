package mapper

import (
	"panel-review-be/internal/entity"
	"panel-review-be/internal/model"
)

type SimilarityGroupMapper struct{}

func NewSimilarityGroupMapper() *SimilarityGroupMapper {
	return &SimilarityGroupMapper{}
}

func (m *SimilarityGroupMapper) ToEntity(g *model.SimilarityGroup) *entity.SimilarityGroup {
	if g == nil {
		return nil
	}
	return &entity.SimilarityGroup{
		Id:               g.Id,
		PanelId:          g.PanelId,
		CreatedBy:        g.CreatedBy,
		RepresentativeId: g.RepresentativeId,
		CreatedAt:        g.CreatedAt,
	}
}

func (m *SimilarityGroupMapper) ToModel(g *entity.SimilarityGroup) *model.SimilarityGroup {
	if g == nil {
		return nil
	}
	return &model.SimilarityGroup{
		Id:               g.Id,
		PanelId:          g.PanelId,
		CreatedBy:        g.CreatedBy,
		RepresentativeId: g.RepresentativeId,
		CreatedAt:        g.CreatedAt,
	}
}

func (m *SimilarityGroupMapper) ToEntities(groups []*model.SimilarityGroup) []*entity.SimilarityGroup {
	entities := make([]*entity.SimilarityGroup, len(groups))
	for i, g := range groups {
		entities[i] = m.ToEntity(g)
	}
	return entities
}
