package service

import (
	"testing"

	"panel-review-be/internal/config"
	"panel-review-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func indexedState(panel *entity.Panel, questions []*entity.Question, groups []*entity.SimilarityGroup, orders []*entity.VoteOrder) *panelState {
	state := &panelState{
		panel:       panel,
		questions:   questions,
		groups:      groups,
		orders:      orders,
		assignments: make(map[uuid.UUID]int),
		reacted:     make(map[uuid.UUID]int),
		votePoints:  make(map[uuid.UUID]float64),
		groupSize:   make(map[uuid.UUID]int),
		memberRep:   make(map[uuid.UUID]uuid.UUID),
	}
	(&metricService{cfg: config.ScoringConfig{}}).index(state)
	return state
}

func TestEnteredQuestionsScoreIncludesNetLikes(t *testing.T) {
	author := uuid.New()
	panel := &entity.Panel{Id: uuid.New(), ExpectedQuestionCount: 1}
	question := &entity.Question{
		Id:           uuid.New(),
		PanelId:      panel.Id,
		UserId:       author,
		LikeCount:    5,
		DislikeCount: 1,
	}

	state := indexedState(panel, []*entity.Question{question}, nil, nil)
	s := &metricService{cfg: config.ScoringConfig{}}
	m := s.computeUser(state, author)

	// 5 likes minus 1 dislike, no rankings submitted yet.
	assert.Equal(t, 4.0, m.EnteredQuestionsTotalScore)
}

func TestEnteredQuestionsScoreSharesGroupBonus(t *testing.T) {
	author := uuid.New()
	voter := uuid.New()
	panel := &entity.Panel{Id: uuid.New(), ExpectedQuestionCount: 2}

	a := &entity.Question{Id: uuid.New(), PanelId: panel.Id, UserId: author, LikeCount: 2}
	b := &entity.Question{Id: uuid.New(), PanelId: panel.Id, UserId: author, LikeCount: 1}
	if b.Id.String() < a.Id.String() {
		a, b = b, a
	}
	other := &entity.Question{Id: uuid.New(), PanelId: panel.Id, UserId: voter}

	group := &entity.SimilarityGroup{Id: uuid.New(), PanelId: panel.Id, RepresentativeId: a.Id}
	a.GroupId = &group.Id
	b.GroupId = &group.Id

	order := &entity.VoteOrder{
		Id:      uuid.New(),
		PanelId: panel.Id,
		UserId:  voter,
		Order:   []uuid.UUID{a.Id, other.Id},
	}

	state := indexedState(panel, []*entity.Question{a, b, other}, []*entity.SimilarityGroup{group}, []*entity.VoteOrder{order})
	s := &metricService{cfg: config.ScoringConfig{}}
	m := s.computeUser(state, author)

	// The representative earned 2 position points on a 2-item ballot, split
	// across the group's 2 members. Net likes stay per question: (2+1) for a,
	// (1+1) for b.
	assert.Equal(t, 5.0, m.EnteredQuestionsTotalScore)
}
