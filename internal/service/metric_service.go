package service

import (
	"context"
	"time"

	"panel-review-be/internal/config"
	"panel-review-be/internal/constant"
	"panel-review-be/internal/dto"
	"panel-review-be/internal/entity"
	"panel-review-be/internal/pkg/apperror"
	"panel-review-be/internal/pkg/logger"
	"panel-review-be/internal/repository/memory"
	"panel-review-be/internal/repository/specification"
	"panel-review-be/internal/repository/unitofwork"
	"panel-review-be/pkg/scoring"

	"github.com/google/uuid"
)

type IMetricService interface {
	// GetUserMetric computes the user's scores from current stored state.
	GetUserMetric(ctx context.Context, panelId, userId uuid.UUID) (*dto.UserMetricResponse, error)
	// GetPanelMetrics returns cross-participant aggregates, served from the
	// cache when fresh.
	GetPanelMetrics(ctx context.Context, panelId uuid.UUID) (*dto.PanelMetricsResponse, error)
	// RecomputePanel rebuilds and persists every participant's snapshot and
	// the per-question vote scores. Safe to run any number of times.
	RecomputePanel(ctx context.Context, panelId uuid.UUID) error
}

type metricService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.MetricCache
	cfg        config.ScoringConfig
	logger     logger.ILogger
}

func NewMetricService(
	uowFactory unitofwork.RepositoryFactory,
	cache *memory.MetricCache,
	cfg config.ScoringConfig,
	log logger.ILogger,
) IMetricService {
	return &metricService{
		uowFactory: uowFactory,
		cache:      cache,
		cfg:        cfg,
		logger:     log,
	}
}

// panelState is everything a metric computation reads, loaded once.
type panelState struct {
	panel       *entity.Panel
	questions   []*entity.Question
	groups      []*entity.SimilarityGroup
	students    []*entity.User
	orders      []*entity.VoteOrder
	assignments map[uuid.UUID]int // pool size presented to each user
	reacted     map[uuid.UUID]int // distinct questions each user reacted to

	ballotIds  []uuid.UUID
	refRanks   map[uuid.UUID]float64
	votePoints map[uuid.UUID]float64 // accumulated position bonus per representative
	groupSize  map[uuid.UUID]int     // members per representative
	memberRep  map[uuid.UUID]uuid.UUID
}

func (s *metricService) loadState(ctx context.Context, uow unitofwork.UnitOfWork, panelId uuid.UUID) (*panelState, error) {
	panel, err := uow.PanelRepository().Get(ctx, panelId)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to load panel", err)
	}
	if panel == nil {
		return nil, apperror.New(apperror.CodeNotFound, "panel not found")
	}

	questions, err := uow.QuestionRepository().FindAll(ctx, specification.ByPanelID{PanelID: panelId})
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to load questions", err)
	}
	groups, err := uow.SimilarityGroupRepository().FindAll(ctx, specification.ByPanelID{PanelID: panelId})
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to load groups", err)
	}
	students, err := uow.UserRepository().FindAll(ctx, specification.ByRole{Role: constant.RoleStudent})
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to load participants", err)
	}
	orders, err := uow.VoteOrderRepository().FindAll(ctx, specification.ByPanelID{PanelID: panelId})
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to load rankings", err)
	}
	assignmentRows, err := uow.TaggingAssignmentRepository().FindAll(ctx, specification.ByPanelID{PanelID: panelId})
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to load assignments", err)
	}
	reactions, err := uow.ReactionRepository().FindAll(ctx, specification.ByPanelID{PanelID: panelId})
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to load reactions", err)
	}

	state := &panelState{
		panel:       panel,
		questions:   questions,
		groups:      groups,
		students:    students,
		orders:      orders,
		assignments: make(map[uuid.UUID]int, len(assignmentRows)),
		reacted:     make(map[uuid.UUID]int),
		votePoints:  make(map[uuid.UUID]float64),
		groupSize:   make(map[uuid.UUID]int),
		memberRep:   make(map[uuid.UUID]uuid.UUID),
	}
	for _, a := range assignmentRows {
		state.assignments[a.UserId] = len(a.QuestionIds)
	}
	seen := make(map[uuid.UUID]map[uuid.UUID]bool)
	for _, r := range reactions {
		if seen[r.UserId] == nil {
			seen[r.UserId] = make(map[uuid.UUID]bool)
		}
		if !seen[r.UserId][r.QuestionId] {
			seen[r.UserId][r.QuestionId] = true
			state.reacted[r.UserId]++
		}
	}

	s.index(state)
	return state, nil
}

// index derives the ballot, the reference ranking by net likes, and the vote
// points each representative earned across all submitted rankings.
func (s *metricService) index(state *panelState) {
	representativeOf := make(map[uuid.UUID]uuid.UUID, len(state.groups))
	for _, g := range state.groups {
		representativeOf[g.Id] = g.RepresentativeId
	}

	netScores := make(map[uuid.UUID]float64)
	for _, q := range state.questions {
		rep := q.Id
		if q.Grouped() {
			if r, ok := representativeOf[*q.GroupId]; ok {
				rep = r
			}
		}
		state.memberRep[q.Id] = rep
		if state.groupSize[rep] == 0 {
			state.ballotIds = append(state.ballotIds, rep)
		}
		state.groupSize[rep]++
		netScores[rep] += float64(q.LikeCount - q.DislikeCount)
	}

	state.refRanks = scoring.RanksFromScores(state.ballotIds, netScores)

	for _, order := range state.orders {
		for i, id := range order.Order {
			state.votePoints[id] += scoring.PositionWeight(i, len(order.Order))
		}
	}
}

func (s *metricService) correlate(userRanks, refRanks map[uuid.UUID]float64) float64 {
	if s.cfg.VoteMethod == constant.VoteScoreKendall {
		return scoring.Kendall(userRanks, refRanks)
	}
	return scoring.Spearman(userRanks, refRanks)
}

// questionFinalScore is the question's net likes plus its share of the vote
// position bonus. A merged group's bonus is split equally among its members.
func questionFinalScore(state *panelState, q *entity.Question) float64 {
	score := float64(q.LikeCount - q.DislikeCount)
	rep := state.memberRep[q.Id]
	if size := state.groupSize[rep]; size > 0 {
		score += state.votePoints[rep] / float64(size)
	}
	return score
}

func (s *metricService) computeUser(state *panelState, userId uuid.UUID) *entity.Metric {
	submitted := 0
	entered := 0.0
	for _, q := range state.questions {
		if q.UserId != userId {
			continue
		}
		submitted++
		entered += questionFinalScore(state, q)
	}

	pool := state.assignments[userId]
	if pool == 0 {
		pool = len(state.questions) - submitted
	}

	voteScore := 0.0
	for _, order := range state.orders {
		if order.UserId != userId {
			continue
		}
		userRanks := scoring.RanksFromOrder(order.Order)
		ref := make(map[uuid.UUID]float64, len(order.Order))
		for _, id := range order.Order {
			ref[id] = state.refRanks[id]
		}
		voteScore = scoring.CorrelationToScore(s.correlate(userRanks, ref))
		break
	}

	questionScore := scoring.QuestionStage(submitted, state.panel.ExpectedQuestionCount)
	tagScore := scoring.TagStage(state.reacted[userId], pool)

	return &entity.Metric{
		Id:                         uuid.New(),
		PanelId:                    state.panel.Id,
		UserId:                     userId,
		QuestionStageScore:         questionScore,
		TagStageScore:              tagScore,
		VoteStageScore:             voteScore,
		EnteredQuestionsTotalScore: entered,
		FinalTotalScore:            scoring.WeightedTotal(s.cfg.Weights(), questionScore, tagScore, voteScore),
		ComputedAt:                 time.Now(),
	}
}

func (s *metricService) GetUserMetric(ctx context.Context, panelId, userId uuid.UUID) (*dto.UserMetricResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	state, err := s.loadState(ctx, uow, panelId)
	if err != nil {
		return nil, err
	}

	m := s.computeUser(state, userId)
	return &dto.UserMetricResponse{
		PanelId:                    m.PanelId,
		UserId:                     m.UserId,
		QuestionStageScore:         m.QuestionStageScore,
		TagStageScore:              m.TagStageScore,
		VoteStageScore:             m.VoteStageScore,
		EnteredQuestionsTotalScore: m.EnteredQuestionsTotalScore,
		FinalTotalScore:            m.FinalTotalScore,
		ComputedAt:                 m.ComputedAt,
	}, nil
}

func (s *metricService) GetPanelMetrics(ctx context.Context, panelId uuid.UUID) (*dto.PanelMetricsResponse, error) {
	var cached dto.PanelMetricsResponse
	if s.cache.Get(ctx, panelId, &cached) {
		return &cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	state, err := s.loadState(ctx, uow, panelId)
	if err != nil {
		return nil, err
	}

	var question, tag, vote, final []float64
	for _, student := range state.students {
		m := s.computeUser(state, student.Id)
		question = append(question, m.QuestionStageScore)
		tag = append(tag, m.TagStageScore)
		vote = append(vote, m.VoteStageScore)
		final = append(final, m.FinalTotalScore)
	}

	resp := &dto.PanelMetricsResponse{
		PanelId:       panelId,
		Participants:  len(state.students),
		QuestionStage: aggregateItem(question),
		TagStage:      aggregateItem(tag),
		VoteStage:     aggregateItem(vote),
		FinalTotal:    aggregateItem(final),
		ComputedAt:    time.Now(),
	}
	s.cache.Set(ctx, panelId, resp)
	return resp, nil
}

func aggregateItem(values []float64) dto.StageAggregateItem {
	mean, min, max := scoring.MeanMinMax(values)
	return dto.StageAggregateItem{Mean: mean, Min: min, Max: max}
}

func (s *metricService) RecomputePanel(ctx context.Context, panelId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return apperror.Wrap(apperror.CodeUnavailable, "failed to begin transaction", err)
	}
	defer uow.Rollback()

	state, err := s.loadState(ctx, uow, panelId)
	if err != nil {
		return err
	}

	for _, student := range state.students {
		m := s.computeUser(state, student.Id)
		if err := uow.MetricRepository().Upsert(ctx, m); err != nil {
			return apperror.Wrap(apperror.CodeUnavailable, "failed to store metric snapshot", err)
		}
	}

	// Persist each question's final score so listings can sort without
	// recomputing.
	for _, q := range state.questions {
		score := questionFinalScore(state, q)
		if q.FinalScore == score {
			continue
		}
		q.FinalScore = score
		if err := uow.QuestionRepository().Update(ctx, q); err != nil {
			return apperror.Wrap(apperror.CodeUnavailable, "failed to store question score", err)
		}
	}

	if err := uow.Commit(); err != nil {
		return apperror.Wrap(apperror.CodeUnavailable, "failed to commit metric snapshots", err)
	}

	s.cache.Invalidate(ctx, panelId)
	s.logger.Info("MetricService", "panel metrics recomputed", map[string]interface{}{
		"panel_id":     panelId,
		"participants": len(state.students),
	})
	return nil
}
