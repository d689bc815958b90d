package service

import (
	"context"
	"encoding/json"
	"time"

	"panel-review-be/internal/constant"
	"panel-review-be/internal/dto"
	"panel-review-be/internal/entity"
	"panel-review-be/internal/pkg/apperror"
	"panel-review-be/internal/pkg/logger"
	"panel-review-be/internal/repository/specification"
	"panel-review-be/internal/repository/unitofwork"
	"panel-review-be/pkg/events"
	pktNats "panel-review-be/pkg/nats"

	"github.com/google/uuid"
)

type IVotingService interface {
	// GetRepresentativeSet returns the ballot: every ungrouped question plus
	// one representative per similarity group, with combined counters.
	GetRepresentativeSet(ctx context.Context, panelId uuid.UUID) ([]*dto.VotingSetItem, error)
	// SubmitVoteOrder stores the user's full ranking. The order must be an
	// exact permutation of the current representative set; resubmission
	// replaces the previous ranking.
	SubmitVoteOrder(ctx context.Context, userId uuid.UUID, req *dto.SubmitVoteRequest) (*dto.SubmitVoteResponse, error)
}

type votingService struct {
	uowFactory       unitofwork.RepositoryFactory
	stageService     IStageService
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewVotingService(
	uowFactory unitofwork.RepositoryFactory,
	stageService IStageService,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IVotingService {
	return &votingService{
		uowFactory:       uowFactory,
		stageService:     stageService,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

// representativeSet collapses the panel's questions into ballot entries.
func representativeSet(questions []*entity.Question, groups []*entity.SimilarityGroup) []*dto.VotingSetItem {
	representativeOf := make(map[uuid.UUID]uuid.UUID, len(groups))
	for _, g := range groups {
		representativeOf[g.Id] = g.RepresentativeId
	}

	byId := make(map[uuid.UUID]*entity.Question, len(questions))
	for _, q := range questions {
		byId[q.Id] = q
	}

	items := make([]*dto.VotingSetItem, 0, len(questions))
	seen := make(map[uuid.UUID]*dto.VotingSetItem)

	for _, q := range questions {
		if !q.Grouped() {
			items = append(items, &dto.VotingSetItem{
				Id:           q.Id,
				Text:         q.Text,
				LikeCount:    q.LikeCount,
				DislikeCount: q.DislikeCount,
				GroupSize:    1,
			})
			continue
		}

		repId, ok := representativeOf[*q.GroupId]
		if !ok {
			repId = q.Id
		}
		item, exists := seen[repId]
		if !exists {
			text := q.Text
			if rep, ok := byId[repId]; ok {
				text = rep.Text
			}
			item = &dto.VotingSetItem{Id: repId, Text: text}
			seen[repId] = item
			items = append(items, item)
		}
		item.LikeCount += q.LikeCount
		item.DislikeCount += q.DislikeCount
		item.GroupSize++
	}
	return items
}

func (s *votingService) GetRepresentativeSet(ctx context.Context, panelId uuid.UUID) ([]*dto.VotingSetItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	questions, err := uow.QuestionRepository().FindAll(ctx,
		specification.ByPanelID{PanelID: panelId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to load questions", err)
	}

	groups, err := uow.SimilarityGroupRepository().FindAll(ctx, specification.ByPanelID{PanelID: panelId})
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to load groups", err)
	}

	return representativeSet(questions, groups), nil
}

func (s *votingService) SubmitVoteOrder(ctx context.Context, userId uuid.UUID, req *dto.SubmitVoteRequest) (*dto.SubmitVoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to begin transaction", err)
	}
	defer uow.Rollback()

	panel, err := uow.PanelRepository().Get(ctx, req.PanelId)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to load panel", err)
	}
	if panel == nil {
		return nil, apperror.New(apperror.CodeNotFound, "panel not found")
	}
	if err := s.stageService.EnsureStage(panel, constant.StageVoting); err != nil {
		return nil, err
	}

	questions, err := uow.QuestionRepository().FindAll(ctx, specification.ByPanelID{PanelID: req.PanelId})
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to load questions", err)
	}
	groups, err := uow.SimilarityGroupRepository().FindAll(ctx, specification.ByPanelID{PanelID: req.PanelId})
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to load groups", err)
	}

	ballot := representativeSet(questions, groups)
	expected := make(map[uuid.UUID]bool, len(ballot))
	for _, item := range ballot {
		expected[item.Id] = true
	}

	if len(req.Order) != len(ballot) {
		return nil, apperror.Newf(apperror.CodeInvalidPermutation,
			"ranking must contain exactly %d items, got %d", len(ballot), len(req.Order))
	}
	seen := make(map[uuid.UUID]bool, len(req.Order))
	for _, id := range req.Order {
		if !expected[id] {
			return nil, apperror.Newf(apperror.CodeInvalidPermutation, "id %s is not in the representative set", id)
		}
		if seen[id] {
			return nil, apperror.Newf(apperror.CodeInvalidPermutation, "id %s appears more than once", id)
		}
		seen[id] = true
	}

	order := &entity.VoteOrder{
		Id:        uuid.New(),
		PanelId:   req.PanelId,
		UserId:    userId,
		Order:     req.Order,
		CreatedAt: time.Now(),
	}
	if err := uow.VoteOrderRepository().Upsert(ctx, order); err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to store ranking", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to commit ranking", err)
	}

	s.publishEvent(ctx, constant.EventVoteSubmitted, map[string]interface{}{
		"panel_id": req.PanelId,
		"user_id":  userId,
		"ranked":   len(req.Order),
	})
	s.requestRecompute(ctx, req.PanelId)

	return &dto.SubmitVoteResponse{Accepted: true, Ranked: len(req.Order)}, nil
}

func (s *votingService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events.New(eventType, data)); err != nil {
		s.logger.Warn("VotingService", "failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func (s *votingService) requestRecompute(ctx context.Context, panelId uuid.UUID) {
	if s.publisherService == nil {
		return
	}
	payload, err := json.Marshal(dto.RecomputeMetricsMessage{PanelId: panelId})
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("VotingService", "failed to enqueue metric recompute", map[string]interface{}{
			"panel_id": panelId,
			"error":    err.Error(),
		})
	}
}
