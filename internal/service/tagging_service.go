package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"panel-review-be/internal/constant"
	"panel-review-be/internal/dto"
	"panel-review-be/internal/entity"
	"panel-review-be/internal/pkg/apperror"
	"panel-review-be/internal/pkg/logger"
	"panel-review-be/internal/repository/memory"
	"panel-review-be/internal/repository/specification"
	"panel-review-be/internal/repository/unitofwork"
	"panel-review-be/pkg/events"
	pktNats "panel-review-be/pkg/nats"

	"github.com/google/uuid"
)

type ITaggingService interface {
	// React records the user's verdict on a question. A second reaction of a
	// different type replaces the first; repeating the same type is a no-op.
	React(ctx context.Context, userId uuid.UUID, req *dto.ReactRequest) (*dto.ReactResponse, error)
	// MarkSimilar merges ungrouped questions into a new similarity group and
	// pushes an undo snapshot for the merging user.
	MarkSimilar(ctx context.Context, userId uuid.UUID, req *dto.MarkSimilarRequest) (*dto.MarkSimilarResponse, error)
	// Undo reverts the user's most recent merge in the panel.
	Undo(ctx context.Context, userId, panelId uuid.UUID) (*dto.UndoResponse, error)
}

type taggingService struct {
	uowFactory       unitofwork.RepositoryFactory
	stageService     IStageService
	undoStacks       *memory.UndoStackRepository
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewTaggingService(
	uowFactory unitofwork.RepositoryFactory,
	stageService IStageService,
	undoStacks *memory.UndoStackRepository,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) ITaggingService {
	return &taggingService{
		uowFactory:       uowFactory,
		stageService:     stageService,
		undoStacks:       undoStacks,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func reactionDelta(reactionType string, delta int) (like, dislike, flag int) {
	switch reactionType {
	case constant.ReactionLike:
		return delta, 0, 0
	case constant.ReactionDislike:
		return 0, delta, 0
	default:
		return 0, 0, delta
	}
}

func (s *taggingService) React(ctx context.Context, userId uuid.UUID, req *dto.ReactRequest) (*dto.ReactResponse, error) {
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
	if err := s.stageService.EnsureStage(panel, constant.StageTagging); err != nil {
		return nil, err
	}

	// Lock the question row so concurrent reactions serialize their counter
	// updates.
	question, err := uow.QuestionRepository().FindOne(ctx,
		specification.ByID{ID: req.QuestionId},
		specification.ByPanelID{PanelID: req.PanelId},
		specification.ForUpdate{},
	)
	if err != nil {
		return nil, apperror.WrapStorage("failed to load question", err)
	}
	if question == nil {
		return nil, apperror.New(apperror.CodeNotFound, "question not found")
	}
	if question.UserId == userId {
		return nil, apperror.New(apperror.CodeForbidden, "cannot react to your own question")
	}

	existing, err := uow.ReactionRepository().FindOne(ctx,
		specification.ByQuestionID{QuestionID: req.QuestionId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to load reaction", err)
	}

	likeDelta, dislikeDelta, flagDelta := 0, 0, 0
	switch {
	case existing == nil:
		now := time.Now()
		reaction := &entity.Reaction{
			Id:         uuid.New(),
			PanelId:    req.PanelId,
			QuestionId: req.QuestionId,
			UserId:     userId,
			Type:       req.Reaction,
			CreatedAt:  now,
		}
		if err := uow.ReactionRepository().Create(ctx, reaction); err != nil {
			return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to store reaction", err)
		}
		likeDelta, dislikeDelta, flagDelta = reactionDelta(req.Reaction, 1)

	case existing.Type == req.Reaction:
		// Idempotent re-submission; counters already reflect it.

	default:
		prevLike, prevDislike, prevFlag := reactionDelta(existing.Type, -1)
		newLike, newDislike, newFlag := reactionDelta(req.Reaction, 1)
		likeDelta = prevLike + newLike
		dislikeDelta = prevDislike + newDislike
		flagDelta = prevFlag + newFlag

		existing.Type = req.Reaction
		if err := uow.ReactionRepository().Update(ctx, existing); err != nil {
			return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to update reaction", err)
		}
	}

	if likeDelta != 0 || dislikeDelta != 0 || flagDelta != 0 {
		if err := uow.QuestionRepository().AdjustCounters(ctx, question.Id, likeDelta, dislikeDelta, flagDelta); err != nil {
			return nil, apperror.WrapStorage("failed to adjust counters", err)
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.WrapStorage("failed to commit reaction", err)
	}

	s.requestRecompute(ctx, req.PanelId)

	return &dto.ReactResponse{
		QuestionId:   question.Id,
		Reaction:     req.Reaction,
		LikeCount:    question.LikeCount + likeDelta,
		DislikeCount: question.DislikeCount + dislikeDelta,
		FlagCount:    question.FlagCount + flagDelta,
	}, nil
}

func (s *taggingService) MarkSimilar(ctx context.Context, userId uuid.UUID, req *dto.MarkSimilarRequest) (*dto.MarkSimilarResponse, error) {
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
	if err := s.stageService.EnsureStage(panel, constant.StageTagging); err != nil {
		return nil, err
	}

	// Lock members in a fixed order so two overlapping merges cannot
	// deadlock; one of them serializes behind the other instead.
	ids := make([]uuid.UUID, len(req.QuestionIds))
	copy(ids, req.QuestionIds)
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	members, err := uow.QuestionRepository().FindAll(ctx,
		specification.ByIDs{IDs: ids},
		specification.ByPanelID{PanelID: req.PanelId},
		specification.ForUpdate{},
	)
	if err != nil {
		return nil, apperror.WrapStorage("failed to load questions", err)
	}
	if len(members) != len(ids) {
		return nil, apperror.New(apperror.CodeNotFound, "one or more questions not found in this panel")
	}
	for _, q := range members {
		if q.Grouped() {
			return nil, apperror.Newf(apperror.CodeAlreadyGrouped, "question %s already belongs to a group", q.Id)
		}
	}

	representative := members[0].Id
	for _, q := range members[1:] {
		if q.Id.String() < representative.String() {
			representative = q.Id
		}
	}

	group := &entity.SimilarityGroup{
		Id:               uuid.New(),
		PanelId:          req.PanelId,
		CreatedBy:        userId,
		RepresentativeId: representative,
		CreatedAt:        time.Now(),
	}
	if err := uow.SimilarityGroupRepository().Create(ctx, group); err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to create group", err)
	}

	prior := make(map[uuid.UUID]*uuid.UUID, len(members))
	for _, q := range members {
		prior[q.Id] = q.GroupId
		if err := uow.QuestionRepository().SetGroup(ctx, q.Id, &group.Id); err != nil {
			return nil, apperror.WrapStorage("failed to group question", err)
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.WrapStorage("failed to commit merge", err)
	}

	s.undoStacks.Push(req.PanelId, userId, memory.MergeSnapshot{
		GroupId:       group.Id,
		PriorGroupIds: prior,
		TakenAt:       time.Now(),
	})

	s.publishEvent(ctx, constant.EventGroupMerged, map[string]interface{}{
		"panel_id": req.PanelId,
		"group_id": group.Id,
		"members":  len(members),
	})
	s.requestRecompute(ctx, req.PanelId)

	return &dto.MarkSimilarResponse{
		GroupId:          group.Id,
		RepresentativeId: representative,
		MemberIds:        ids,
	}, nil
}

func (s *taggingService) Undo(ctx context.Context, userId, panelId uuid.UUID) (*dto.UndoResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to begin transaction", err)
	}
	defer uow.Rollback()

	panel, err := uow.PanelRepository().Get(ctx, panelId)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to load panel", err)
	}
	if panel == nil {
		return nil, apperror.New(apperror.CodeNotFound, "panel not found")
	}
	if err := s.stageService.EnsureStage(panel, constant.StageTagging); err != nil {
		// A merge can no longer be undone once tagging closed; drop the
		// stack ahead of its TTL.
		if apperror.Is(err, apperror.CodeDeadlinePassed) {
			s.undoStacks.Clear(panelId, userId)
		}
		return nil, err
	}

	snapshot, ok := s.undoStacks.Pop(panelId, userId)
	if !ok {
		return nil, apperror.New(apperror.CodeNothingToUndo, "no merge to undo")
	}

	restored := 0
	for questionId, priorGroup := range snapshot.PriorGroupIds {
		if err := uow.QuestionRepository().SetGroup(ctx, questionId, priorGroup); err != nil {
			// Put the snapshot back so the user can retry.
			s.undoStacks.Push(panelId, userId, snapshot)
			return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to restore question grouping", err)
		}
		restored++
	}

	if err := uow.SimilarityGroupRepository().Delete(ctx, snapshot.GroupId); err != nil {
		s.undoStacks.Push(panelId, userId, snapshot)
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to delete group", err)
	}

	if err := uow.Commit(); err != nil {
		s.undoStacks.Push(panelId, userId, snapshot)
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to commit undo", err)
	}

	s.requestRecompute(ctx, panelId)

	return &dto.UndoResponse{
		GroupId:        snapshot.GroupId,
		RestoredCount:  restored,
		RemainingDepth: s.undoStacks.Depth(panelId, userId),
	}, nil
}

func (s *taggingService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events.New(eventType, data)); err != nil {
		s.logger.Warn("TaggingService", "failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func (s *taggingService) requestRecompute(ctx context.Context, panelId uuid.UUID) {
	if s.publisherService == nil {
		return
	}
	payload, err := json.Marshal(dto.RecomputeMetricsMessage{PanelId: panelId})
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("TaggingService", "failed to enqueue metric recompute", map[string]interface{}{
			"panel_id": panelId,
			"error":    err.Error(),
		})
	}
}
