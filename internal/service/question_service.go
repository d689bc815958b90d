package service

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
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

type IQuestionService interface {
	// SubmitQuestions replaces the user's question set for the panel. The
	// whole batch is accepted or rejected; a resubmission discards the
	// previous set.
	SubmitQuestions(ctx context.Context, userId uuid.UUID, req *dto.SubmitQuestionsRequest) (*dto.SubmitQuestionsResponse, error)
	GetSubmitted(ctx context.Context, userId, panelId uuid.UUID) ([]*dto.QuestionItem, error)
	// GetTaggingPool returns the questions the user reviews during tagging:
	// their distributed slice when one exists, otherwise every question they
	// did not author.
	GetTaggingPool(ctx context.Context, userId, panelId uuid.UUID) ([]*dto.TaggingPoolItem, error)
	// Distribute splits the panel's question pool into balanced review slices,
	// one per student, never assigning anyone their own questions.
	Distribute(ctx context.Context, panelId uuid.UUID) (*dto.DistributeResponse, error)
}

type questionService struct {
	uowFactory       unitofwork.RepositoryFactory
	stageService     IStageService
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewQuestionService(
	uowFactory unitofwork.RepositoryFactory,
	stageService IStageService,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IQuestionService {
	return &questionService{
		uowFactory:       uowFactory,
		stageService:     stageService,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func (s *questionService) SubmitQuestions(ctx context.Context, userId uuid.UUID, req *dto.SubmitQuestionsRequest) (*dto.SubmitQuestionsResponse, error) {
	// Blank entries are dropped, not rejected; only an all-blank batch fails.
	texts := make([]string, 0, len(req.Questions))
	for _, raw := range req.Questions {
		if text := strings.TrimSpace(raw); text != "" {
			texts = append(texts, text)
		}
	}
	if len(texts) == 0 {
		return nil, apperror.New(apperror.CodeValidation, "at least one non-blank question is required")
	}

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
	if err := s.stageService.EnsureStage(panel, constant.StageIntake); err != nil {
		return nil, err
	}
	if len(texts) > panel.ExpectedQuestionCount {
		return nil, apperror.Newf(apperror.CodeValidation,
			"a submission may contain at most %d questions, got %d", panel.ExpectedQuestionCount, len(texts))
	}

	// Resubmission replaces the previous set entirely.
	if err := uow.QuestionRepository().DeleteByPanelAndUser(ctx, req.PanelId, userId); err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to clear previous submission", err)
	}

	now := time.Now()
	questions := make([]*entity.Question, 0, len(texts))
	ids := make([]uuid.UUID, 0, len(texts))
	for _, text := range texts {
		q := &entity.Question{
			Id:        uuid.New(),
			PanelId:   req.PanelId,
			UserId:    userId,
			Text:      text,
			CreatedAt: now,
		}
		questions = append(questions, q)
		ids = append(ids, q.Id)
	}

	if err := uow.QuestionRepository().CreateBatch(ctx, questions); err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to store questions", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to commit submission", err)
	}

	s.publishEvent(ctx, constant.EventQuestionSubmitted, map[string]interface{}{
		"panel_id": req.PanelId,
		"user_id":  userId,
		"count":    len(questions),
	})
	s.requestRecompute(ctx, req.PanelId)

	return &dto.SubmitQuestionsResponse{Ids: ids}, nil
}

func (s *questionService) GetSubmitted(ctx context.Context, userId, panelId uuid.UUID) ([]*dto.QuestionItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	questions, err := uow.QuestionRepository().FindAll(ctx,
		specification.ByPanelID{PanelID: panelId},
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to load questions", err)
	}

	items := make([]*dto.QuestionItem, 0, len(questions))
	for _, q := range questions {
		items = append(items, &dto.QuestionItem{
			Id:           q.Id,
			Text:         q.Text,
			LikeCount:    q.LikeCount,
			DislikeCount: q.DislikeCount,
			FlagCount:    q.FlagCount,
			GroupId:      q.GroupId,
			CreatedAt:    q.CreatedAt,
		})
	}
	return items, nil
}

func (s *questionService) GetTaggingPool(ctx context.Context, userId, panelId uuid.UUID) ([]*dto.TaggingPoolItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var pool []*entity.Question
	assignment, err := uow.TaggingAssignmentRepository().FindOne(ctx,
		specification.ByPanelID{PanelID: panelId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to load assignment", err)
	}

	if assignment != nil && len(assignment.QuestionIds) > 0 {
		pool, err = uow.QuestionRepository().FindAll(ctx,
			specification.ByIDs{IDs: assignment.QuestionIds},
			specification.OrderBy{Field: "created_at"},
		)
	} else {
		pool, err = uow.QuestionRepository().FindAll(ctx,
			specification.ByPanelID{PanelID: panelId},
			specification.NotByUserID{UserID: userId},
			specification.OrderBy{Field: "created_at"},
		)
	}
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to load tagging pool", err)
	}

	reactions, err := uow.ReactionRepository().FindAll(ctx,
		specification.ByPanelID{PanelID: panelId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to load reactions", err)
	}
	mine := make(map[uuid.UUID]string, len(reactions))
	for _, r := range reactions {
		mine[r.QuestionId] = r.Type
	}

	items := make([]*dto.TaggingPoolItem, 0, len(pool))
	for _, q := range pool {
		items = append(items, &dto.TaggingPoolItem{
			Id:         q.Id,
			Text:       q.Text,
			MyReaction: mine[q.Id],
		})
	}
	return items, nil
}

func (s *questionService) Distribute(ctx context.Context, panelId uuid.UUID) (*dto.DistributeResponse, error) {
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

	questions, err := uow.QuestionRepository().FindAll(ctx,
		specification.ByPanelID{PanelID: panelId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to load questions", err)
	}
	if len(questions) == 0 {
		return nil, apperror.New(apperror.CodeValidation, "panel has no questions to distribute")
	}

	students, err := uow.UserRepository().FindAll(ctx, specification.ByRole{Role: constant.RoleStudent})
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to load participants", err)
	}
	if len(students) == 0 {
		return nil, apperror.New(apperror.CodeValidation, "panel has no participants to distribute to")
	}

	assignments := buildAssignments(questions, students)

	// Rerunning distribution replaces the previous assignment set.
	if err := uow.TaggingAssignmentRepository().DeleteByPanel(ctx, panelId); err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to clear previous assignments", err)
	}

	now := time.Now()
	for userId, questionIds := range assignments {
		assignment := &entity.TaggingAssignment{
			Id:          uuid.New(),
			PanelId:     panelId,
			UserId:      userId,
			QuestionIds: questionIds,
			CreatedAt:   now,
		}
		if err := uow.TaggingAssignmentRepository().Upsert(ctx, assignment); err != nil {
			return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to store assignment", err)
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to commit distribution", err)
	}

	s.publishEvent(ctx, constant.EventQuestionsDistributed, map[string]interface{}{
		"panel_id":    panelId,
		"assignments": len(assignments),
		"pool_size":   len(questions),
	})

	return &dto.DistributeResponse{
		Assignments: len(assignments),
		PoolSize:    len(questions),
	}, nil
}

// buildAssignments hands each student an equal share of the pool, skipping
// their own questions. Every question is assigned the same number of times
// (plus at most one) so review load stays balanced. Questions are placed in
// usage rounds, globally least-used first, rather than student by student; a
// per-student greedy pass can strand a question at zero reviewers when the
// last students with capacity are its authors.
func buildAssignments(questions []*entity.Question, students []*entity.User) map[uuid.UUID][]uuid.UUID {
	perStudent := len(questions) / len(students)
	if len(questions)%len(students) != 0 {
		perStudent++
	}
	if perStudent < 1 {
		perStudent = 1
	}
	if perStudent > len(questions) {
		perStudent = len(questions)
	}

	// Deterministic order keeps reruns reproducible for the same pool.
	ordered := make([]*entity.Question, len(questions))
	copy(ordered, questions)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Id.String() < ordered[j].Id.String()
	})
	reviewers := make([]*entity.User, len(students))
	copy(reviewers, students)
	sort.Slice(reviewers, func(i, j int) bool {
		return reviewers[i].Id.String() < reviewers[j].Id.String()
	})

	notOwn := func(student *entity.User) int {
		n := 0
		for _, q := range ordered {
			if q.UserId != student.Id {
				n++
			}
		}
		return n
	}

	remaining := make(map[uuid.UUID]int, len(reviewers))
	for _, student := range reviewers {
		capacity := perStudent
		if own := notOwn(student); capacity > own {
			capacity = own
		}
		remaining[student.Id] = capacity
	}

	usage := make(map[uuid.UUID]int, len(ordered))
	has := make(map[uuid.UUID]map[uuid.UUID]bool, len(reviewers))
	for _, student := range reviewers {
		has[student.Id] = make(map[uuid.UUID]bool, perStudent)
	}

	// Each round gives every question at most one more reviewer, so usage
	// never spreads further than one within a round.
	for {
		progress := false
		round := make([]*entity.Question, len(ordered))
		copy(round, ordered)
		sort.SliceStable(round, func(i, j int) bool {
			return usage[round[i].Id] < usage[round[j].Id]
		})
		for _, q := range round {
			var pick *entity.User
			for _, student := range reviewers {
				if student.Id == q.UserId || remaining[student.Id] == 0 || has[student.Id][q.Id] {
					continue
				}
				if pick == nil || remaining[student.Id] > remaining[pick.Id] {
					pick = student
				}
			}
			if pick == nil {
				continue
			}
			has[pick.Id][q.Id] = true
			remaining[pick.Id]--
			usage[q.Id]++
			progress = true
		}
		if !progress {
			break
		}
	}

	rebalance(ordered, reviewers, has, usage)

	assignments := make(map[uuid.UUID][]uuid.UUID, len(reviewers))
	for _, student := range reviewers {
		slice := make([]uuid.UUID, 0, len(has[student.Id]))
		for _, q := range ordered {
			if has[student.Id][q.Id] {
				slice = append(slice, q.Id)
			}
		}
		if len(slice) > 0 {
			assignments[student.Id] = slice
		}
	}
	return assignments
}

// rebalance moves single assignments from overused questions to underused ones
// until usage spreads by at most one or no eligible holder remains. The rounds
// above can still overload a question when the only students left with
// capacity authored the light ones.
func rebalance(ordered []*entity.Question, reviewers []*entity.User, has map[uuid.UUID]map[uuid.UUID]bool, usage map[uuid.UUID]int) {
	if len(ordered) == 0 {
		return
	}
	for {
		byUsage := make([]*entity.Question, len(ordered))
		copy(byUsage, ordered)
		sort.SliceStable(byUsage, func(i, j int) bool {
			return usage[byUsage[i].Id] < usage[byUsage[j].Id]
		})
		low, high := byUsage[0], byUsage[len(byUsage)-1]
		if usage[high.Id]-usage[low.Id] <= 1 {
			return
		}

		moved := false
		for _, student := range reviewers {
			if student.Id == low.UserId || !has[student.Id][high.Id] || has[student.Id][low.Id] {
				continue
			}
			delete(has[student.Id], high.Id)
			has[student.Id][low.Id] = true
			usage[high.Id]--
			usage[low.Id]++
			moved = true
			break
		}
		if !moved {
			return
		}
	}
}

func (s *questionService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events.New(eventType, data)); err != nil {
		s.logger.Warn("QuestionService", "failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func (s *questionService) requestRecompute(ctx context.Context, panelId uuid.UUID) {
	if s.publisherService == nil {
		return
	}
	payload, err := json.Marshal(dto.RecomputeMetricsMessage{PanelId: panelId})
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("QuestionService", "failed to enqueue metric recompute", map[string]interface{}{
			"panel_id": panelId,
			"error":    err.Error(),
		})
	}
}
