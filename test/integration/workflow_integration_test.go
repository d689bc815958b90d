package integration

import (
	"context"
	"log"
	"os"
	"testing"
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
	"panel-review-be/internal/service"
	"panel-review-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	uowFactory      unitofwork.RepositoryFactory
	stageService    service.IStageService
	undoStacks      *memory.UndoStackRepository
	panelService    service.IPanelService
	questionService service.IQuestionService
	taggingService  service.ITaggingService
	votingService   service.IVotingService
	metricService   service.IMetricService
}

func setupEnv(t *testing.T) *testEnv {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDB(dsn)
	require.NoError(t, err, "failed to connect to DB")

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	sysLogger := logger.NewZapLogger("logs/integration-test.log", false)
	stageService := service.NewStageService()
	undoStacks := memory.NewUndoStackRepository()
	metricCache := memory.NewMetricCache(nil, time.Minute)

	scoringCfg := config.ScoringConfig{
		QuestionWeight: 0.3,
		TagWeight:      0.3,
		VoteWeight:     0.4,
		VoteMethod:     constant.VoteScoreSpearman,
	}

	return &testEnv{
		uowFactory:      uowFactory,
		stageService:    stageService,
		undoStacks:      undoStacks,
		panelService:    service.NewPanelService(uowFactory, stageService),
		questionService: service.NewQuestionService(uowFactory, stageService, nil, nil, sysLogger),
		taggingService:  service.NewTaggingService(uowFactory, stageService, undoStacks, nil, nil, sysLogger),
		votingService:   service.NewVotingService(uowFactory, stageService, nil, nil, sysLogger),
		metricService:   service.NewMetricService(uowFactory, metricCache, scoringCfg, sysLogger),
	}
}

func (e *testEnv) createStudent(t *testing.T, ctx context.Context) *entity.User {
	user := &entity.User{
		Id:        uuid.New(),
		Email:     "student-" + uuid.New().String() + "@example.com",
		FullName:  "Integration Student",
		Role:      constant.RoleStudent,
		CreatedAt: time.Now(),
	}
	uow := e.uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.UserRepository().Create(ctx, user))
	return user
}

// createPanelInWindow stores a panel whose deadlines put it in the wanted
// stage right now.
func (e *testEnv) createPanelInWindow(t *testing.T, ctx context.Context, stage string, expected int) *entity.Panel {
	now := time.Now()
	panel := &entity.Panel{
		Id:                    uuid.New(),
		Name:                  "Integration Panel " + stage,
		Visibility:            constant.VisibilityInternal,
		ExpectedQuestionCount: expected,
		CreatedAt:             now,
	}
	switch stage {
	case constant.StageIntake:
		panel.IntakeDeadline = now.Add(1 * time.Hour)
		panel.TagDeadline = now.Add(2 * time.Hour)
		panel.VoteDeadline = now.Add(3 * time.Hour)
	case constant.StageTagging:
		panel.IntakeDeadline = now.Add(-1 * time.Hour)
		panel.TagDeadline = now.Add(1 * time.Hour)
		panel.VoteDeadline = now.Add(2 * time.Hour)
	default:
		panel.IntakeDeadline = now.Add(-2 * time.Hour)
		panel.TagDeadline = now.Add(-1 * time.Hour)
		panel.VoteDeadline = now.Add(1 * time.Hour)
	}
	panel.PresentationDate = panel.VoteDeadline.Add(1 * time.Hour)

	uow := e.uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.PanelRepository().Create(ctx, panel))
	return panel
}

func (e *testEnv) seedQuestions(t *testing.T, ctx context.Context, panelId uuid.UUID, author *entity.User, texts ...string) []*entity.Question {
	questions := make([]*entity.Question, 0, len(texts))
	for _, text := range texts {
		questions = append(questions, &entity.Question{
			Id:        uuid.New(),
			PanelId:   panelId,
			UserId:    author.Id,
			Text:      text,
			CreatedAt: time.Now(),
		})
	}
	uow := e.uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.QuestionRepository().CreateBatch(ctx, questions))
	return questions
}

func TestIntakeSubmissionReplacesPreviousSet(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	student := env.createStudent(t, ctx)
	panel := env.createPanelInWindow(t, ctx, constant.StageIntake, 2)

	first, err := env.questionService.SubmitQuestions(ctx, student.Id, &dto.SubmitQuestionsRequest{
		PanelId:   panel.Id,
		Questions: []string{"What motivated this approach?", "How does it scale?"},
	})
	require.NoError(t, err)
	assert.Len(t, first.Ids, 2)

	second, err := env.questionService.SubmitQuestions(ctx, student.Id, &dto.SubmitQuestionsRequest{
		PanelId:   panel.Id,
		Questions: []string{"What are the failure modes?"},
	})
	require.NoError(t, err)
	assert.Len(t, second.Ids, 1)

	mine, err := env.questionService.GetSubmitted(ctx, student.Id, panel.Id)
	require.NoError(t, err)
	require.Len(t, mine, 1, "resubmission replaces the previous set")
	assert.Equal(t, "What are the failure modes?", mine[0].Text)
}

func TestIntakeRejectedOutsideWindow(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	student := env.createStudent(t, ctx)
	panel := env.createPanelInWindow(t, ctx, constant.StageTagging, 2)

	_, err := env.questionService.SubmitQuestions(ctx, student.Id, &dto.SubmitQuestionsRequest{
		PanelId:   panel.Id,
		Questions: []string{"Too late"},
	})
	assert.True(t, apperror.Is(err, apperror.CodeDeadlinePassed))
}

func TestIntakeEnforcesExpectedQuestionCount(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	student := env.createStudent(t, ctx)
	panel := env.createPanelInWindow(t, ctx, constant.StageIntake, 2)

	_, err := env.questionService.SubmitQuestions(ctx, student.Id, &dto.SubmitQuestionsRequest{
		PanelId:   panel.Id,
		Questions: []string{"one", "two", "three"},
	})
	assert.True(t, apperror.Is(err, apperror.CodeValidation))

	// Nothing was stored by the rejected batch.
	mine, err := env.questionService.GetSubmitted(ctx, student.Id, panel.Id)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestIntakeFiltersBlankEntries(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	student := env.createStudent(t, ctx)
	panel := env.createPanelInWindow(t, ctx, constant.StageIntake, 2)

	res, err := env.questionService.SubmitQuestions(ctx, student.Id, &dto.SubmitQuestionsRequest{
		PanelId:   panel.Id,
		Questions: []string{"  What is the baseline?  ", "   "},
	})
	require.NoError(t, err)
	assert.Len(t, res.Ids, 1, "blank entries are dropped, not fatal")

	_, err = env.questionService.SubmitQuestions(ctx, student.Id, &dto.SubmitQuestionsRequest{
		PanelId:   panel.Id,
		Questions: []string{"", "   "},
	})
	assert.True(t, apperror.Is(err, apperror.CodeValidation), "an all-blank batch is rejected")
}

func TestPanelListVisibilityByRole(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	public := env.createPanelInWindow(t, ctx, constant.StageIntake, 2)
	internal := env.createPanelInWindow(t, ctx, constant.StageIntake, 2)

	uow := env.uowFactory.NewUnitOfWork(ctx)
	public.Visibility = constant.VisibilityPublic
	require.NoError(t, uow.PanelRepository().Update(ctx, public))

	listed := func(items []*dto.PanelListItem, id uuid.UUID) bool {
		for _, item := range items {
			if item.Id == id {
				return true
			}
		}
		return false
	}

	studentView, err := env.panelService.List(ctx, constant.RoleStudent)
	require.NoError(t, err)
	assert.True(t, listed(studentView, public.Id))
	assert.False(t, listed(studentView, internal.Id), "internal panels are hidden from students")

	adminView, err := env.panelService.List(ctx, constant.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, listed(adminView, public.Id))
	assert.True(t, listed(adminView, internal.Id))
}

func TestTaggingReactionsAndCounters(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	author := env.createStudent(t, ctx)
	reviewer := env.createStudent(t, ctx)
	panel := env.createPanelInWindow(t, ctx, constant.StageTagging, 1)
	questions := env.seedQuestions(t, ctx, panel.Id, author, "Why this dataset?")

	res, err := env.taggingService.React(ctx, reviewer.Id, &dto.ReactRequest{
		PanelId:    panel.Id,
		QuestionId: questions[0].Id,
		Reaction:   constant.ReactionLike,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.LikeCount)

	// Changing the verdict swaps the counters, it does not add a second row.
	res, err = env.taggingService.React(ctx, reviewer.Id, &dto.ReactRequest{
		PanelId:    panel.Id,
		QuestionId: questions[0].Id,
		Reaction:   constant.ReactionDislike,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.LikeCount)
	assert.Equal(t, 1, res.DislikeCount)

	// Authors cannot react to their own questions.
	_, err = env.taggingService.React(ctx, author.Id, &dto.ReactRequest{
		PanelId:    panel.Id,
		QuestionId: questions[0].Id,
		Reaction:   constant.ReactionLike,
	})
	assert.True(t, apperror.Is(err, apperror.CodeForbidden))
}

func TestMergeUndoRoundTrip(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	author := env.createStudent(t, ctx)
	reviewer := env.createStudent(t, ctx)
	panel := env.createPanelInWindow(t, ctx, constant.StageTagging, 2)
	questions := env.seedQuestions(t, ctx, panel.Id, author, "dup one", "dup two", "unrelated")

	merged, err := env.taggingService.MarkSimilar(ctx, reviewer.Id, &dto.MarkSimilarRequest{
		PanelId:     panel.Id,
		QuestionIds: []uuid.UUID{questions[0].Id, questions[1].Id},
	})
	require.NoError(t, err)
	assert.Len(t, merged.MemberIds, 2)

	// Merging an already-grouped question is rejected.
	_, err = env.taggingService.MarkSimilar(ctx, reviewer.Id, &dto.MarkSimilarRequest{
		PanelId:     panel.Id,
		QuestionIds: []uuid.UUID{questions[1].Id, questions[2].Id},
	})
	assert.True(t, apperror.Is(err, apperror.CodeAlreadyGrouped))

	undone, err := env.taggingService.Undo(ctx, reviewer.Id, panel.Id)
	require.NoError(t, err)
	assert.Equal(t, merged.GroupId, undone.GroupId)
	assert.Equal(t, 2, undone.RestoredCount)
	assert.Equal(t, 0, undone.RemainingDepth)

	// Second undo has nothing to revert.
	_, err = env.taggingService.Undo(ctx, reviewer.Id, panel.Id)
	assert.True(t, apperror.Is(err, apperror.CodeNothingToUndo))

	uow := env.uowFactory.NewUnitOfWork(ctx)
	q, err := uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: questions[0].Id})
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Nil(t, q.GroupId, "undo restores the ungrouped state")
}

func TestVotePermutationValidation(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	author := env.createStudent(t, ctx)
	voter := env.createStudent(t, ctx)
	panel := env.createPanelInWindow(t, ctx, constant.StageVoting, 2)
	questions := env.seedQuestions(t, ctx, panel.Id, author, "q one", "q two", "q three")

	ballot, err := env.votingService.GetRepresentativeSet(ctx, panel.Id)
	require.NoError(t, err)
	require.Len(t, ballot, 3)

	// Partial rankings are rejected.
	_, err = env.votingService.SubmitVoteOrder(ctx, voter.Id, &dto.SubmitVoteRequest{
		PanelId: panel.Id,
		Order:   []uuid.UUID{questions[0].Id},
	})
	assert.True(t, apperror.Is(err, apperror.CodeInvalidPermutation))

	// Unknown ids are rejected.
	_, err = env.votingService.SubmitVoteOrder(ctx, voter.Id, &dto.SubmitVoteRequest{
		PanelId: panel.Id,
		Order:   []uuid.UUID{questions[0].Id, questions[1].Id, uuid.New()},
	})
	assert.True(t, apperror.Is(err, apperror.CodeInvalidPermutation))

	// A full permutation is accepted and can be replaced.
	order := []uuid.UUID{questions[2].Id, questions[0].Id, questions[1].Id}
	res, err := env.votingService.SubmitVoteOrder(ctx, voter.Id, &dto.SubmitVoteRequest{PanelId: panel.Id, Order: order})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Ranked)

	reordered := []uuid.UUID{questions[0].Id, questions[1].Id, questions[2].Id}
	_, err = env.votingService.SubmitVoteOrder(ctx, voter.Id, &dto.SubmitVoteRequest{PanelId: panel.Id, Order: reordered})
	require.NoError(t, err)

	uow := env.uowFactory.NewUnitOfWork(ctx)
	stored, err := uow.VoteOrderRepository().FindOne(ctx,
		specification.ByPanelID{PanelID: panel.Id},
		specification.ByUserID{UserID: voter.Id},
	)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, reordered, stored.Order, "resubmission replaces the ranking")
}

func TestVoteRejectsGroupedMemberIds(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	author := env.createStudent(t, ctx)
	voter := env.createStudent(t, ctx)
	panel := env.createPanelInWindow(t, ctx, constant.StageVoting, 2)
	questions := env.seedQuestions(t, ctx, panel.Id, author, "dup one", "dup two", "standalone")

	rep, member := questions[0], questions[1]
	if member.Id.String() < rep.Id.String() {
		rep, member = member, rep
	}

	uow := env.uowFactory.NewUnitOfWork(ctx)
	group := &entity.SimilarityGroup{
		Id:               uuid.New(),
		PanelId:          panel.Id,
		CreatedBy:        voter.Id,
		RepresentativeId: rep.Id,
		CreatedAt:        time.Now(),
	}
	require.NoError(t, uow.SimilarityGroupRepository().Create(ctx, group))
	require.NoError(t, uow.QuestionRepository().SetGroup(ctx, rep.Id, &group.Id))
	require.NoError(t, uow.QuestionRepository().SetGroup(ctx, member.Id, &group.Id))

	ballot, err := env.votingService.GetRepresentativeSet(ctx, panel.Id)
	require.NoError(t, err)
	require.Len(t, ballot, 2, "the group collapses to its representative")

	// Ranking a grouped member instead of its representative is rejected.
	_, err = env.votingService.SubmitVoteOrder(ctx, voter.Id, &dto.SubmitVoteRequest{
		PanelId: panel.Id,
		Order:   []uuid.UUID{member.Id, questions[2].Id},
	})
	assert.True(t, apperror.Is(err, apperror.CodeInvalidPermutation))

	res, err := env.votingService.SubmitVoteOrder(ctx, voter.Id, &dto.SubmitVoteRequest{
		PanelId: panel.Id,
		Order:   []uuid.UUID{rep.Id, questions[2].Id},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Ranked)
}

func TestUndoStackDroppedAfterTaggingCloses(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	reviewer := env.createStudent(t, ctx)
	panel := env.createPanelInWindow(t, ctx, constant.StageVoting, 2)

	env.undoStacks.Push(panel.Id, reviewer.Id, memory.MergeSnapshot{
		GroupId: uuid.New(),
		TakenAt: time.Now(),
	})

	_, err := env.taggingService.Undo(ctx, reviewer.Id, panel.Id)
	assert.True(t, apperror.Is(err, apperror.CodeDeadlinePassed))
	assert.Equal(t, 0, env.undoStacks.Depth(panel.Id, reviewer.Id), "a stale stack is dropped")
}

func TestMetricRecomputeIsIdempotent(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	author := env.createStudent(t, ctx)
	panel := env.createPanelInWindow(t, ctx, constant.StageVoting, 2)
	env.seedQuestions(t, ctx, panel.Id, author, "alpha", "beta")

	require.NoError(t, env.metricService.RecomputePanel(ctx, panel.Id))

	uow := env.uowFactory.NewUnitOfWork(ctx)
	first, err := uow.MetricRepository().FindOne(ctx,
		specification.ByPanelID{PanelID: panel.Id},
		specification.ByUserID{UserID: author.Id},
	)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 100.0, first.QuestionStageScore, "author submitted the expected count")

	require.NoError(t, env.metricService.RecomputePanel(ctx, panel.Id))

	second, err := uow.MetricRepository().FindOne(ctx,
		specification.ByPanelID{PanelID: panel.Id},
		specification.ByUserID{UserID: author.Id},
	)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.QuestionStageScore, second.QuestionStageScore)
	assert.Equal(t, first.FinalTotalScore, second.FinalTotalScore)
}
