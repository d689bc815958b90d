package service

import (
	"time"

	"panel-review-be/internal/constant"
	"panel-review-be/internal/entity"
	"panel-review-be/internal/pkg/apperror"
)

// IStageService derives the current workflow stage of a panel from its
// deadlines. The stage is never stored; it is always a function of the clock,
// so there is no transition job that can lag or be missed.
type IStageService interface {
	Resolve(panel *entity.Panel) string
	// EnsureStage fails when the panel is not currently in the wanted stage.
	EnsureStage(panel *entity.Panel, stage string) error
	ValidateDeadlines(intake, tag, vote, presentation time.Time) error
}

type stageService struct {
	now func() time.Time
}

func NewStageService() IStageService {
	return &stageService{now: time.Now}
}

func stageOrdinal(stage string) int {
	switch stage {
	case constant.StageIntake:
		return 0
	case constant.StageTagging:
		return 1
	case constant.StageVoting:
		return 2
	default:
		return 3
	}
}

func (s *stageService) Resolve(panel *entity.Panel) string {
	now := s.now()
	switch {
	case now.Before(panel.IntakeDeadline):
		return constant.StageIntake
	case now.Before(panel.TagDeadline):
		return constant.StageTagging
	case now.Before(panel.VoteDeadline):
		return constant.StageVoting
	default:
		return constant.StageClosed
	}
}

func (s *stageService) EnsureStage(panel *entity.Panel, stage string) error {
	current := s.Resolve(panel)
	if current == stage {
		return nil
	}
	if stageOrdinal(current) > stageOrdinal(stage) {
		return apperror.Newf(apperror.CodeDeadlinePassed, "the %s stage has already closed", stage)
	}
	return apperror.Newf(apperror.CodeStageClosed, "the %s stage has not opened yet", stage)
}

func (s *stageService) ValidateDeadlines(intake, tag, vote, presentation time.Time) error {
	// Equal deadlines are allowed; a zero-length window simply skips that
	// stage.
	if tag.Before(intake) || vote.Before(tag) {
		return apperror.New(apperror.CodeValidation, "stage deadlines must not decrease")
	}
	if presentation.Before(vote) {
		return apperror.New(apperror.CodeValidation, "panel start time must not precede the voting deadline")
	}
	return nil
}
