package service

import (
	"testing"
	"time"

	"panel-review-be/internal/constant"
	"panel-review-be/internal/entity"
	"panel-review-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func fixedStageService(now time.Time) *stageService {
	return &stageService{now: func() time.Time { return now }}
}

func panelWithDeadlines(base time.Time) *entity.Panel {
	return &entity.Panel{
		IntakeDeadline:   base.Add(1 * time.Hour),
		TagDeadline:      base.Add(2 * time.Hour),
		VoteDeadline:     base.Add(3 * time.Hour),
		PresentationDate: base.Add(4 * time.Hour),
	}
}

func TestResolveStage(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	panel := panelWithDeadlines(base)

	cases := []struct {
		at    time.Time
		stage string
	}{
		{base, constant.StageIntake},
		{base.Add(90 * time.Minute), constant.StageTagging},
		{base.Add(150 * time.Minute), constant.StageVoting},
		{base.Add(5 * time.Hour), constant.StageClosed},
	}
	for _, tc := range cases {
		s := fixedStageService(tc.at)
		assert.Equal(t, tc.stage, s.Resolve(panel))
	}
}

func TestResolveStageAtExactDeadline(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	panel := panelWithDeadlines(base)

	// A deadline instant belongs to the following stage.
	s := fixedStageService(panel.IntakeDeadline)
	assert.Equal(t, constant.StageTagging, s.Resolve(panel))
}

func TestResolveStageSkipsZeroLengthWindow(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	panel := &entity.Panel{
		IntakeDeadline:   base.Add(1 * time.Hour),
		TagDeadline:      base.Add(1 * time.Hour), // tagging skipped
		VoteDeadline:     base.Add(2 * time.Hour),
		PresentationDate: base.Add(3 * time.Hour),
	}

	s := fixedStageService(base.Add(1 * time.Hour))
	assert.Equal(t, constant.StageVoting, s.Resolve(panel))
}

func TestEnsureStage(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	panel := panelWithDeadlines(base)

	// Currently in tagging.
	s := fixedStageService(base.Add(90 * time.Minute))

	assert.NoError(t, s.EnsureStage(panel, constant.StageTagging))

	err := s.EnsureStage(panel, constant.StageIntake)
	assert.True(t, apperror.Is(err, apperror.CodeDeadlinePassed))

	err = s.EnsureStage(panel, constant.StageVoting)
	assert.True(t, apperror.Is(err, apperror.CodeStageClosed))
}

func TestValidateDeadlines(t *testing.T) {
	s := NewStageService()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.NoError(t, s.ValidateDeadlines(base, base.Add(time.Hour), base.Add(2*time.Hour), base.Add(3*time.Hour)))

	// Equal deadlines skip a stage; that is a valid panel.
	assert.NoError(t, s.ValidateDeadlines(base, base, base.Add(time.Hour), base.Add(2*time.Hour)))

	err := s.ValidateDeadlines(base.Add(time.Hour), base, base.Add(2*time.Hour), base.Add(3*time.Hour))
	assert.True(t, apperror.Is(err, apperror.CodeValidation))

	err = s.ValidateDeadlines(base, base.Add(time.Hour), base.Add(2*time.Hour), base.Add(time.Minute))
	assert.True(t, apperror.Is(err, apperror.CodeValidation))
}
