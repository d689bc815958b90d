package entity

import (
	"time"

	"github.com/google/uuid"
)

// Metric is the derived score record for a (panel, user) pair. It is a pure
// function of stored Question/Reaction/VoteOrder state; the persisted snapshot
// exists only so admin listings avoid recomputation, never as a source of truth.
type Metric struct {
	Id                         uuid.UUID
	PanelId                    uuid.UUID
	UserId                     uuid.UUID
	QuestionStageScore         float64
	TagStageScore              float64
	VoteStageScore             float64
	EnteredQuestionsTotalScore float64
	FinalTotalScore            float64
	ComputedAt                 time.Time
}

// StageAggregate holds the panel-wide mean/min/max for one stage score.
type StageAggregate struct {
	Mean float64
	Min  float64
	Max  float64
}

// PanelAggregates carries the cross-participant aggregates for a panel.
type PanelAggregates struct {
	QuestionStage StageAggregate
	TagStage      StageAggregate
	VoteStage     StageAggregate
	FinalTotal    StageAggregate
}
