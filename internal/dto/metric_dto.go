package dto

import (
	"time"

	"github.com/google/uuid"
)

// RecomputeMetricsMessage is the internal pipeline payload asking for a
// panel's metric snapshots to be rebuilt.
type RecomputeMetricsMessage struct {
	PanelId uuid.UUID `json:"panel_id"`
}

type UserMetricResponse struct {
	PanelId                    uuid.UUID `json:"panel_id"`
	UserId                     uuid.UUID `json:"user_id"`
	QuestionStageScore         float64   `json:"question_stage_score"`
	TagStageScore              float64   `json:"tag_stage_score"`
	VoteStageScore             float64   `json:"vote_stage_score"`
	EnteredQuestionsTotalScore float64   `json:"entered_questions_total_score"`
	FinalTotalScore            float64   `json:"final_total_score"`
	ComputedAt                 time.Time `json:"computed_at"`
}

type StageAggregateItem struct {
	Mean float64 `json:"mean"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

type PanelMetricsResponse struct {
	PanelId       uuid.UUID          `json:"panel_id"`
	Participants  int                `json:"participants"`
	QuestionStage StageAggregateItem `json:"question_stage"`
	TagStage      StageAggregateItem `json:"tag_stage"`
	VoteStage     StageAggregateItem `json:"vote_stage"`
	FinalTotal    StageAggregateItem `json:"final_total"`
	ComputedAt    time.Time          `json:"computed_at"`
}
