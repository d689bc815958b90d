package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePanelRequest struct {
	Name                  string    `json:"name" validate:"required"`
	Description           string    `json:"description"`
	Visibility            string    `json:"visibility" validate:"omitempty,oneof=public internal"`
	VideoLink             string    `json:"video_link" validate:"omitempty,url"`
	ExpectedQuestionCount int       `json:"expected_question_count" validate:"required,gt=0"`
	QuestionStageDeadline time.Time `json:"question_stage_deadline" validate:"required"`
	TagStageDeadline      time.Time `json:"tag_stage_deadline" validate:"required"`
	VoteStageDeadline     time.Time `json:"vote_stage_deadline" validate:"required"`
	PanelStartTime        time.Time `json:"panel_start_time" validate:"required"`
}

type CreatePanelResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowPanelResponse struct {
	Id                    uuid.UUID  `json:"id"`
	Name                  string     `json:"name"`
	Description           string     `json:"description"`
	Visibility            string     `json:"visibility"`
	VideoLink             string     `json:"video_link"`
	ExpectedQuestionCount int        `json:"expected_question_count"`
	QuestionStageDeadline time.Time  `json:"question_stage_deadline"`
	TagStageDeadline      time.Time  `json:"tag_stage_deadline"`
	VoteStageDeadline     time.Time  `json:"vote_stage_deadline"`
	PanelStartTime        time.Time  `json:"panel_start_time"`
	Stage                 string     `json:"stage"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             *time.Time `json:"updated_at"`
}

type PanelListItem struct {
	Id         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Visibility string    `json:"visibility"`
	Stage      string    `json:"stage"`
}
