package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitQuestionsRequest struct {
	PanelId   uuid.UUID `json:"-"`
	Questions []string  `json:"questions" validate:"required,min=1,dive,required"`
}

type SubmitQuestionsResponse struct {
	Ids []uuid.UUID `json:"ids"`
}

type QuestionItem struct {
	Id           uuid.UUID  `json:"id"`
	Text         string     `json:"text"`
	LikeCount    int        `json:"like_count"`
	DislikeCount int        `json:"dislike_count"`
	FlagCount    int        `json:"flag_count"`
	GroupId      *uuid.UUID `json:"group_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// TaggingPoolItem carries what a reviewer sees during tagging: the question
// plus their own reaction so far, never the author identity.
type TaggingPoolItem struct {
	Id         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	MyReaction string    `json:"my_reaction,omitempty"`
}

type DistributeResponse struct {
	Assignments int `json:"assignments"`
	PoolSize    int `json:"pool_size"`
}
