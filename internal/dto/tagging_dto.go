package dto

import "github.com/google/uuid"

type ReactRequest struct {
	PanelId    uuid.UUID `json:"-"`
	QuestionId uuid.UUID `json:"question_id" validate:"required"`
	Reaction   string    `json:"reaction" validate:"required,oneof=like dislike flag"`
}

type ReactResponse struct {
	QuestionId   uuid.UUID `json:"question_id"`
	Reaction     string    `json:"reaction"`
	LikeCount    int       `json:"like_count"`
	DislikeCount int       `json:"dislike_count"`
	FlagCount    int       `json:"flag_count"`
}

type MarkSimilarRequest struct {
	PanelId     uuid.UUID   `json:"-"`
	QuestionIds []uuid.UUID `json:"question_ids" validate:"required,min=2,unique"`
}

type MarkSimilarResponse struct {
	GroupId          uuid.UUID   `json:"group_id"`
	RepresentativeId uuid.UUID   `json:"representative_id"`
	MemberIds        []uuid.UUID `json:"member_ids"`
}

type UndoResponse struct {
	GroupId        uuid.UUID `json:"group_id"`
	RestoredCount  int       `json:"restored_count"`
	RemainingDepth int       `json:"remaining_depth"`
}
