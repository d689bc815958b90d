package dto

import "github.com/google/uuid"

// VotingSetItem is one representative question presented for ranking. Grouped
// questions appear once through their representative; counts are the group's
// combined totals.
type VotingSetItem struct {
	Id           uuid.UUID `json:"id"`
	Text         string    `json:"text"`
	LikeCount    int       `json:"like_count"`
	DislikeCount int       `json:"dislike_count"`
	GroupSize    int       `json:"group_size"`
}

type SubmitVoteRequest struct {
	PanelId uuid.UUID   `json:"-"`
	Order   []uuid.UUID `json:"order" validate:"required,min=1,unique"`
}

type SubmitVoteResponse struct {
	Accepted bool `json:"accepted"`
	Ranked   int  `json:"ranked"`
}
