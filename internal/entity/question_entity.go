package entity

import (
	"time"

	"github.com/google/uuid"
)

// Question is a participant-submitted question. Questions are never deleted
// after intake closes; merging only assigns a GroupId.
type Question struct {
	Id           uuid.UUID
	PanelId      uuid.UUID
	UserId       uuid.UUID
	Text         string
	LikeCount    int
	DislikeCount int
	FlagCount    int
	GroupId      *uuid.UUID
	FinalScore   float64
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// Grouped reports whether the question has been merged into a similarity group.
func (q *Question) Grouped() bool {
	return q.GroupId != nil
}
