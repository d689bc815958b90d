package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaggingAssignment is the slice of questions a student must review during
// tagging, produced by the distribution pass. Self-authored questions are
// never assigned.
type TaggingAssignment struct {
	Id          uuid.UUID
	PanelId     uuid.UUID
	UserId      uuid.UUID
	QuestionIds []uuid.UUID
	CreatedAt   time.Time
}
