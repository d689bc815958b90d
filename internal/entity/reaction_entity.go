package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reaction is one user's verdict on one question. At most one row exists per
// (question, user); changing the type replaces the previous reaction.
type Reaction struct {
	Id         uuid.UUID
	PanelId    uuid.UUID
	QuestionId uuid.UUID
	UserId     uuid.UUID
	Type       string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
