package model

import (
	"time"

	"github.com/google/uuid"
)

// Reaction carries a composite unique index so the one-reaction-per-(question,
// user) invariant is enforced by the database, not just the service.
type Reaction struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PanelId    uuid.UUID `gorm:"type:uuid;not null;index"`
	QuestionId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reactions_question_user,priority:1"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reactions_question_user,priority:2"`
	Type       string    `gorm:"type:varchar(16);not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Reaction) TableName() string {
	return "reactions"
}
