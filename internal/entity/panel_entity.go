package entity

import (
	"time"

	"github.com/google/uuid"
)

// Panel is a review unit with four ordered deadlines that gate its workflow
// stages (intake -> tagging -> voting -> closed).
type Panel struct {
	Id                    uuid.UUID
	Name                  string
	Description           string
	Visibility            string
	VideoLink             string
	ExpectedQuestionCount int
	IntakeDeadline        time.Time
	TagDeadline           time.Time
	VoteDeadline          time.Time
	PresentationDate      time.Time
	CreatedAt             time.Time
	UpdatedAt             *time.Time
}
