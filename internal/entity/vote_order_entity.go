package entity

import (
	"time"

	"github.com/google/uuid"
)

// VoteOrder is one user's full ranking of the representative set: a strict
// permutation, stored once per (panel, user) and replaced on resubmission.
type VoteOrder struct {
	Id        uuid.UUID
	PanelId   uuid.UUID
	UserId    uuid.UUID
	Order     []uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}
