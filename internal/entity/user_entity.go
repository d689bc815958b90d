package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the minimal participant record the engine needs. Identity issuance
// and profile management live in an external collaborator; the engine only
// reads role, email and name for gating, distribution and notification.
type User struct {
	Id        uuid.UUID
	Email     string
	FullName  string
	Role      string
	CreatedAt time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}
