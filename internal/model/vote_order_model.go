package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VoteOrder stores the ranked permutation as a jsonb array of question ids.
// The unique (panel, user) index makes resubmission a replace, never an append.
type VoteOrder struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PanelId   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_vote_orders_panel_user,priority:1"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_vote_orders_panel_user,priority:2"`
	Order     datatypes.JSON `gorm:"column:order_ids;type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (VoteOrder) TableName() string {
	return "vote_orders"
}
