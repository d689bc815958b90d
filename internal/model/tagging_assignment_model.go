package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TaggingAssignment struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PanelId     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_tagging_assignments_panel_user,priority:1"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_tagging_assignments_panel_user,priority:2"`
	QuestionIds datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
}

func (TaggingAssignment) TableName() string {
	return "tagging_assignments"
}
