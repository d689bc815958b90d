package model

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PanelId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserId       uuid.UUID  `gorm:"type:uuid;not null;index:idx_questions_panel_user,priority:2"`
	Text         string     `gorm:"type:text;not null"`
	LikeCount    int        `gorm:"not null;default:0"`
	DislikeCount int        `gorm:"not null;default:0"`
	FlagCount    int        `gorm:"not null;default:0"`
	GroupId      *uuid.UUID `gorm:"type:uuid;index"`
	FinalScore   float64    `gorm:"not null;default:0"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
}

func (Question) TableName() string {
	return "questions"
}
