package model

import (
	"time"

	"github.com/google/uuid"
)

type Panel struct {
	Id                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name                  string    `gorm:"type:varchar(255);not null"`
	Description           string    `gorm:"type:text"`
	Visibility            string    `gorm:"type:varchar(16);not null;default:'public'"`
	VideoLink             string    `gorm:"type:text"`
	ExpectedQuestionCount int       `gorm:"not null"`
	IntakeDeadline        time.Time `gorm:"not null"`
	TagDeadline           time.Time `gorm:"not null"`
	VoteDeadline          time.Time `gorm:"not null"`
	PresentationDate      time.Time `gorm:"not null"`
	CreatedAt             time.Time `gorm:"autoCreateTime"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime"`
}

func (Panel) TableName() string {
	return "panels"
}
