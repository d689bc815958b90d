package model

import (
	"time"

	"github.com/google/uuid"
)

type Metric struct {
	Id                         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PanelId                    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_metrics_panel_user,priority:1"`
	UserId                     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_metrics_panel_user,priority:2"`
	QuestionStageScore         float64   `gorm:"not null;default:0"`
	TagStageScore              float64   `gorm:"not null;default:0"`
	VoteStageScore             float64   `gorm:"not null;default:0"`
	EnteredQuestionsTotalScore float64   `gorm:"not null;default:0"`
	FinalTotalScore            float64   `gorm:"not null;default:0"`
	ComputedAt                 time.Time `gorm:"not null"`
}

func (Metric) TableName() string {
	return "metrics"
}
