package model

import (
	"time"

	"github.com/google/uuid"
)

type SimilarityGroup struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PanelId          uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedBy        uuid.UUID `gorm:"type:uuid;not null"`
	RepresentativeId uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (SimilarityGroup) TableName() string {
	return "similarity_groups"
}
