package entity

import (
	"time"

	"github.com/google/uuid"
)

// SimilarityGroup is a merge of two or more questions deemed duplicates during
// tagging. RepresentativeId is the lowest member question id and stands in for
// the whole group during voting.
type SimilarityGroup struct {
	Id               uuid.UUID
	PanelId          uuid.UUID
	CreatedBy        uuid.UUID
	RepresentativeId uuid.UUID
	CreatedAt        time.Time
}
