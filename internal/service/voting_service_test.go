package service

import (
	"testing"

	"panel-review-be/internal/dto"
	"panel-review-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepresentativeSetUngrouped(t *testing.T) {
	q1 := &entity.Question{Id: uuid.New(), Text: "a", LikeCount: 3, DislikeCount: 1}
	q2 := &entity.Question{Id: uuid.New(), Text: "b", LikeCount: 1}

	items := representativeSet([]*entity.Question{q1, q2}, nil)
	require.Len(t, items, 2)
	assert.Equal(t, q1.Id, items[0].Id)
	assert.Equal(t, 3, items[0].LikeCount)
	assert.Equal(t, 1, items[0].GroupSize)
}

func TestRepresentativeSetCollapsesGroups(t *testing.T) {
	groupId := uuid.New()
	rep := &entity.Question{Id: uuid.New(), Text: "rep", LikeCount: 2, DislikeCount: 1, GroupId: &groupId}
	dup := &entity.Question{Id: uuid.New(), Text: "dup", LikeCount: 4, GroupId: &groupId}
	solo := &entity.Question{Id: uuid.New(), Text: "solo", LikeCount: 1}

	groups := []*entity.SimilarityGroup{{Id: groupId, RepresentativeId: rep.Id}}

	items := representativeSet([]*entity.Question{rep, dup, solo}, groups)
	require.Len(t, items, 2)

	var grouped *dto.VotingSetItem
	for _, item := range items {
		if item.Id == rep.Id {
			grouped = item
		}
	}
	require.NotNil(t, grouped)
	assert.Equal(t, "rep", grouped.Text)
	assert.Equal(t, 6, grouped.LikeCount, "group counters are combined")
	assert.Equal(t, 1, grouped.DislikeCount)
	assert.Equal(t, 2, grouped.GroupSize)
}

func TestRepresentativeSetOrphanGroupFallsBackToSelf(t *testing.T) {
	// A group id with no group row should not lose the question.
	groupId := uuid.New()
	q := &entity.Question{Id: uuid.New(), Text: "orphan", GroupId: &groupId}

	items := representativeSet([]*entity.Question{q}, nil)
	require.Len(t, items, 1)
	assert.Equal(t, q.Id, items[0].Id)
}
