package memory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot() MergeSnapshot {
	prior := uuid.New()
	return MergeSnapshot{
		GroupId: uuid.New(),
		PriorGroupIds: map[uuid.UUID]*uuid.UUID{
			uuid.New(): nil,
			uuid.New(): &prior,
		},
		TakenAt: time.Now(),
	}
}

func TestUndoStackLIFO(t *testing.T) {
	repo := NewUndoStackRepository()
	panelId, userId := uuid.New(), uuid.New()

	first := snapshot()
	second := snapshot()
	repo.Push(panelId, userId, first)
	repo.Push(panelId, userId, second)
	assert.Equal(t, 2, repo.Depth(panelId, userId))

	popped, ok := repo.Pop(panelId, userId)
	require.True(t, ok)
	assert.Equal(t, second.GroupId, popped.GroupId)

	popped, ok = repo.Pop(panelId, userId)
	require.True(t, ok)
	assert.Equal(t, first.GroupId, popped.GroupId)

	_, ok = repo.Pop(panelId, userId)
	assert.False(t, ok, "empty stack pops nothing")
}

func TestUndoStacksAreIsolatedPerUserAndPanel(t *testing.T) {
	repo := NewUndoStackRepository()
	panelId := uuid.New()
	alice, bob := uuid.New(), uuid.New()

	repo.Push(panelId, alice, snapshot())

	_, ok := repo.Pop(panelId, bob)
	assert.False(t, ok, "another user's stack stays untouched")

	_, ok = repo.Pop(uuid.New(), alice)
	assert.False(t, ok, "same user, different panel is a separate stack")

	_, ok = repo.Pop(panelId, alice)
	assert.True(t, ok)
}

func TestUndoStackClear(t *testing.T) {
	repo := NewUndoStackRepository()
	panelId, userId := uuid.New(), uuid.New()

	repo.Push(panelId, userId, snapshot())
	repo.Push(panelId, userId, snapshot())
	repo.Clear(panelId, userId)

	assert.Equal(t, 0, repo.Depth(panelId, userId))
	_, ok := repo.Pop(panelId, userId)
	assert.False(t, ok)
}
