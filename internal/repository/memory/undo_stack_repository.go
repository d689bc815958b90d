package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// MergeSnapshot captures the grouping state immediately before one MarkSimilar
// call: the group it created and the prior group assignment of every affected
// question. Restoring a snapshot undoes exactly that merge.
type MergeSnapshot struct {
	GroupId       uuid.UUID
	PriorGroupIds map[uuid.UUID]*uuid.UUID
	TakenAt       time.Time
}

// UndoStackRepository holds per-(panel, user) LIFO stacks of merge snapshots.
// The stack is a tagging-session convenience, not an audit log: entries expire
// with the session and are discarded once the user moves past tagging.
type UndoStackRepository struct {
	cache *cache.Cache
	mu    sync.Mutex
}

func NewUndoStackRepository() *UndoStackRepository {
	// Default expiration of 2 hours covers a tagging session; expired stacks
	// are purged every 10 minutes.
	c := cache.New(2*time.Hour, 10*time.Minute)
	return &UndoStackRepository{
		cache: c,
	}
}

func stackKey(panelId, userId uuid.UUID) string {
	return fmt.Sprintf("%s:%s", panelId, userId)
}

// Push appends a snapshot to the user's stack, refreshing its TTL.
func (r *UndoStackRepository) Push(panelId, userId uuid.UUID, snapshot MergeSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := stackKey(panelId, userId)
	var stack []MergeSnapshot
	if x, found := r.cache.Get(key); found {
		stack = x.([]MergeSnapshot)
	}
	stack = append(stack, snapshot)
	r.cache.Set(key, stack, cache.DefaultExpiration)
}

// Pop removes and returns the most recent snapshot. The second return value
// is false when the stack is empty.
func (r *UndoStackRepository) Pop(panelId, userId uuid.UUID) (MergeSnapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := stackKey(panelId, userId)
	x, found := r.cache.Get(key)
	if !found {
		return MergeSnapshot{}, false
	}
	stack := x.([]MergeSnapshot)
	if len(stack) == 0 {
		return MergeSnapshot{}, false
	}

	top := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	if len(stack) == 0 {
		r.cache.Delete(key)
	} else {
		r.cache.Set(key, stack, cache.DefaultExpiration)
	}
	return top, true
}

// Depth reports how many merges the user can currently undo.
func (r *UndoStackRepository) Depth(panelId, userId uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if x, found := r.cache.Get(stackKey(panelId, userId)); found {
		return len(x.([]MergeSnapshot))
	}
	return 0
}

// Clear drops the user's stack entirely, e.g. when tagging closes.
func (r *UndoStackRepository) Clear(panelId, userId uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache.Delete(stackKey(panelId, userId))
}
