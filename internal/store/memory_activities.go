package store

import (
	"sort"
	"sync"
	"time"

	"github.com/classroomquiz/backend/internal/model"
)

// memoryOverlayBaseID keeps overlay-assigned ids clear of the primary store's
// autoincrement range, so merged listings never alias two different
// activities under one id.
const memoryOverlayBaseID uint = 1_000_000

// MemoryActivities is the in-memory tier of the activity store. It holds
// activities created while the primary store was unreachable (or all of them,
// when no database is configured).
type MemoryActivities struct {
	mu     sync.RWMutex
	nextID uint
	byID   map[uint]model.Activity
}

func NewMemoryActivities() *MemoryActivities {
	return &MemoryActivities{
		nextID: memoryOverlayBaseID,
		byID:   make(map[uint]model.Activity),
	}
}

func (m *MemoryActivities) Create(activity *model.Activity) {
	m.mu.Lock()
	defer m.mu.Unlock()

	activity.ID = m.nextID
	m.nextID++
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}
	m.byID[activity.ID] = *activity
}

func (m *MemoryActivities) Get(id uint) (model.Activity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	activity, ok := m.byID[id]
	return activity, ok
}

func (m *MemoryActivities) ByOwner(ownerID uint) []model.Activity {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []model.Activity
	for _, a := range m.byID {
		if a.OwnerID == ownerID {
			out = append(out, a)
		}
	}
	sortNewestFirst(out)
	return out
}

func (m *MemoryActivities) All() []model.Activity {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Activity, 0, len(m.byID))
	for _, a := range m.byID {
		out = append(out, a)
	}
	sortNewestFirst(out)
	return out
}

// Delete removes the activity when it exists and belongs to ownerID.
func (m *MemoryActivities) Delete(id, ownerID uint) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	activity, ok := m.byID[id]
	if !ok || activity.OwnerID != ownerID {
		return false
	}
	delete(m.byID, id)
	return true
}

// sortNewestFirst orders by creation time descending, id descending on equal
// timestamps so listings are stable.
func sortNewestFirst(activities []model.Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		if activities[i].CreatedAt.Equal(activities[j].CreatedAt) {
			return activities[i].ID > activities[j].ID
		}
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})
}
