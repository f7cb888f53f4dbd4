package store

import (
	"sync"

	"github.com/classroomquiz/backend/internal/model"
)

// AttemptStore holds submitted attempts. Append is the only mutation apart
// from the cascade on activity deletion; repeated submissions by the same
// student are stored as separate attempts.
type AttemptStore interface {
	Append(attempt model.Attempt)
	ListByActivity(activityID uint) []model.Attempt
	ListAll() []model.Attempt
	DeleteAllForActivity(activityID uint)
}

type attemptStore struct {
	mu         sync.RWMutex
	byActivity map[uint][]model.Attempt
}

func NewAttemptStore() AttemptStore {
	return &attemptStore{byActivity: make(map[uint][]model.Attempt)}
}

func (s *attemptStore) Append(attempt model.Attempt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byActivity[attempt.ActivityID] = append(s.byActivity[attempt.ActivityID], attempt)
}

func (s *attemptStore) ListByActivity(activityID uint) []model.Attempt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	attempts := s.byActivity[activityID]
	out := make([]model.Attempt, len(attempts))
	copy(out, attempts)
	return out
}

func (s *attemptStore) ListAll() []model.Attempt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Attempt
	for _, attempts := range s.byActivity {
		out = append(out, attempts...)
	}
	return out
}

func (s *attemptStore) DeleteAllForActivity(activityID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byActivity, activityID)
}
