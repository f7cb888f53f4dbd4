package store

import (
	"github.com/classroomquiz/backend/internal/model"
	"github.com/classroomquiz/backend/internal/repository"
	"github.com/rs/zerolog/log"
)

// ActivityStore is the two-tier activity collection: a durable primary
// (Postgres via the repository) overlaid with an in-memory tier. A primary
// outage degrades writes and reads to the overlay instead of failing the
// request, so quiz submission and statistics stay available without the
// database.
type ActivityStore interface {
	Create(activity *model.Activity) error
	Get(id uint) (*model.Activity, bool)
	ListByOwner(ownerID uint) []model.Activity
	ListAll() []model.Activity
	Delete(id, ownerID uint) bool
}

type activityStore struct {
	primary repository.ActivityRepository // nil when no database is configured
	mem     *MemoryActivities
}

func NewActivityStore(primary repository.ActivityRepository, mem *MemoryActivities) ActivityStore {
	return &activityStore{primary: primary, mem: mem}
}

func (s *activityStore) Create(activity *model.Activity) error {
	if s.primary == nil {
		s.mem.Create(activity)
		return nil
	}
	if err := s.primary.Create(activity); err != nil {
		log.Warn().Err(err).Msg("Primary store unavailable on create, keeping activity in memory")
		s.mem.Create(activity)
	}
	return nil
}

func (s *activityStore) Get(id uint) (*model.Activity, bool) {
	if activity, ok := s.mem.Get(id); ok {
		return &activity, true
	}
	if s.primary == nil {
		return nil, false
	}
	activity, err := s.primary.FindByID(id)
	if err != nil {
		return nil, false
	}
	return activity, true
}

func (s *activityStore) ListByOwner(ownerID uint) []model.Activity {
	memList := s.mem.ByOwner(ownerID)
	if s.primary == nil {
		return memList
	}
	dbList, err := s.primary.FindByOwner(ownerID)
	if err != nil {
		log.Warn().Err(err).Uint("ownerID", ownerID).Msg("Primary store unavailable on list, serving memory tier")
		return memList
	}
	return mergeWithoutDuplicates(memList, dbList)
}

func (s *activityStore) ListAll() []model.Activity {
	memList := s.mem.All()
	if s.primary == nil {
		return memList
	}
	dbList, err := s.primary.FindAll()
	if err != nil {
		log.Warn().Err(err).Msg("Primary store unavailable on list, serving memory tier")
		return memList
	}
	return mergeWithoutDuplicates(memList, dbList)
}

func (s *activityStore) Delete(id, ownerID uint) bool {
	if s.mem.Delete(id, ownerID) {
		return true
	}
	if s.primary == nil {
		return false
	}
	target, err := s.primary.FindByID(id)
	if err != nil {
		return false
	}
	if target.OwnerID != ownerID {
		return false
	}
	if err := s.primary.Delete(id); err != nil {
		log.Error().Err(err).Uint("activityID", id).Msg("Failed to delete activity from primary store")
		return false
	}
	return true
}

// mergeWithoutDuplicates keeps overlay entries whose id is absent from the
// primary result, overlay entries first.
func mergeWithoutDuplicates(memList, dbList []model.Activity) []model.Activity {
	if len(memList) == 0 {
		return dbList
	}
	dbIDs := make(map[uint]struct{}, len(dbList))
	for _, a := range dbList {
		dbIDs[a.ID] = struct{}{}
	}
	merged := make([]model.Activity, 0, len(memList)+len(dbList))
	for _, a := range memList {
		if _, dup := dbIDs[a.ID]; !dup {
			merged = append(merged, a)
		}
	}
	return append(merged, dbList...)
}
