package repository

import (
	"sync"

	"github.com/classroomquiz/backend/internal/model"
	"gorm.io/gorm"
)

// memoryUserRepository backs auth when no database is reachable. Accounts
// created here live for the lifetime of the process.
type memoryUserRepository struct {
	mu      sync.RWMutex
	nextID  uint
	byID    map[uint]model.User
	byEmail map[string]uint
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		nextID:  1,
		byID:    make(map[uint]model.User),
		byEmail: make(map[string]uint),
	}
}

func (r *memoryUserRepository) Create(user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return gorm.ErrDuplicatedKey
	}
	user.ID = r.nextID
	r.nextID++
	r.byID[user.ID] = *user
	r.byEmail[user.Email] = user.ID
	return nil
}

func (r *memoryUserRepository) FindByEmail(email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	user := r.byID[id]
	return &user, nil
}

func (r *memoryUserRepository) FindByID(id uint) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}
