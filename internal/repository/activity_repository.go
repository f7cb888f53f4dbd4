package repository

import (
	"github.com/classroomquiz/backend/internal/model"
	"gorm.io/gorm"
)

// ActivityRepository is the durable tier of the activity store. The two-tier
// store in internal/store treats every error from it as "primary unavailable"
// and degrades to memory, so implementations just report errors as-is.
type ActivityRepository interface {
	Create(activity *model.Activity) error
	FindByID(id uint) (*model.Activity, error)
	FindByOwner(ownerID uint) ([]model.Activity, error)
	FindAll() ([]model.Activity, error)
	Delete(id uint) error
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	if db == nil {
		return nil
	}
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(activity *model.Activity) error {
	return r.db.Create(activity).Error
}

func (r *activityRepository) FindByID(id uint) (*model.Activity, error) {
	var activity model.Activity
	if err := r.db.First(&activity, id).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) FindByOwner(ownerID uint) ([]model.Activity, error) {
	var activities []model.Activity
	if err := r.db.Where("owner_id = ?", ownerID).Order("created_at desc").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) FindAll() ([]model.Activity, error) {
	var activities []model.Activity
	if err := r.db.Order("created_at desc").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) Delete(id uint) error {
	return r.db.Delete(&model.Activity{}, id).Error
}
