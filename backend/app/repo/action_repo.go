package repo

import (
	"droidsweep/backend/app/models"

	"gorm.io/gorm"
)

type UserActionRepository struct{ db *gorm.DB }

func NewUserActionRepository(db *gorm.DB) *UserActionRepository {
	return &UserActionRepository{db: db}
}

func (r *UserActionRepository) Create(a *models.UserAction) error {
	return r.db.Create(a).Error
}

// ListByDevice returns all actions for one device in ascending created_at,
// the order the disabled-set fold expects.
func (r *UserActionRepository) ListByDevice(deviceID string) ([]models.UserAction, error) {
	var actions []models.UserAction
	if err := r.db.Where("device_id = ?", deviceID).
		Order("created_at ASC, id ASC").
		Find(&actions).Error; err != nil {
		return nil, err
	}
	return actions, nil
}

func (r *UserActionRepository) ListByUser(userID uint) ([]models.UserAction, error) {
	var actions []models.UserAction
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&actions).Error; err != nil {
		return nil, err
	}
	return actions, nil
}
