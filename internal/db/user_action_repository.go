package db

import (
	"github.com/aerosenselabs/aerosense/internal/models"
	"gorm.io/gorm"
)

type UserActionRepository struct {
	database *gorm.DB
}

func NewUserActionRepository(database *gorm.DB) *UserActionRepository {
	return &UserActionRepository{database: database}
}

func (repo *UserActionRepository) ExistsPair(userID string, actionID string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.UserAction{}).
		Where("user_id = ? AND action_id = ?", userID, actionID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

// Create maps (user, action) pair violations to ErrDuplicate; a pair can
// only ever be recorded once.
func (repo *UserActionRepository) Create(record *models.UserAction) error {
	return translateWriteError(repo.database.Create(record).Error)
}

func (repo *UserActionRepository) ListByUserNewestFirst(userID string) ([]models.UserAction, error) {
	records := make([]models.UserAction, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("completed_at DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *UserActionRepository) CountAll() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.UserAction{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumImpact totals co2_saved_kg across completions joined to their catalog
// entry. Completions whose action has been removed contribute zero.
func (repo *UserActionRepository) SumImpact() (float64, error) {
	var total float64
	err := repo.database.Raw(`
SELECT COALESCE(SUM(eco_actions.co2_saved_kg), 0)
FROM user_actions
JOIN eco_actions ON eco_actions.id = user_actions.action_id`).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
