package db

import (
	"errors"
	"time"

	"github.com/aerosenselabs/aerosense/internal/models"
	"gorm.io/gorm"
)

type SettingsRepository struct {
	database *gorm.DB
}

func NewSettingsRepository(database *gorm.DB) *SettingsRepository {
	return &SettingsRepository{database: database}
}

// Find returns the stored settings row, or gorm.ErrRecordNotFound when the
// user has never written one.
func (repo *SettingsRepository) Find(userID string) (models.UserSettings, error) {
	var settings models.UserSettings
	if err := repo.database.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return models.UserSettings{}, err
	}
	return settings, nil
}

// Upsert overwrites all fields of the user's settings row, creating it on
// first write. The updated timestamp is refreshed either way.
func (repo *SettingsRepository) Upsert(userID string, settings models.UserSettings) (models.UserSettings, error) {
	settings.UserID = userID
	settings.UpdatedAt = time.Now().UTC()

	var existing models.UserSettings
	err := repo.database.Where("user_id = ?", userID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		settings.ID = models.NewID()
		if err := repo.database.Create(&settings).Error; err != nil {
			return models.UserSettings{}, translateWriteError(err)
		}
		return settings, nil
	case err != nil:
		return models.UserSettings{}, err
	}

	settings.ID = existing.ID
	if err := repo.database.Save(&settings).Error; err != nil {
		return models.UserSettings{}, err
	}
	return settings, nil
}
