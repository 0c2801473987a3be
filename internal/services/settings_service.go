package services

import (
	"errors"

	"github.com/aerosenselabs/aerosense/internal/models"
	"gorm.io/gorm"
)

type SettingsRepository interface {
	Find(userID string) (models.UserSettings, error)
	Upsert(userID string, settings models.UserSettings) (models.UserSettings, error)
}

type SettingsService struct {
	settings SettingsRepository
}

func NewSettingsService(settings SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// Get returns the stored settings, or the documented defaults when the user
// has never saved any. The defaults are not persisted by a read.
func (service *SettingsService) Get(userID string) (models.UserSettings, error) {
	settings, err := service.settings.Find(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultSettings(userID), nil
		}
		return models.UserSettings{}, err
	}
	return settings, nil
}

func (service *SettingsService) Update(userID string, settings models.UserSettings) (models.UserSettings, error) {
	if settings.Preferences == nil {
		settings.Preferences = map[string]any{}
	}
	return service.settings.Upsert(userID, settings)
}
