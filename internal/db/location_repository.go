package db

import (
	"github.com/aerosenselabs/aerosense/internal/models"
	"gorm.io/gorm"
)

type LocationRepository struct {
	database *gorm.DB
}

func NewLocationRepository(database *gorm.DB) *LocationRepository {
	return &LocationRepository{database: database}
}

func (repo *LocationRepository) ListByUser(userID string) ([]models.FavoriteLocation, error) {
	locations := make([]models.FavoriteLocation, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (repo *LocationRepository) Create(location *models.FavoriteLocation) error {
	return repo.database.Create(location).Error
}

func (repo *LocationRepository) Delete(locationID string, userID string) error {
	return repo.database.
		Where("id = ? AND user_id = ?", locationID, userID).
		Delete(&models.FavoriteLocation{}).Error
}
