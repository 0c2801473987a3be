package db

import (
	"github.com/aerosenselabs/aerosense/internal/models"
	"gorm.io/gorm"
)

type SimulationRepository struct {
	database *gorm.DB
}

func NewSimulationRepository(database *gorm.DB) *SimulationRepository {
	return &SimulationRepository{database: database}
}

func (repo *SimulationRepository) ListByUser(userID string) ([]models.SavedSimulation, error) {
	simulations := make([]models.SavedSimulation, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&simulations).Error; err != nil {
		return nil, err
	}
	return simulations, nil
}

func (repo *SimulationRepository) Create(simulation *models.SavedSimulation) error {
	return repo.database.Create(simulation).Error
}

// Delete is scoped by both id and owner. A mismatched owner affects zero
// rows, which callers treat as a silent no-op.
func (repo *SimulationRepository) Delete(simulationID string, userID string) error {
	return repo.database.
		Where("id = ? AND user_id = ?", simulationID, userID).
		Delete(&models.SavedSimulation{}).Error
}
