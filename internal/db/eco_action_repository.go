package db

import (
	"github.com/aerosenselabs/aerosense/internal/models"
	"gorm.io/gorm"
)

type EcoActionRepository struct {
	database *gorm.DB
}

func NewEcoActionRepository(database *gorm.DB) *EcoActionRepository {
	return &EcoActionRepository{database: database}
}

func (repo *EcoActionRepository) List() ([]models.EcoAction, error) {
	actions := make([]models.EcoAction, 0)
	if err := repo.database.Order("title ASC").Find(&actions).Error; err != nil {
		return nil, err
	}
	return actions, nil
}

func (repo *EcoActionRepository) FindByID(actionID string) (models.EcoAction, error) {
	var action models.EcoAction
	if err := repo.database.Where("id = ?", actionID).First(&action).Error; err != nil {
		return models.EcoAction{}, err
	}
	return action, nil
}

func (repo *EcoActionRepository) ListTitles() ([]string, error) {
	titles := make([]string, 0)
	if err := repo.database.Model(&models.EcoAction{}).Pluck("title", &titles).Error; err != nil {
		return nil, err
	}
	return titles, nil
}

// Create maps title uniqueness violations to ErrDuplicate so concurrent
// seed runs cannot double-insert a catalog entry.
func (repo *EcoActionRepository) Create(action *models.EcoAction) error {
	return translateWriteError(repo.database.Create(action).Error)
}

func (repo *EcoActionRepository) FindByIDs(actionIDs []string) (map[string]models.EcoAction, error) {
	actions := make([]models.EcoAction, 0)
	if len(actionIDs) > 0 {
		if err := repo.database.Where("id IN ?", actionIDs).Find(&actions).Error; err != nil {
			return nil, err
		}
	}

	byID := make(map[string]models.EcoAction, len(actions))
	for _, action := range actions {
		byID[action.ID] = action
	}
	return byID, nil
}
