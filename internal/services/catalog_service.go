package services

import (
	"errors"

	"github.com/aerosenselabs/aerosense/internal/db"
	"github.com/aerosenselabs/aerosense/internal/models"
)

type EcoActionRepository interface {
	List() ([]models.EcoAction, error)
	FindByID(actionID string) (models.EcoAction, error)
	ListTitles() ([]string, error)
	Create(action *models.EcoAction) error
}

type CatalogService struct {
	actions EcoActionRepository
}

func NewCatalogService(actions EcoActionRepository) *CatalogService {
	return &CatalogService{actions: actions}
}

// EnsureSeeded reconciles the catalog against the starter list: only titles
// not yet present are inserted, so running it any number of times leaves a
// single entry per title. A concurrent insert of the same title loses to the
// unique index and is skipped.
func (service *CatalogService) EnsureSeeded() error {
	titles, err := service.actions.ListTitles()
	if err != nil {
		return err
	}

	existing := make(map[string]struct{}, len(titles))
	for _, title := range titles {
		existing[title] = struct{}{}
	}

	for _, action := range models.DefaultCatalog() {
		if _, present := existing[action.Title]; present {
			continue
		}
		action.ID = models.NewID()
		if err := service.actions.Create(&action); err != nil {
			if errors.Is(err, db.ErrDuplicate) {
				continue
			}
			return err
		}
	}
	return nil
}

func (service *CatalogService) List() ([]models.EcoAction, error) {
	return service.actions.List()
}

func (service *CatalogService) FindByID(actionID string) (models.EcoAction, error) {
	return service.actions.FindByID(actionID)
}

// CreateAction appends an admin-defined entry to the catalog.
func (service *CatalogService) CreateAction(action models.EcoAction) (models.EcoAction, error) {
	action.ID = models.NewID()
	if action.Period == "" {
		action.Period = models.PeriodDaily
	}
	if err := service.actions.Create(&action); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return models.EcoAction{}, ErrConflict
		}
		return models.EcoAction{}, err
	}
	return action, nil
}
