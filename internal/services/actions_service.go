package services

import (
	"errors"
	"time"

	"github.com/aerosenselabs/aerosense/internal/db"
	"github.com/aerosenselabs/aerosense/internal/models"
	"gorm.io/gorm"
)

var (
	ErrActionNotFound = errors.New("eco action not found")
	ErrAlreadyDone    = errors.New("action already completed")
)

type UserActionRepository interface {
	ExistsPair(userID string, actionID string) (bool, error)
	Create(record *models.UserAction) error
	ListByUserNewestFirst(userID string) ([]models.UserAction, error)
}

type ActionCatalogLookup interface {
	FindByID(actionID string) (models.EcoAction, error)
	FindByIDs(actionIDs []string) (map[string]models.EcoAction, error)
}

type ActionsService struct {
	records UserActionRepository
	catalog ActionCatalogLookup
}

func NewActionsService(records UserActionRepository, catalog ActionCatalogLookup) *ActionsService {
	return &ActionsService{records: records, catalog: catalog}
}

// Complete records the (user, action) pair once. A second attempt returns
// ErrAlreadyDone and leaves the original record untouched; the unique index
// on the pair guarantees that even when two attempts race.
func (service *ActionsService) Complete(userID string, actionID string, notes string) error {
	if _, err := service.catalog.FindByID(actionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrActionNotFound
		}
		return err
	}

	done, err := service.records.ExistsPair(userID, actionID)
	if err != nil {
		return err
	}
	if done {
		return ErrAlreadyDone
	}

	record := models.UserAction{
		ID:          models.NewID(),
		UserID:      userID,
		ActionID:    actionID,
		CompletedAt: time.Now().UTC(),
		Notes:       notes,
	}
	if err := service.records.Create(&record); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrAlreadyDone
		}
		return err
	}
	return nil
}

// History lists completions newest-first with their catalog definitions
// attached. A completion whose action has since been removed keeps a nil
// Action rather than disappearing.
func (service *ActionsService) History(userID string) ([]models.HistoryEntry, error) {
	records, err := service.records.ListByUserNewestFirst(userID)
	if err != nil {
		return nil, err
	}

	actionIDs := make([]string, 0, len(records))
	for _, record := range records {
		actionIDs = append(actionIDs, record.ActionID)
	}
	actionsByID, err := service.catalog.FindByIDs(actionIDs)
	if err != nil {
		return nil, err
	}

	entries := make([]models.HistoryEntry, 0, len(records))
	for _, record := range records {
		entry := models.HistoryEntry{UserAction: record}
		if action, found := actionsByID[record.ActionID]; found {
			actionCopy := action
			entry.Action = &actionCopy
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
