package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrDuplicate is returned when a storage-level uniqueness constraint
// rejects a write. Handlers rely on this to close check-then-insert races.
var ErrDuplicate = errors.New("duplicate record")

func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
