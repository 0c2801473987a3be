package services

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BootstrapService reconciles the fixed startup state: one admin account and
// a non-empty catalog. It runs to completion before the server starts
// accepting traffic, and is safe to re-run.
type BootstrapService struct {
	auth    *AuthService
	catalog *CatalogService
	logger  *zap.Logger
}

func NewBootstrapService(auth *AuthService, catalog *CatalogService, logger *zap.Logger) *BootstrapService {
	return &BootstrapService{auth: auth, catalog: catalog, logger: logger}
}

func (service *BootstrapService) Run(adminUsername string, adminPassword string) error {
	if err := service.ensureAdmin(adminUsername, adminPassword); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	if err := service.catalog.EnsureSeeded(); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}

func (service *BootstrapService) ensureAdmin(username string, password string) error {
	_, err := service.auth.users.FindAdminByUsername(username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if _, err := service.auth.RegisterAdmin(username, password); err != nil {
		if errors.Is(err, ErrConflict) {
			// Lost a race with another process doing the same bootstrap.
			return nil
		}
		return err
	}
	service.logger.Info("default admin created", zap.String("username", username))
	return nil
}
