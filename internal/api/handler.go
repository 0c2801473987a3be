package api

import (
	"github.com/aerosenselabs/aerosense/internal/db"
	"github.com/aerosenselabs/aerosense/internal/services"
	"github.com/aerosenselabs/aerosense/internal/weather"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const contextUserKey = "current_user"

type Handler struct {
	repositories *db.Repositories
	credentials  *services.CredentialService
	authService  *services.AuthService
	settingsSvc  *services.SettingsService
	catalogSvc   *services.CatalogService
	actionsSvc   *services.ActionsService
	statsSvc     *services.StatsService
	weather      *weather.Client
	logger       *zap.Logger
}

func NewHandler(database *gorm.DB, credentials *services.CredentialService, weatherClient *weather.Client, logger *zap.Logger) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		repositories: repositories,
		credentials:  credentials,
		authService:  services.NewAuthService(repositories.Users, repositories.Settings, credentials),
		settingsSvc:  services.NewSettingsService(repositories.Settings),
		catalogSvc:   services.NewCatalogService(repositories.EcoActions),
		actionsSvc:   services.NewActionsService(repositories.UserActions, repositories.EcoActions),
		statsSvc:     services.NewStatsService(repositories.Users, repositories.UserActions),
		weather:      weatherClient,
		logger:       logger,
	}
}

func (handler *Handler) AuthService() *services.AuthService {
	return handler.authService
}

func (handler *Handler) CatalogService() *services.CatalogService {
	return handler.catalogSvc
}
