package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Settings    *SettingsRepository
	Simulations *SimulationRepository
	Locations   *LocationRepository
	EcoActions  *EcoActionRepository
	UserActions *UserActionRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Settings:    NewSettingsRepository(database),
		Simulations: NewSimulationRepository(database),
		Locations:   NewLocationRepository(database),
		EcoActions:  NewEcoActionRepository(database),
		UserActions: NewUserActionRepository(database),
	}
}
