package services

import "math"

type StatsUserRepository interface {
	CountUsers() (int64, error)
}

type StatsActionRepository interface {
	CountAll() (int64, error)
	SumImpact() (float64, error)
}

type Stats struct {
	TotalUsers   int64   `json:"total_users"`
	TotalActions int64   `json:"total_actions"`
	TotalImpact  float64 `json:"total_impact"`
}

type StatsService struct {
	users   StatsUserRepository
	records StatsActionRepository
}

func NewStatsService(users StatsUserRepository, records StatsActionRepository) *StatsService {
	return &StatsService{users: users, records: records}
}

// Aggregate totals users, completions, and the CO2 impact of completions
// whose catalog entry still exists, rounded to two decimals.
func (service *StatsService) Aggregate() (Stats, error) {
	userCount, err := service.users.CountUsers()
	if err != nil {
		return Stats{}, err
	}
	actionCount, err := service.records.CountAll()
	if err != nil {
		return Stats{}, err
	}
	impact, err := service.records.SumImpact()
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		TotalUsers:   userCount,
		TotalActions: actionCount,
		TotalImpact:  math.Round(impact*100) / 100,
	}, nil
}
