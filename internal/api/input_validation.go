package api

import (
	"errors"
	"strings"

	"github.com/aerosenselabs/aerosense/internal/models"
)

var emailRequirements = []string{"@", "."}

func validateRegisterInput(input registerInput) error {
	if strings.TrimSpace(input.Username) == "" {
		return errors.New("username is required")
	}
	if err := validateEmail(input.Email); err != nil {
		return err
	}
	if len(input.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return err
	}
	return nil
}

func validateEmail(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return errors.New("email is required")
	}
	for _, requirement := range emailRequirements {
		if !strings.Contains(trimmed, requirement) {
			return errors.New("email is invalid")
		}
	}
	return nil
}

func validateCoordinates(latitude float64, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return errors.New("latitude must be between -90 and 90")
	}
	if longitude < -180 || longitude > 180 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}

func validateSimulationInput(input simulationInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

func validateLocationInput(input locationInput) error {
	if strings.TrimSpace(input.CityName) == "" {
		return errors.New("city_name is required")
	}
	return validateCoordinates(input.Latitude, input.Longitude)
}

func validateEcoActionInput(input ecoActionInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return errors.New("description is required")
	}
	if input.CO2SavedKg < 0 {
		return errors.New("co2_saved_kg must not be negative")
	}
	switch input.Period {
	case "", models.PeriodDaily, models.PeriodWeekly, models.PeriodMonthly:
	default:
		return errors.New("period must be daily, weekly or monthly")
	}
	return nil
}
