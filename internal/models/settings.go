package models

import "time"

const (
	DefaultCity      = "Coimbatore"
	DefaultLatitude  = 11.0168
	DefaultLongitude = 76.9558
)

type UserSettings struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	UserID       string         `gorm:"uniqueIndex;not null" json:"user_id"`
	SelectedCity string         `gorm:"not null;default:Coimbatore" json:"selected_city"`
	Latitude     float64        `gorm:"not null" json:"latitude"`
	Longitude    float64        `gorm:"not null" json:"longitude"`
	Preferences  map[string]any `gorm:"serializer:json" json:"preferences"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// DefaultSettings is what a user without a stored row sees. It is never
// persisted on read.
func DefaultSettings(userID string) UserSettings {
	return UserSettings{
		ID:           "default",
		UserID:       userID,
		SelectedCity: DefaultCity,
		Latitude:     DefaultLatitude,
		Longitude:    DefaultLongitude,
		Preferences:  map[string]any{},
	}
}
