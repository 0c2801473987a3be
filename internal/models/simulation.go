package models

import "time"

type SavedSimulation struct {
	ID                 string    `gorm:"primaryKey" json:"id"`
	UserID             string    `gorm:"index;not null" json:"user_id"`
	Name               string    `gorm:"not null" json:"name"`
	WindSpeed          float64   `gorm:"not null" json:"wind_speed"`
	RainChance         float64   `gorm:"not null" json:"rain_chance"`
	Temperature        float64   `gorm:"not null" json:"temperature"`
	Humidity           float64   `gorm:"not null" json:"humidity"`
	TrafficDensity     float64   `gorm:"not null" json:"traffic_density"`
	IndustrialActivity float64   `gorm:"not null" json:"industrial_activity"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
}
