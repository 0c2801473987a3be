package models

const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

type EcoAction struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"uniqueIndex;not null" json:"title"`
	Description string  `gorm:"not null" json:"description"`
	CO2SavedKg  float64 `gorm:"column:co2_saved_kg;not null" json:"co2_saved_kg"`
	Category    string  `gorm:"not null" json:"category"`
	Difficulty  string  `gorm:"not null" json:"difficulty"`
	Period      string  `gorm:"not null;default:daily" json:"period"`
}

// DefaultCatalog lists the starter actions the catalog is reconciled against.
// Titles are the dedup key, so re-seeding never duplicates an entry.
func DefaultCatalog() []EcoAction {
	return []EcoAction{
		{Title: "Use Public Transport", Description: "Reduce your carbon footprint by taking the bus or train.", CO2SavedKg: 2.5, Category: "Transport", Difficulty: "Easy", Period: PeriodDaily},
		{Title: "Switch Off Lights", Description: "Save energy by turning off lights when not in use.", CO2SavedKg: 0.5, Category: "Energy", Difficulty: "Easy", Period: PeriodDaily},
		{Title: "Plant a Tree", Description: "Contribute to long-term carbon absorption and air purification.", CO2SavedKg: 20.0, Category: "Nature", Difficulty: "Hard", Period: PeriodMonthly},
		{Title: "Reduce Meat Intake", Description: "Lower methane emissions by choosing plant-based meals.", CO2SavedKg: 1.8, Category: "Diet", Difficulty: "Medium", Period: PeriodWeekly},
		{Title: "Switch to LED Bulbs", Description: "Replace all incandescent bulbs with energy-efficient LEDs.", CO2SavedKg: 50.0, Category: "Energy", Difficulty: "Easy", Period: PeriodMonthly},
		{Title: "Ride a Bike to Work", Description: "Commute by bicycle instead of driving a car.", CO2SavedKg: 4.5, Category: "Transport", Difficulty: "Medium", Period: PeriodDaily},
		{Title: "Start Composting", Description: "Compost organic kitchen waste to reduce landfill methane.", CO2SavedKg: 150.0, Category: "Waste", Difficulty: "Medium", Period: PeriodMonthly},
		{Title: "Use Reusable Bags", Description: "Bring your own bags when shopping.", CO2SavedKg: 5.0, Category: "Waste", Difficulty: "Easy", Period: PeriodWeekly},
		{Title: "Lower Thermostat in Winter", Description: "Lower your thermostat by 2 degrees.", CO2SavedKg: 100.0, Category: "Energy", Difficulty: "Easy", Period: PeriodMonthly},
		{Title: "Install Solar Panels", Description: "Generate your own clean electricity.", CO2SavedKg: 1500.0, Category: "Energy", Difficulty: "Hard", Period: PeriodMonthly},
	}
}
