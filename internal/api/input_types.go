package api

type registerInput struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FullName  string  `json:"full_name"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminCredentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type settingsInput struct {
	SelectedCity string         `json:"selected_city"`
	Latitude     float64        `json:"latitude"`
	Longitude    float64        `json:"longitude"`
	Preferences  map[string]any `json:"preferences"`
}

type simulationInput struct {
	Name               string  `json:"name"`
	WindSpeed          float64 `json:"wind_speed"`
	RainChance         float64 `json:"rain_chance"`
	Temperature        float64 `json:"temperature"`
	Humidity           float64 `json:"humidity"`
	TrafficDensity     float64 `json:"traffic_density"`
	IndustrialActivity float64 `json:"industrial_activity"`
}

type locationInput struct {
	CityName  string  `json:"city_name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ecoActionInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CO2SavedKg  float64 `json:"co2_saved_kg"`
	Category    string  `json:"category"`
	Difficulty  string  `json:"difficulty"`
	Period      string  `json:"period"`
}

type completeActionInput struct {
	ActionID string `json:"action_id"`
	Notes    string `json:"notes"`
}
