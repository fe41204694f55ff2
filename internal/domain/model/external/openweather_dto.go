package external

// CurrentWeather holds the fields read from an OpenWeatherMap current weather document.
// Missing numeric fields are zero and a missing name is "Unknown".
type CurrentWeather struct {
	Name          string  `json:"name"`
	WindSpeed     float64 `json:"windSpeed"`
	WindDirection float64 `json:"windDirection"`
	Temperature   float64 `json:"temperature"`
	Pressure      float64 `json:"pressure"`
	Humidity      float64 `json:"humidity"`
}

// OpenWeatherErrorResponse is the body returned with non-2xx statuses
type OpenWeatherErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
