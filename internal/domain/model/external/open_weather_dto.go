package external

// CurrentWeatherResponse represents the response from the OpenWeatherMap current weather API.
// Only the fields the report reads are mapped.
type CurrentWeatherResponse struct {
	Name    string             `json:"name"`
	Weather []WeatherCondition `json:"weather"`
}

// WeatherCondition represents one entry of the "weather" list
type WeatherCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// OpenWeatherErrorResponse represents error responses from the OpenWeatherMap API.
// cod is a number on some endpoints and a string on others.
type OpenWeatherErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
