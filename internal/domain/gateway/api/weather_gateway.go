package api

import (
	"fmt"

	"weather-reviewer/internal/domain/model/external"
)

// WeatherGateway defines the interface for weather-related external API calls
type WeatherGateway interface {
	// GetCurrentWeather gets the current conditions for a city by name
	GetCurrentWeather(city string, apiKey string) (*external.CurrentWeatherResponse, error)
}

// ResponseError is returned when the weather API answers with a non-2xx status.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("weather api responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("weather api responded with status %d: %s", e.StatusCode, e.Message)
}
