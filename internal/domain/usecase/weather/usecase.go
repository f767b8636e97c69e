package weather

import "errors"

// ErrNoWeatherCondition is returned when the API response carries an empty "weather" list.
var ErrNoWeatherCondition = errors.New("weather response has no conditions")

type UseCase interface {
	// FetchDescription returns the description of the first current weather condition for city
	FetchDescription(city string, apiKey string) (string, error)
}
