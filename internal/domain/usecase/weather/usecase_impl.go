package weather

import (
	"fmt"

	"weather-reviewer/internal/domain/gateway/api"
	"weather-reviewer/pkg/log"

	"go.uber.org/zap"
)

type weatherUseCase struct {
	apiGateway api.WeatherGateway
}

func NewWeatherUseCase(apiGateway api.WeatherGateway) UseCase {
	return &weatherUseCase{
		apiGateway: apiGateway,
	}
}

// FetchDescription performs one lookup and does not retry.
func (uc *weatherUseCase) FetchDescription(city string, apiKey string) (string, error) {
	response, err := uc.apiGateway.GetCurrentWeather(city, apiKey)
	if err != nil {
		return "", fmt.Errorf("city %s: %w", city, err)
	}

	if response == nil || len(response.Weather) == 0 {
		return "", fmt.Errorf("city %s: %w", city, ErrNoWeatherCondition)
	}

	description := response.Weather[0].Description
	log.Info("Current weather fetched",
		zap.String("city", city),
		zap.String("description", description),
		zap.Int("conditions", len(response.Weather)))

	return description, nil
}
