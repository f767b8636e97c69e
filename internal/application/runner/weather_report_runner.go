package runner

import (
	"fmt"

	"weather-reviewer/configs"
	"weather-reviewer/internal/domain/entity"
	"weather-reviewer/internal/domain/usecase/notification"
	"weather-reviewer/internal/domain/usecase/weather"
	"weather-reviewer/pkg/log"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WeatherReportRunner performs one fetch-then-notify cycle.
type WeatherReportRunner struct {
	config              *configs.Config
	weatherUseCase      weather.UseCase
	notificationUseCase notification.UseCase
}

func NewWeatherReportRunner(config *configs.Config, weatherUseCase weather.UseCase, notificationUseCase notification.UseCase) *WeatherReportRunner {
	return &WeatherReportRunner{
		config:              config,
		weatherUseCase:      weatherUseCase,
		notificationUseCase: notificationUseCase,
	}
}

// Run fetches the current weather for the configured city and mails it to the configured address.
// No email is sent when the fetch fails. Errors are returned for the caller to report.
func (r *WeatherReportRunner) Run() (*entity.WeatherReport, error) {
	requestID := uuid.New().String()
	city := r.config.Weather.City

	log.Info("Weather report triggered", zap.String("request_id", requestID), zap.String("city", city))

	description, err := r.weatherUseCase.FetchDescription(city, r.config.Weather.APIKey)
	if err != nil {
		return nil, fmt.Errorf("fetch weather: %w", err)
	}

	report := &entity.WeatherReport{City: city, Description: description}

	mail := r.config.Mail
	if err := r.notificationUseCase.NotifyWeather(report.City, report.Description, mail.Address, mail.Password); err != nil {
		return nil, fmt.Errorf("notify weather: %w", err)
	}

	log.Info("Weather report completed", zap.String("request_id", requestID), zap.String("description", description))
	return report, nil
}
