package main

import (
	"errors"
	"os"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"weather-reviewer/configs"
	"weather-reviewer/internal/application/runner"
	"weather-reviewer/internal/domain/gateway/api"
	mailgateway "weather-reviewer/internal/domain/gateway/mail"
	"weather-reviewer/internal/domain/usecase/notification"
	"weather-reviewer/internal/domain/usecase/weather"
	"weather-reviewer/pkg/http"
	"weather-reviewer/pkg/log"
	"weather-reviewer/pkg/mail"
	"weather-reviewer/pkg/msg"
)

func main() {
	os.Exit(run())
}

func run() int {
	defer log.Sync()

	messages, err := configs.Messages()
	if err != nil {
		log.Error("Failed to load message catalog", zap.Error(err))
		return 1
	}

	cfg, err := configs.Load()
	if err != nil {
		logConfigError(messages, err)
		return 1
	}

	log.SetName(cfg.ApplicationName)
	if !log.SetLevel(cfg.LogLevel) {
		log.Warn(messages.Get("app.unknown-log-level", cfg.LogLevel))
	}

	log.Info(messages.Get("app.start"),
		zap.String("city", cfg.Weather.City),
		zap.String("weather_api", cfg.Weather.BaseURL))

	// Init Gateways
	weatherGateway := api.NewWeatherGateway(cfg.Weather.BaseURL, http.ClientOptions{})
	mailClient := mail.NewClient(mail.ClientOptions{Host: cfg.Mail.Host, Port: cfg.Mail.Port})
	mailGateway := mailgateway.NewMailGateway(mailClient)

	// Init UseCases
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway)
	notificationUseCase := notification.NewNotificationUseCase(mailGateway, messages)

	report, err := runner.NewWeatherReportRunner(cfg, weatherUseCase, notificationUseCase).Run()
	if err != nil {
		log.Error(messages.Get("app.failed"), zap.Error(err))
		return 1
	}

	log.Info(messages.Get("app.finish"),
		zap.String("city", report.City),
		zap.String("description", report.Description),
		zap.String("smtp", mailClient.Addr()))
	return 0
}

func logConfigError(messages *msg.Catalog, err error) {
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		log.Error(messages.Get("app.config-error"), zap.Error(err))
		return
	}

	for _, e := range merr.Errors {
		var missing *configs.MissingConfigError
		if errors.As(e, &missing) {
			log.Error(messages.Get("app.config-error"), zap.String("key", missing.Key), zap.String("env", missing.Env))
			continue
		}
		log.Error(messages.Get("app.config-error"), zap.Error(e))
	}
}
