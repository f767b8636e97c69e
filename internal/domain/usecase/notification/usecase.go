package notification

import "weather-reviewer/internal/domain/entity"

const (
	subjectKey = "mail.weather.subject"
	bodyKey    = "mail.weather.body"
)

type UseCase interface {
	// ComposeWeatherMessage builds the report email; sender and recipient are both senderAddress
	ComposeWeatherMessage(city string, description string, senderAddress string) entity.EmailMessage

	// NotifyWeather composes the report email and sends it authenticated as senderAddress/credential
	NotifyWeather(city string, description string, senderAddress string, credential string) error
}
