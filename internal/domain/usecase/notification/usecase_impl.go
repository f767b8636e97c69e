package notification

import (
	"fmt"

	"weather-reviewer/internal/domain/entity"
	"weather-reviewer/internal/domain/gateway/mail"
	"weather-reviewer/pkg/log"
	"weather-reviewer/pkg/msg"

	"go.uber.org/zap"
)

type notificationUseCase struct {
	mailGateway mail.MailGateway
	messages    *msg.Catalog
}

func NewNotificationUseCase(mailGateway mail.MailGateway, messages *msg.Catalog) UseCase {
	return &notificationUseCase{
		mailGateway: mailGateway,
		messages:    messages,
	}
}

func (uc *notificationUseCase) ComposeWeatherMessage(city string, description string, senderAddress string) entity.EmailMessage {
	return entity.EmailMessage{
		From:    senderAddress,
		To:      senderAddress,
		Subject: uc.messages.Get(subjectKey, city),
		Body:    uc.messages.Get(bodyKey, city, description),
	}
}

func (uc *notificationUseCase) NotifyWeather(city string, description string, senderAddress string, credential string) error {
	message := uc.ComposeWeatherMessage(city, description, senderAddress)
	account := entity.MailAccount{Address: senderAddress, Password: credential}

	if err := uc.mailGateway.Send(account, message); err != nil {
		return fmt.Errorf("failed to notify weather for %s: %w", city, err)
	}

	log.Info("Weather notification sent",
		zap.String("city", city),
		zap.String("to", message.To),
		zap.String("subject", message.Subject))
	return nil
}
