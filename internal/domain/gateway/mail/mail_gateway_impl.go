package mail

import (
	"fmt"

	gomail "gopkg.in/mail.v2"

	"weather-reviewer/internal/domain/entity"
	"weather-reviewer/pkg/mail"
)

type mailGatewayImpl struct {
	client *mail.Client
}

// NewMailGateway creates a MailGateway backed by the given SMTP client.
func NewMailGateway(client *mail.Client) MailGateway {
	return &mailGatewayImpl{client: client}
}

func (g *mailGatewayImpl) Send(account entity.MailAccount, message entity.EmailMessage) error {
	if err := g.client.Send(account.Address, account.Password, toMailMessage(message)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", message.To, err)
	}
	return nil
}

func toMailMessage(message entity.EmailMessage) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", message.From)
	m.SetHeader("To", message.To)
	m.SetHeader("Subject", message.Subject)
	m.SetBody("text/plain", message.Body)
	return m
}
