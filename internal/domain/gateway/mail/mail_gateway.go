package mail

import "weather-reviewer/internal/domain/entity"

// MailGateway delivers composed messages through the SMTP relay.
type MailGateway interface {
	// Send authenticates as account and delivers message.
	Send(account entity.MailAccount, message entity.EmailMessage) error
}
