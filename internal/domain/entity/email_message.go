package entity

// EmailMessage is a plain-text email built for a single delivery.
type EmailMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// MailAccount is the SMTP account that sends and receives the report.
type MailAccount struct {
	Address  string `json:"address"`
	Password string `json:"-"`
}
