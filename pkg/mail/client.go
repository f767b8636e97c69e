package mail

import (
	"crypto/tls"
	"errors"
	"fmt"

	"go.uber.org/zap"
	gomail "gopkg.in/mail.v2"

	"weather-reviewer/pkg/log"
)

// Stage names the step of an SMTP session that failed.
type Stage string

const (
	// StageDial covers connecting, STARTTLS and authentication.
	StageDial Stage = "dial"
	StageSend Stage = "send"
)

// SendError reports a failed delivery and the session stage it failed in.
type SendError struct {
	Stage Stage
	Addr  string
	Err   error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("smtp %s %s: %v", e.Stage, e.Addr, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// Dialer opens an authenticated SMTP session.
type Dialer interface {
	Dial() (gomail.SendCloser, error)
}

// DialerFactory builds a Dialer for one session.
type DialerFactory func(host string, port int, username, password string) Dialer

// ClientOptions configures the SMTP client.
type ClientOptions struct {
	Host string
	Port int
	// StartTLSPolicy defaults to mandatory STARTTLS.
	StartTLSPolicy *gomail.StartTLSPolicy
	// NewDialer replaces the mail.v2 dialer, mainly in tests.
	NewDialer DialerFactory
}

// Client sends messages through a single SMTP relay.
type Client struct {
	host      string
	port      int
	newDialer DialerFactory
}

// NewClient creates an SMTP client for the relay at opts.Host:opts.Port.
func NewClient(opts ClientOptions) *Client {
	policy := gomail.MandatoryStartTLS
	if opts.StartTLSPolicy != nil {
		policy = *opts.StartTLSPolicy
	}

	newDialer := opts.NewDialer
	if newDialer == nil {
		newDialer = func(host string, port int, username, password string) Dialer {
			d := gomail.NewDialer(host, port, username, password)
			d.StartTLSPolicy = policy
			d.TLSConfig = &tls.Config{ServerName: host, MinVersion: tls.VersionTLS12}
			return d
		}
	}

	return &Client{
		host:      opts.Host,
		port:      opts.Port,
		newDialer: newDialer,
	}
}

// Addr returns the relay address as host:port.
func (c *Client) Addr() string {
	return fmt.Sprintf("%s:%d", c.host, c.port)
}

// Send opens a session authenticated as username, sends m and closes the session.
// Once the dial succeeds the session is closed on every return path.
func (c *Client) Send(username, password string, m *gomail.Message) error {
	if m == nil {
		return errors.New("mail message is required")
	}

	d := c.newDialer(c.host, c.port, username, password)
	s, err := d.Dial()
	if err != nil {
		return &SendError{Stage: StageDial, Addr: c.Addr(), Err: err}
	}
	defer func() {
		if closeErr := s.Close(); closeErr != nil {
			log.Warn("failed to close smtp session", zap.String("addr", c.Addr()), zap.Error(closeErr))
		}
	}()

	if err := gomail.Send(s, m); err != nil {
		var batchErr *gomail.SendError
		if errors.As(err, &batchErr) && batchErr.Cause != nil {
			err = batchErr.Cause
		}
		return &SendError{Stage: StageSend, Addr: c.Addr(), Err: err}
	}

	log.Debug("smtp message sent", zap.String("addr", c.Addr()), zap.Strings("to", m.GetHeader("To")))
	return nil
}
