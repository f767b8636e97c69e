// Package mailtest provides an in-memory SMTP session for tests.
package mailtest

import (
	"bytes"
	"io"
	"sync"

	gomail "gopkg.in/mail.v2"

	"weather-reviewer/pkg/mail"
)

// SentMessage is one message captured by a Session.
type SentMessage struct {
	From string
	To   []string
	Raw  string
}

// Session records dials, sends and closes. Set DialErr or SendErr to simulate failures.
type Session struct {
	mu sync.Mutex

	DialErr  error
	SendErr  error
	CloseErr error

	Dials    int
	Closes   int
	Username string
	Password string
	Host     string
	Port     int
	Sent     []SentMessage
}

// Factory returns a mail.DialerFactory bound to the session.
func (s *Session) Factory() mail.DialerFactory {
	return func(host string, port int, username, password string) mail.Dialer {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.Host, s.Port, s.Username, s.Password = host, port, username, password
		return dialer{s}
	}
}

type dialer struct{ s *Session }

func (d dialer) Dial() (gomail.SendCloser, error) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	d.s.Dials++
	if d.s.DialErr != nil {
		return nil, d.s.DialErr
	}
	return sendCloser{d.s}, nil
}

type sendCloser struct{ s *Session }

func (c sendCloser) Send(from string, to []string, msg io.WriterTo) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if c.s.SendErr != nil {
		return c.s.SendErr
	}
	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		return err
	}
	c.s.Sent = append(c.s.Sent, SentMessage{From: from, To: to, Raw: buf.String()})
	return nil
}

func (c sendCloser) Close() error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.s.Closes++
	return c.s.CloseErr
}
