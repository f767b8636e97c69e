package mail_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "gopkg.in/mail.v2"

	"weather-reviewer/pkg/mail"
	"weather-reviewer/pkg/mail/mailtest"
)

func newMessage() *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", "me@example.com")
	m.SetHeader("To", "me@example.com")
	m.SetHeader("Subject", "Weather Update for Hyderabad")
	m.SetBody("text/plain", "The current weather in Hyderabad is: clear sky.")
	return m
}

func TestClient_Send(t *testing.T) {
	session := &mailtest.Session{}
	client := mail.NewClient(mail.ClientOptions{Host: "smtp.example.com", Port: 587, NewDialer: session.Factory()})

	err := client.Send("me@example.com", "secret", newMessage())

	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com", session.Host)
	assert.Equal(t, 587, session.Port)
	assert.Equal(t, "me@example.com", session.Username)
	assert.Equal(t, "secret", session.Password)
	assert.Equal(t, 1, session.Dials)
	assert.Equal(t, 1, session.Closes)
	require.Len(t, session.Sent, 1)
	assert.Equal(t, "me@example.com", session.Sent[0].From)
	assert.Equal(t, []string{"me@example.com"}, session.Sent[0].To)
	assert.Contains(t, session.Sent[0].Raw, "Subject: Weather Update for Hyderabad")
	assert.Contains(t, session.Sent[0].Raw, "The current weather in Hyderabad is: clear sky.")
}

func TestClient_SendFailureStillCloses(t *testing.T) {
	sendErr := errors.New("552 message rejected")
	session := &mailtest.Session{SendErr: sendErr}
	client := mail.NewClient(mail.ClientOptions{Host: "smtp.example.com", Port: 587, NewDialer: session.Factory()})

	err := client.Send("me@example.com", "secret", newMessage())

	require.Error(t, err)
	var sendError *mail.SendError
	require.True(t, errors.As(err, &sendError))
	assert.Equal(t, mail.StageSend, sendError.Stage)
	assert.Equal(t, "smtp.example.com:587", sendError.Addr)
	assert.True(t, errors.Is(err, sendErr))
	assert.Equal(t, 1, session.Closes)
	assert.Empty(t, session.Sent)
}

func TestClient_DialFailure(t *testing.T) {
	session := &mailtest.Session{DialErr: errors.New("535 authentication failed")}
	client := mail.NewClient(mail.ClientOptions{Host: "smtp.example.com", Port: 587, NewDialer: session.Factory()})

	err := client.Send("me@example.com", "wrong", newMessage())

	var sendError *mail.SendError
	require.True(t, errors.As(err, &sendError))
	assert.Equal(t, mail.StageDial, sendError.Stage)
	assert.Equal(t, 0, session.Closes)
}

func TestClient_CloseErrorDoesNotFailDelivery(t *testing.T) {
	session := &mailtest.Session{CloseErr: errors.New("quit: connection reset")}
	client := mail.NewClient(mail.ClientOptions{Host: "smtp.example.com", Port: 587, NewDialer: session.Factory()})

	err := client.Send("me@example.com", "secret", newMessage())

	assert.NoError(t, err)
	assert.Equal(t, 1, session.Closes)
	assert.Len(t, session.Sent, 1)
}

func TestClient_NilMessage(t *testing.T) {
	session := &mailtest.Session{}
	client := mail.NewClient(mail.ClientOptions{Host: "smtp.example.com", Port: 587, NewDialer: session.Factory()})

	assert.Error(t, client.Send("me@example.com", "secret", nil))
	assert.Equal(t, 0, session.Dials)
}
