package external_services

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendEmail(t *testing.T) {
	es := NewEmailService("smtp.example.com", 587, "user", "pass", "site@example.com")

	var gotAddr string
	var gotTo []string
	var gotMsg []byte
	es.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, msg
		return nil
	}

	require.NoError(t, es.SendEmail(context.Background(), "me@example.com", "New message", "hello"))
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"me@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: New message\r\n")
	assert.Contains(t, string(gotMsg), "\r\n\r\nhello\r\n")
}

func TestSendEmail_Failure(t *testing.T) {
	es := NewEmailService("smtp.example.com", 587, "", "", "site@example.com")
	es.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	err := es.SendEmail(context.Background(), "me@example.com", "s", "b")
	assert.ErrorContains(t, err, "connection refused")
}
