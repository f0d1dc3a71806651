package external_services

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/mikiasgoitom/portfolio/internal/domain/contract"
)

// EmailService sends plain-text mail through an SMTP relay.
type EmailService struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	send     func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewEmailService(host string, port int, username, password, from string) *EmailService {
	return &EmailService{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
		From:     from,
		send:     smtp.SendMail,
	}
}

var _ contract.IEmailService = (*EmailService)(nil)

func (es *EmailService) SendEmail(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := []byte(
		"To: " + to + "\r\n" +
			"From: " + es.From + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"Content-Type: text/plain; charset=UTF-8\r\n" +
			"\r\n" +
			body + "\r\n",
	)
	var auth smtp.Auth
	if es.Username != "" {
		auth = smtp.PlainAuth("", es.Username, es.Password, es.Host)
	}
	addr := fmt.Sprintf("%s:%d", es.Host, es.Port)
	if err := es.send(addr, auth, es.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
