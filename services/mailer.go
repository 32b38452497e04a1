// services/mailer.go
package services

import (
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SMTPMailer sends notification email over SMTP. Credentials come from the
// environment; with no host configured it reports unconfigured and the
// dispatcher falls back to simulated mode.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPMailerFromEnv() *SMTPMailer {
	port := 587
	if env := os.Getenv("SMTP_PORT"); env != "" {
		if p, err := strconv.Atoi(env); err == nil {
			port = p
		}
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = os.Getenv("SMTP_USERNAME")
	}

	return &SMTPMailer{
		host:     os.Getenv("SMTP_HOST"),
		port:     port,
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     from,
	}
}

func (m *SMTPMailer) IsConfigured() bool {
	return m.host != "" && m.from != ""
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return d.DialAndSend(msg)
}
