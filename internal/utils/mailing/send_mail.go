package mailing

import (
	"Recipe-Platform-Backend/internal/utils"
	"strconv"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
	FromEmail    string
}

// Mailer abstracts the SMTP transport so notification senders can be
// tested without a mail server.
type Mailer interface {
	Send(to []string, subject string, textBody string, htmlBody string) error
}

type smtpMailer struct{}

func LoadMailConfig() MailConfig {
	return MailConfig{
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
		FromEmail:    utils.GetConfig("DEFAULT_FROM_EMAIL"),
	}
}

func NewMailer() Mailer {
	return &smtpMailer{}
}

func (m *smtpMailer) Send(to []string, subject string, textBody string, htmlBody string) error {
	emailConfig := LoadMailConfig()

	from := emailConfig.FromEmail
	if from == "" {
		from = emailConfig.SMTPEmail
	}

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", from)
	mailer.SetHeader("To", to...)
	mailer.SetHeader("Subject", subject)
	if textBody != "" {
		mailer.SetBody("text/plain", textBody)
		if htmlBody != "" {
			mailer.AddAlternative("text/html", htmlBody)
		}
	} else {
		mailer.SetBody("text/html", htmlBody)
	}

	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}
