package notification

import (
	"Recipe-Platform-Backend/entities"
	"Recipe-Platform-Backend/internal/utils/mailing"
	"bytes"
	"context"
	"log"
	"strings"
	"text/template"
)

type (
	// NotificationService renders database-stored email templates and hands
	// them to the mailer. Send never returns an error: a recipe mutation or
	// registration must not fail because mail delivery did.
	NotificationService interface {
		Send(ctx context.Context, templateKey string, to []string, data map[string]any)
		Render(ctx context.Context, templateKey string, data map[string]any) (subject, textBody, htmlBody string, err error)
	}

	notificationService struct {
		repository NotificationRepository
		mailer     mailing.Mailer
	}
)

func NewNotificationService(repository NotificationRepository, mailer mailing.Mailer) NotificationService {
	return &notificationService{repository: repository, mailer: mailer}
}

func (s *notificationService) Send(ctx context.Context, templateKey string, to []string, data map[string]any) {
	if len(to) == 0 {
		return
	}

	subject, textBody, htmlBody, err := s.Render(ctx, templateKey, data)
	if err != nil {
		log.Printf("notification: render %q: %v", templateKey, err)
		return
	}
	if err := s.mailer.Send(to, subject, textBody, htmlBody); err != nil {
		log.Printf("notification: send %q to %s: %v", templateKey, strings.Join(to, ", "), err)
	}
}

func (s *notificationService) Render(ctx context.Context, templateKey string, data map[string]any) (string, string, string, error) {
	stored, err := s.repository.GetActiveTemplate(ctx, templateKey)
	if err != nil {
		return "", "", "", err
	}

	subject, err := renderField(stored, "subject", stored.Subject, data)
	if err != nil {
		return "", "", "", err
	}
	textBody, err := renderField(stored, "body_text", stored.BodyText, data)
	if err != nil {
		return "", "", "", err
	}
	htmlBody, err := renderField(stored, "body_html", stored.BodyHTML, data)
	if err != nil {
		return "", "", "", err
	}
	return subject, textBody, htmlBody, nil
}

func renderField(stored *entities.EmailTemplate, field, text string, data map[string]any) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	parsed, err := template.New(stored.Key + ":" + field).Option("missingkey=zero").Parse(text)
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := parsed.Execute(&out, data); err != nil {
		return "", err
	}
	return out.String(), nil
}
