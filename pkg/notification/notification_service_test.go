package notification

import (
	"Recipe-Platform-Backend/domain"
	"Recipe-Platform-Backend/entities"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeMailer struct {
	to       [][]string
	subjects []string
	texts    []string
	htmls    []string
	err      error
}

func (f *fakeMailer) Send(to []string, subject, textBody, htmlBody string) error {
	f.to = append(f.to, to)
	f.subjects = append(f.subjects, subject)
	f.texts = append(f.texts, textBody)
	f.htmls = append(f.htmls, htmlBody)
	return f.err
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.EmailTemplate{}))
	return db
}

func seedTemplate(t *testing.T, db *gorm.DB, key string, active bool) {
	t.Helper()
	template := entities.EmailTemplate{
		Key:      key,
		Name:     key,
		Subject:  "Hello {{.name}}",
		BodyText: "Hi {{.name}}, visit {{.url}}",
		BodyHTML: "<p>Hi {{.name}}, visit <a href=\"{{.url}}\">here</a></p>",
		IsActive: true,
	}
	require.NoError(t, db.Create(&template).Error)
	if !active {
		require.NoError(t, db.Model(&template).Update("is_active", false).Error)
	}
}

func TestRender(t *testing.T) {
	db := newTestDB(t)
	seedTemplate(t, db, "welcome", true)

	service := NewNotificationService(NewNotificationRepository(db), &fakeMailer{})
	subject, text, html, err := service.Render(context.Background(), "welcome", map[string]any{
		"name": "Ana",
		"url":  "https://example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "Hello Ana", subject)
	assert.Equal(t, "Hi Ana, visit https://example.com", text)
	assert.Contains(t, html, "href=\"https://example.com\"")
}

func TestRenderMissingTemplate(t *testing.T) {
	db := newTestDB(t)

	service := NewNotificationService(NewNotificationRepository(db), &fakeMailer{})
	_, _, _, err := service.Render(context.Background(), "welcome", nil)
	assert.ErrorIs(t, err, domain.ErrEmailTemplateNotFound)
}

func TestRenderInactiveTemplate(t *testing.T) {
	db := newTestDB(t)
	seedTemplate(t, db, "welcome", false)

	service := NewNotificationService(NewNotificationRepository(db), &fakeMailer{})
	_, _, _, err := service.Render(context.Background(), "welcome", nil)
	assert.ErrorIs(t, err, domain.ErrEmailTemplateNotFound)
}

func TestSend(t *testing.T) {
	db := newTestDB(t)
	seedTemplate(t, db, "welcome", true)
	mailer := &fakeMailer{}

	service := NewNotificationService(NewNotificationRepository(db), mailer)
	service.Send(context.Background(), "welcome", []string{"ana@example.com"}, map[string]any{
		"name": "Ana",
		"url":  "https://example.com",
	})

	require.Len(t, mailer.to, 1)
	assert.Equal(t, []string{"ana@example.com"}, mailer.to[0])
	assert.Equal(t, "Hello Ana", mailer.subjects[0])
}

func TestSendSwallowsFailures(t *testing.T) {
	db := newTestDB(t)
	seedTemplate(t, db, "welcome", true)
	mailer := &fakeMailer{err: errors.New("smtp down")}

	service := NewNotificationService(NewNotificationRepository(db), mailer)

	// Neither a transport failure nor a missing template may panic or
	// propagate.
	service.Send(context.Background(), "welcome", []string{"ana@example.com"}, nil)
	service.Send(context.Background(), "missing_key", []string{"ana@example.com"}, nil)
	service.Send(context.Background(), "welcome", nil, nil)

	assert.Len(t, mailer.to, 1)
}
