package user

import (
	"Recipe-Platform-Backend/domain"
	"Recipe-Platform-Backend/entities"
	"Recipe-Platform-Backend/pkg/jwt"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeNotifier struct {
	keys       []string
	recipients [][]string
	data       []map[string]any
}

func (f *fakeNotifier) Send(_ context.Context, templateKey string, to []string, data map[string]any) {
	f.keys = append(f.keys, templateKey)
	f.recipients = append(f.recipients, to)
	f.data = append(f.data, data)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}))
	return db
}

func newUserFixture(t *testing.T) (UserService, *fakeNotifier, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	notifier := &fakeNotifier{}
	service := NewUserService(NewUserRepository(db), jwt.NewJWTService(), notifier)
	return service, notifier, db
}

func registerRequest() *domain.RegisterRequest {
	return &domain.RegisterRequest{
		Username: "ana",
		Email:    "Ana@Example.com",
		FullName: "Ana Cook",
		Password: "supersecret",
	}
}

func TestRegister(t *testing.T) {
	service, notifier, db := newUserFixture(t)

	response, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.Equal(t, "ana", response.Username)
	assert.Equal(t, "ana@example.com", response.Email)
	assert.Equal(t, domain.RoleUser, response.Role)

	var stored entities.User
	require.NoError(t, db.First(&stored, response.ID).Error)
	assert.NotEqual(t, "supersecret", stored.Password)
	assert.True(t, stored.IsActive)

	require.Equal(t, []string{domain.TemplateWelcome}, notifier.keys)
	assert.Equal(t, []string{"ana@example.com"}, notifier.recipients[0])
}

func TestRegisterDuplicates(t *testing.T) {
	service, _, _ := newUserFixture(t)

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	duplicateUsername := registerRequest()
	duplicateUsername.Email = "other@example.com"
	_, err = service.Register(context.Background(), duplicateUsername)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	duplicateEmail := registerRequest()
	duplicateEmail.Username = "other"
	_, err = service.Register(context.Background(), duplicateEmail)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLoginByUsernameOrEmail(t *testing.T) {
	service, _, _ := newUserFixture(t)
	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	byUsername, err := service.Login(context.Background(), &domain.LoginRequest{
		Identifier: "ana",
		Password:   "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, byUsername.Token)
	assert.Equal(t, "ana", byUsername.User.Username)

	byEmail, err := service.Login(context.Background(), &domain.LoginRequest{
		Identifier: "ANA@example.com",
		Password:   "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, byUsername.User.ID, byEmail.User.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	service, _, _ := newUserFixture(t)
	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &domain.LoginRequest{
		Identifier: "ana",
		Password:   "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = service.Login(context.Background(), &domain.LoginRequest{
		Identifier: "nobody",
		Password:   "supersecret",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestLoginInactiveAccount(t *testing.T) {
	service, _, db := newUserFixture(t)
	response, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	require.NoError(t, db.Model(&entities.User{}).Where("id = ?", response.ID).Update("is_active", false).Error)

	_, err = service.Login(context.Background(), &domain.LoginRequest{
		Identifier: "ana",
		Password:   "supersecret",
	})
	assert.ErrorIs(t, err, domain.ErrAccountInactive)
}

func TestForgotPasswordDoesNotLeakAccounts(t *testing.T) {
	service, notifier, _ := newUserFixture(t)
	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	notifier.keys = nil

	response, err := service.ForgotPassword(context.Background(), &domain.ForgotPasswordRequest{
		Email: "ana@example.com",
	})
	require.NoError(t, err)
	assert.True(t, response.Sent)
	require.Equal(t, []string{domain.TemplatePasswordReset}, notifier.keys)

	notifier.keys = nil
	response, err = service.ForgotPassword(context.Background(), &domain.ForgotPasswordRequest{
		Email: "unknown@example.com",
	})
	require.NoError(t, err)
	assert.True(t, response.Sent)
	assert.Empty(t, notifier.keys)
}

func TestResetPassword(t *testing.T) {
	service, notifier, _ := newUserFixture(t)
	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = service.ForgotPassword(context.Background(), &domain.ForgotPasswordRequest{
		Email: "ana@example.com",
	})
	require.NoError(t, err)

	// Pull the token out of the reset link handed to the notifier.
	require.NotEmpty(t, notifier.data)
	resetURL, _ := notifier.data[len(notifier.data)-1]["reset_url"].(string)
	parts := strings.SplitN(resetURL, "token=", 2)
	require.Len(t, parts, 2)

	err = service.ResetPassword(context.Background(), &domain.ResetPasswordRequest{
		Token:    parts[1],
		Password: "newpassword",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &domain.LoginRequest{
		Identifier: "ana",
		Password:   "newpassword",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &domain.LoginRequest{
		Identifier: "ana",
		Password:   "supersecret",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestResetPasswordBadToken(t *testing.T) {
	service, _, _ := newUserFixture(t)

	err := service.ResetPassword(context.Background(), &domain.ResetPasswordRequest{
		Token:    "not-a-token",
		Password: "newpassword",
	})
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
