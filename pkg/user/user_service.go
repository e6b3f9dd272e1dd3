package user

import (
	"Recipe-Platform-Backend/domain"
	"Recipe-Platform-Backend/entities"
	"Recipe-Platform-Backend/internal/utils"
	"Recipe-Platform-Backend/pkg/jwt"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const passwordResetTTL = time.Hour

type (
	// Notifier sends a templated email without ever failing the caller.
	Notifier interface {
		Send(ctx context.Context, templateKey string, to []string, data map[string]any)
	}

	UserService interface {
		Register(ctx context.Context, req *domain.RegisterRequest) (*domain.UserResponse, error)
		Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error)
		GetUser(ctx context.Context, userID uint) (*domain.UserResponse, error)
		ForgotPassword(ctx context.Context, req *domain.ForgotPasswordRequest) (*domain.ForgotPasswordResponse, error)
		ResetPassword(ctx context.Context, req *domain.ResetPasswordRequest) error
	}

	userService struct {
		repository UserRepository
		jwtService jwt.JWTService
		notifier   Notifier
	}
)

func NewUserService(repository UserRepository, jwtService jwt.JWTService, notifier Notifier) UserService {
	return &userService{
		repository: repository,
		jwtService: jwtService,
		notifier:   notifier,
	}
}

func (s *userService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.UserResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if taken, err := s.repository.UsernameExists(ctx, username); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrUsernameTaken
	}
	if exists, err := s.repository.EmailExists(ctx, email); err != nil {
		return nil, err
	} else if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Username: username,
		Email:    email,
		FullName: strings.TrimSpace(req.FullName),
		Password: string(hashed),
		Role:     domain.RoleUser,
		IsActive: true,
	}
	if err := s.repository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.notifier.Send(ctx, domain.TemplateWelcome, []string{user.Email}, map[string]any{
		"name":     user.DisplayName(),
		"username": user.Username,
		"site_url": utils.GetConfig("FRONTEND_URL"),
	})

	return toUserResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.repository.GetUserByIdentifier(ctx, strings.TrimSpace(req.Identifier))
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrCredentialsInvalid
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrCredentialsInvalid
	}
	if !user.IsActive {
		return nil, domain.ErrAccountInactive
	}

	token := s.jwtService.GenerateTokenUser(strconv.FormatUint(uint64(user.ID), 10), user.Role)
	return &domain.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func (s *userService) GetUser(ctx context.Context, userID uint) (*domain.UserResponse, error) {
	user, err := s.repository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ForgotPassword always reports success so the endpoint does not leak
// which addresses are registered.
func (s *userService) ForgotPassword(ctx context.Context, req *domain.ForgotPasswordRequest) (*domain.ForgotPasswordResponse, error) {
	user, err := s.repository.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if err == domain.ErrUserNotFound {
			return &domain.ForgotPasswordResponse{Sent: true}, nil
		}
		return nil, err
	}

	token, err := s.jwtService.GenerateTokenPasswordReset(map[string]any{
		"user_id": strconv.FormatUint(uint64(user.ID), 10),
		"purpose": "password_reset",
	}, passwordResetTTL)
	if err != nil {
		return nil, err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s",
		strings.TrimRight(utils.GetConfig("FRONTEND_URL"), "/"), token)
	s.notifier.Send(ctx, domain.TemplatePasswordReset, []string{user.Email}, map[string]any{
		"name":      user.DisplayName(),
		"reset_url": resetURL,
	})
	return &domain.ForgotPasswordResponse{Sent: true}, nil
}

func (s *userService) ResetPassword(ctx context.Context, req *domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateTokenPasswordReset(req.Token)
	if err != nil {
		return err
	}
	if purpose, _ := claims["purpose"].(string); purpose != "password_reset" {
		return domain.ErrTokenInvalid
	}
	rawID, _ := claims["user_id"].(string)
	userID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return domain.ErrTokenInvalid
	}

	user, err := s.repository.GetUserByID(ctx, uint(userID))
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repository.UpdatePassword(ctx, user.ID, string(hashed))
}

func toUserResponse(user *entities.User) *domain.UserResponse {
	return &domain.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}
}
