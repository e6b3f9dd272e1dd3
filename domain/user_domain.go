package domain

import (
	"errors"
)

var (
	MessageSuccessRegister      = "user registered successfully"
	MessageSuccessLogin         = "login success"
	MessageSuccessGetSession    = "success get session"
	MessageSuccessForgotRequest = "password reset email sent"
	MessageSuccessResetPassword = "password reset successfully"

	MessageFailedRegister      = "failed to register user"
	MessageFailedLogin         = "failed to login"
	MessageFailedGetSession    = "failed to get session"
	MessageFailedForgotRequest = "failed to request password reset"
	MessageFailedResetPassword = "failed to reset password"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrCredentialsInvalid = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account inactive")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3,max=150"`
		Email    string `json:"email" validate:"required,email"`
		FullName string `json:"full_name" validate:"omitempty,max=255"`
		Password string `json:"password" validate:"required,min=8"`
	}

	LoginRequest struct {
		// Identifier is a username or an email address.
		Identifier string `json:"identifier" validate:"required"`
		Password   string `json:"password" validate:"required"`
	}

	UserResponse struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		FullName string `json:"full_name,omitempty"`
		Role     string `json:"role"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	SessionResponse struct {
		IsAuthenticated bool          `json:"is_authenticated"`
		CSRFToken       string        `json:"csrf_token,omitempty"`
		User            *UserResponse `json:"user,omitempty"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ForgotPasswordResponse struct {
		Sent bool `json:"sent"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}
)
