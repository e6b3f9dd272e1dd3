package handlers

import (
	"Recipe-Platform-Backend/domain"
	"Recipe-Platform-Backend/internal/api/presenters"
	"Recipe-Platform-Backend/internal/utils"
	"Recipe-Platform-Backend/pkg/user"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// viewerID resolves the authenticated user id set by the auth middleware.
// Zero means anonymous.
func viewerID(c *fiber.Ctx) uint {
	raw, _ := c.Locals("user_id").(string)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedRegister, err)
	}

	response, err := h.userService.Register(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists), errors.Is(err, domain.ErrUsernameTaken):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedRegister, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRegister, err)
		}
	}
	return presenters.SuccessResponse(c, response, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedLogin, err)
	}

	response, err := h.userService.Login(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCredentialsInvalid):
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, err)
		case errors.Is(err, domain.ErrAccountInactive):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedLogin, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLogin, err)
		}
	}
	return presenters.SuccessResponse(c, response, fiber.StatusOK, domain.MessageSuccessLogin)
}

// Session reports whether the caller is authenticated and hands out the
// CSRF token for cookie-session clients.
func (h *UserHandler) Session(c *fiber.Ctx) error {
	response := domain.SessionResponse{}
	if token, ok := c.Locals("csrf").(string); ok {
		response.CSRFToken = token
	}

	if userID := viewerID(c); userID != 0 {
		userResponse, err := h.userService.GetUser(c.Context(), userID)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSession, err)
		}
		response.IsAuthenticated = true
		response.User = userResponse
	}
	return presenters.SuccessResponse(c, response, fiber.StatusOK, domain.MessageSuccessGetSession)
}

func (h *UserHandler) ForgotPassword(c *fiber.Ctx) error {
	req := new(domain.ForgotPasswordRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedForgotRequest, err)
	}

	response, err := h.userService.ForgotPassword(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedForgotRequest, err)
	}
	return presenters.SuccessResponse(c, response, fiber.StatusOK, domain.MessageSuccessForgotRequest)
}

func (h *UserHandler) ResetPassword(c *fiber.Ctx) error {
	req := new(domain.ResetPasswordRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedResetPassword, err)
	}

	if err := h.userService.ResetPassword(c.Context(), req); err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenExpired), errors.Is(err, domain.ErrTokenInvalid):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResetPassword, err)
		case errors.Is(err, domain.ErrUserNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedResetPassword, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedResetPassword, err)
		}
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessResetPassword)
}
