package handlers

import (
	stderrors "errors"
	"net/http"

	"finledger/internal/dto"
	"finledger/internal/errors"
	"finledger/internal/models"
	"finledger/internal/repositories"
	"finledger/internal/services"
	"finledger/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles registration and sign-in requests
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new account in pending status
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, validation.GetValidator().FormatErrors(err))
	}

	user, err := h.authService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case stderrors.Is(err, repositories.ErrEmailTaken):
			return SendError(c, errors.AuthEmailTaken)
		case stderrors.Is(err, services.ErrWeakPassword):
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("password: must be at least 8 characters"))
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    toUserResponse(user),
		Message: "Account created and awaiting approval",
	})
}

// Login verifies credentials and returns an access token
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, validation.GetValidator().FormatErrors(err))
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidCredentials):
			return SendError(c, errors.AuthInvalidCredentials)
		case stderrors.Is(err, services.ErrAccountPending):
			return SendError(c, errors.AuthAccountPending)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.LoginResponse{
			Token: token,
			User:  toUserResponse(user),
		},
	})
}

// Approve moves a pending account to approved status so it can sign in
func (h *AuthHandler) Approve(c echo.Context) error {
	if _, err := getSession(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid user ID"))
	}

	if err := h.authService.Approve(userID); err != nil {
		switch {
		case stderrors.Is(err, repositories.ErrUserNotFound):
			return SendError(c, errors.AuthUserNotFound)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Account approved",
	})
}

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}
}
