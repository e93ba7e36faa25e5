package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gatehouse/internal/auth"
	"gatehouse/internal/errors"
	"gatehouse/internal/service"
)

// AuthHandler handles registration and login endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Username string `json:"username" validate:"required"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the trimmed view returned on login. Unlike the register
// response it carries no password digest.
type LoginResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	SessionToken string    `json:"sessionToken"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} model.User
// @Failure 400 "missing field or storage error"
// @Failure 409 "email already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Username)
	if err != nil {
		status := errors.StatusFor(err)
		if status == http.StatusBadRequest {
			c.Logger().Errorf("register: %v", err)
		}
		return echo.NewHTTPError(status)
	}

	return c.JSON(http.StatusOK, user)
}

// Login godoc
// @Summary Log in and receive a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 "missing field or storage error"
// @Failure 401 "unknown email or bad password"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		status := errors.StatusFor(err)
		if status == http.StatusBadRequest {
			c.Logger().Errorf("login: %v", err)
		}
		return echo.NewHTTPError(status)
	}

	c.SetCookie(&http.Cookie{
		Name:  auth.SessionCookieName,
		Value: user.SessionToken,
		Path:  "/",
	})

	return c.JSON(http.StatusOK, LoginResponse{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		SessionToken: user.SessionToken,
	})
}
