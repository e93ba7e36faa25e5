package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gatehouse/internal/errors"
	"gatehouse/internal/service"
)

// UserHandler handles the user-resource endpoints. All of them sit behind the
// session gate; Update and Delete additionally sit behind the owner gate, so
// by the time they run the ":id" parameter is the caller's own id.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UpdateRequest carries the only mutable field.
type UpdateRequest struct {
	Username string `json:"username" validate:"required"`
}

// List godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Failure 400 "storage error"
// @Failure 403 "missing or invalid session cookie"
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list users: %v", err)
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	return c.JSON(http.StatusOK, users)
}

// Update godoc
// @Summary Update own username
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UpdateRequest true "New username"
// @Success 200 {object} model.User
// @Failure 400 "missing field or unknown id"
// @Failure 403 "no identity or not owner"
// @Router /users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}

	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}

	user, err := h.svc.UpdateUsername(c.Request().Context(), id, req.Username)
	if err != nil {
		c.Logger().Errorf("update user: %v", err)
		return echo.NewHTTPError(errors.StatusFor(err))
	}
	return c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary Delete own account
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.User "record prior to deletion"
// @Failure 400 "unknown id"
// @Failure 403 "no identity or not owner"
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}

	user, err := h.svc.DeleteUser(c.Request().Context(), id)
	if err != nil {
		c.Logger().Errorf("delete user: %v", err)
		return echo.NewHTTPError(errors.StatusFor(err))
	}
	return c.JSON(http.StatusOK, user)
}
