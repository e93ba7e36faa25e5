package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"gatehouse/internal/auth"
	"gatehouse/internal/handler"
	"gatehouse/internal/repository"
)

// Register wires the route table once at startup. The gate chain is explicit
// per route: /users requires a resolved session, and the mutating routes
// additionally require the path id to match the resolved identity.
func Register(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	users repository.UserRepository,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	authed := e.Group("/users", auth.SessionGate(users))
	authed.GET("", userHandler.List)
	authed.PATCH("/:id", userHandler.Update, auth.OwnerGate())
	authed.DELETE("/:id", userHandler.Delete, auth.OwnerGate())
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
