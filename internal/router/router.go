package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"gymhub/internal/auth"
	"gymhub/internal/config"
	"gymhub/internal/handler"
	"gymhub/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	classHandler *handler.ClassHandler,
	bookingHandler *handler.BookingHandler,
	offeringHandler *handler.OfferingHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/register", authHandler.Register)
	e.POST("/token", authHandler.Login)
	e.GET("/classes", classHandler.List)

	// Secured routes (require a valid bearer token). Authentication always
	// runs before any role check.
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		// Missing, malformed, expired, and badly signed tokens must all be
		// rejected the same way.
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
		},
	}))

	secured.GET("/users/me", userHandler.Me, auth.RequireRole(model.RoleMember))
	secured.GET("/users/me/bookings", bookingHandler.ListMine, auth.RequireRole(model.RoleMember))
	secured.GET("/services", offeringHandler.List, auth.RequireRole(model.RoleMember))
	secured.POST("/bookings", bookingHandler.Create, auth.RequireRole(model.RoleMember))

	secured.POST("/classes", classHandler.Create, auth.RequireRole(model.RoleTrainer))
	secured.GET("/trainer/schedule", classHandler.TrainerSchedule, auth.RequireRole(model.RoleTrainer))

	secured.PATCH("/admin/update-role/:user_id", userHandler.UpdateRole, auth.RequireRole(model.RoleAdmin))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the request validator used by the server and tests.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
