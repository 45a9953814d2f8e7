package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	apperrors "gymhub/internal/errors"
	"gymhub/internal/model"
)

// ClaimsFromContext returns the claims of the token validated by the jwt
// middleware, if any.
func ClaimsFromContext(c echo.Context) (*Claims, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*Claims)
	return claims, ok
}

// RequireRole lets a request through only when the caller's role is at
// least min. Runs after the jwt middleware; a request without validated
// claims is rejected as unauthenticated, and unknown roles are denied.
func RequireRole(min model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
			}
			if !claims.Role.AtLeast(min) {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrForbidden)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}
