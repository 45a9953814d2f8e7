package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	apperrors "gymhub/internal/errors"
	"gymhub/internal/model"
)

func contextWithRole(e *echo.Echo, rec *httptest.ResponseRecorder, role model.Role) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, rec)
	c.Set("user", &jwt.Token{Claims: &Claims{UserID: 1, Email: "a@x.com", Role: role}})
	return c
}

func TestRequireRole_AllowsEqualAndHigher(t *testing.T) {
	e := echo.New()

	for _, role := range []model.Role{model.RoleMember, model.RoleTrainer, model.RoleAdmin} {
		rec := httptest.NewRecorder()
		c := contextWithRole(e, rec, role)

		called := false
		handler := RequireRole(model.RoleMember)(func(c echo.Context) error {
			called = true
			return c.NoContent(http.StatusOK)
		})

		if err := handler(c); err != nil {
			t.Fatalf("role %s: handler error: %v", role, err)
		}
		if !called {
			t.Fatalf("role %s: next handler not called", role)
		}
	}
}

func TestRequireRole_ForbidsLowerRole(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := contextWithRole(e, rec, model.RoleMember)

	handler := RequireRole(model.RoleAdmin)(func(c echo.Context) error {
		t.Fatal("should not reach next handler")
		return nil
	})

	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", httpErr.Code)
	}
	resp, ok := httpErr.Message.(apperrors.ErrorResponse)
	if !ok {
		t.Fatalf("expected ErrorResponse message, got %T", httpErr.Message)
	}
	if resp.Code != "FORBIDDEN" {
		t.Fatalf("expected FORBIDDEN code, got %q", resp.Code)
	}
}

func TestRequireRole_UnknownRoleDenied(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := contextWithRole(e, rec, model.Role("owner"))

	handler := RequireRole(model.RoleMember)(func(c echo.Context) error {
		t.Fatal("should not reach next handler")
		return nil
	})

	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", httpErr.Code)
	}
}

func TestRequireRole_MissingClaims(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireRole(model.RoleMember)(func(c echo.Context) error {
		t.Fatal("should not reach next handler")
		return nil
	})

	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", httpErr.Code)
	}
}
