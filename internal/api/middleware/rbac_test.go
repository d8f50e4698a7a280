package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lifesource/lifesource-api/internal/core/domain"
)

func rbacTestContext(role string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if role != "" {
		c.Set(CtxRole, role)
	}
	return c
}

func TestRBAC_AllowsListedRole(t *testing.T) {
	c := rbacTestContext(domain.RoleHospital)

	called := false
	handler := RBAC(domain.RoleHospital, domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
	if !called {
		t.Fatal("next handler was not called")
	}
}

func TestRBAC_ForbidsOtherRole(t *testing.T) {
	c := rbacTestContext(domain.RoleDonor)

	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatal("handler should not run for a disallowed role")
		return nil
	})

	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

// A request that skipped Auth carries no role and must be rejected.
func TestRBAC_FailsClosedWithoutRole(t *testing.T) {
	c := rbacTestContext("")

	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatal("handler should not run without an identity")
		return nil
	})

	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}
