package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lifesource/lifesource-api/internal/api/middleware"
	"github.com/lifesource/lifesource-api/internal/core/domain"
	"github.com/lifesource/lifesource-api/internal/core/ports"
)

type stubAuthService struct {
	loginToken  string
	loginUser   *domain.User
	loginErr    error
	signupToken string
	signupUser  *domain.User
	signupErr   error

	gotEmail    string
	gotPassword string
	gotSignup   ports.SignupInput
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	s.gotEmail = email
	s.gotPassword = password
	return s.loginToken, s.loginUser, s.loginErr
}

func (s *stubAuthService) Signup(_ context.Context, in ports.SignupInput) (string, *domain.User, error) {
	s.gotSignup = in
	return s.signupToken, s.signupUser, s.signupErr
}

func newAuthTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{
		loginToken: "token-abc",
		loginUser:  &domain.User{ID: "user_1", Email: "alice@example.com", Name: "Alice", Role: domain.RoleDonor},
	}
	h := NewAuthHandler(svc)

	c, rec := newAuthTestContext(http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"secret1"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotEmail != "alice@example.com" || svc.gotPassword != "secret1" {
		t.Fatalf("service received %q/%q", svc.gotEmail, svc.gotPassword)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.AccessToken != "token-abc" {
		t.Fatalf("unexpected token: %s", resp.AccessToken)
	}
	if resp.User.ID != "user_1" || resp.User.Role != domain.RoleDonor {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaks password material: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_InvalidCredentialsPassThrough(t *testing.T) {
	svc := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc)

	c, _ := newAuthTestContext(http.MethodPost, "/api/auth/login",
		`{"email":"ghost@example.com","password":"whatever"}`)

	// Domain errors bubble up for the central error handler to map.
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_BadPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	for _, body := range []string{
		`{not json`,
		`{"email":"not-an-email","password":"x"}`,
		`{"email":"a@x.com"}`,
	} {
		c, _ := newAuthTestContext(http.MethodPost, "/api/auth/login", body)

		err := h.Login(c)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %v", body, err)
		}
	}
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	svc := &stubAuthService{
		signupToken: "token-new",
		signupUser:  &domain.User{ID: "user_2", Email: "bob@example.com", Role: domain.RoleRecipient},
	}
	h := NewAuthHandler(svc)

	c, rec := newAuthTestContext(http.MethodPost, "/api/auth/signup",
		`{"name":"Bob","email":"bob@example.com","password":"secret1","role":"recipient"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.gotSignup.Role != domain.RoleRecipient || svc.gotSignup.Name != "Bob" {
		t.Fatalf("service received %+v", svc.gotSignup)
	}

	var resp signupResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.AccessToken != "token-new" {
		t.Fatalf("unexpected token: %s", resp.AccessToken)
	}
}

func TestAuthHandler_Signup_ShortPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newAuthTestContext(http.MethodPost, "/api/auth/signup",
		`{"name":"Bob","email":"bob@example.com","password":"short","role":"donor"}`)

	err := h.Signup(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short password, got %v", err)
	}
}

func TestAuthHandler_Me_ReadsContextIdentity(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newAuthTestContext(http.MethodGet, "/api/auth/me", "")
	c.Set(middleware.CtxUserID, "user_3")
	c.Set(middleware.CtxEmail, "carol@example.com")
	c.Set(middleware.CtxRole, domain.RoleHospital)

	if err := h.Me(c); err != nil {
		t.Fatalf("me failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp meResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.UserID != "user_3" || resp.Email != "carol@example.com" || resp.Role != domain.RoleHospital {
		t.Fatalf("unexpected identity: %+v", resp)
	}
}
