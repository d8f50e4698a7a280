package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lifesource/lifesource-api/internal/core/domain"
	"github.com/lifesource/lifesource-api/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
	next  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.next++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user_%d", r.next)
	r.users[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			redacted := cloneUser(u)
			redacted.PasswordHash = ""
			return redacted, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, limit int) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if len(out) == limit {
			break
		}
		redacted := cloneUser(u)
		redacted.PasswordHash = ""
		out = append(out, redacted)
	}
	return out, nil
}

func newTestAuthService() (*AuthService, *stubUserRepo, *TokenIssuer) {
	repo := newStubUserRepo()
	issuer := NewTokenIssuer("secret", time.Hour)
	return NewAuthService(repo, issuer), repo, issuer
}

func TestAuthService_Signup_Success(t *testing.T) {
	svc, repo, issuer := newTestAuthService()

	token, user, err := svc.Signup(context.Background(), ports.SignupInput{
		Name: "Alice", Email: "Alice@Example.com ", Password: "secret1", Role: domain.RoleDonor,
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %s", user.Email)
	}
	if user.PasswordHash == "secret1" || user.PasswordHash == "" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("other")) == nil {
		t.Fatalf("hash matched a different password")
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email || claims.Role != domain.RoleDonor {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if _, err := repo.FindByEmail(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
}

func TestAuthService_Signup_ForbiddenRoles(t *testing.T) {
	svc, _, _ := newTestAuthService()

	for _, role := range []string{domain.RoleAdmin, domain.RoleHospital, "superuser", ""} {
		_, _, err := svc.Signup(context.Background(), ports.SignupInput{
			Name: "Mallory", Email: "mallory@example.com", Password: "secret1", Role: role,
		})
		if !errors.Is(err, domain.ErrForbiddenRole) {
			t.Fatalf("role %q: expected ErrForbiddenRole, got %v", role, err)
		}
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	svc, repo, _ := newTestAuthService()

	if _, _, err := svc.Signup(context.Background(), ports.SignupInput{
		Name: "Alice", Email: "a@x.com", Password: "secret1", Role: domain.RoleDonor,
	}); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	_, _, err := svc.Signup(context.Background(), ports.SignupInput{
		Name: "Bob", Email: "a@x.com", Password: "other2", Role: domain.RoleRecipient,
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one identity for the email, got %d", len(repo.users))
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, issuer := newTestAuthService()

	_, created, err := svc.Signup(context.Background(), ports.SignupInput{
		Name: "Carol", Email: "carol@example.com", Password: "s3cret", Role: domain.RoleRecipient,
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "Carol@Example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Role != domain.RoleRecipient {
		t.Fatalf("expected role %s, got %s", domain.RoleRecipient, claims.Role)
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_FailureIndistinguishable(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, _, err := svc.Signup(context.Background(), ports.SignupInput{
		Name: "Dave", Email: "dave@example.com", Password: "goodpass", Role: domain.RoleDonor,
	}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, _, unknownErr := svc.Login(context.Background(), "ghost@example.com", "whatever")
	_, _, wrongErr := svc.Login(context.Background(), "dave@example.com", "badpass")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("error messages differ: %q vs %q", unknownErr, wrongErr)
	}
}

func TestAuthService_Login_EmptyInputs(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@x.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
