package ports

import (
	"context"

	"github.com/lifesource/lifesource-api/internal/core/domain"
)

// SignupInput carries a self-service registration.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthService implements login and self-service signup.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Signup(ctx context.Context, input SignupInput) (string, *domain.User, error)
}
