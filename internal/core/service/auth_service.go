package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lifesource/lifesource-api/internal/core/domain"
	"github.com/lifesource/lifesource-api/internal/core/ports"
)

// AuthService implements login and self-service signup.
type AuthService struct {
	repo   ports.UserRepository
	issuer ports.TokenIssuer
}

func NewAuthService(repo ports.UserRepository, issuer ports.TokenIssuer) *AuthService {
	return &AuthService{repo: repo, issuer: issuer}
}

// Login verifies credentials and mints a session token. Unknown email and
// wrong password both return ErrInvalidCredentials so responses never reveal
// whether an email is registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Sign(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Signup registers a donor or recipient account and mints a session token.
// Any other requested role fails with ErrForbiddenRole; elevated roles are
// only created by the seed CLI.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (string, *domain.User, error) {
	if !domain.SelfServiceRole(input.Role) {
		return "", nil, domain.ErrForbiddenRole
	}

	email := domain.NormalizeEmail(input.Email)
	if input.Name == "" || email == "" || input.Password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	// Pre-check for a friendly error; the unique index on email still
	// decides concurrent races.
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.issuer.Sign(created)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}
