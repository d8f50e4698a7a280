package ports

import (
	"context"

	"github.com/lifesource/lifesource-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// FindByEmail is the only read that includes the password hash; it exists
// for credential verification and expects a normalized email.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, limit int) ([]*domain.User, error)
}
