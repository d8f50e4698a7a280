package ports

import (
	"context"

	"github.com/lifesource/lifesource-api/internal/core/domain"
)

// UserService defines the admin-facing user directory operations.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
}
