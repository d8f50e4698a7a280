package ports

import "github.com/lifesource/lifesource-api/internal/core/domain"

// TokenVerifier checks a session token and returns its decoded claims.
// Verification is pure computation; implementations must be safe for
// concurrent use.
type TokenVerifier interface {
	Verify(token string) (*domain.TokenClaims, error)
}

// TokenIssuer mints and verifies signed, time-bound session tokens carrying
// the subject id, email, and role.
type TokenIssuer interface {
	TokenVerifier
	Sign(user *domain.User) (string, error)
}
