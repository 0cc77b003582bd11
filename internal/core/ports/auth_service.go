package ports

import (
	"context"

	"github.com/taskly/task-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// TokenService issues and verifies signed bearer tokens. Both directions are
// pure functions over the configured secret; no state is persisted.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	// Verify returns the identity encoded in the token, or
	// domain.ErrInvalidToken on any parse, signature, or expiry failure.
	Verify(token string) (*domain.Identity, error)
}

// PasswordHasher is a one-way salted hash pair. Verify reports false on
// mismatch instead of returning an error.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) bool
}
