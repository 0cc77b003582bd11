package ports

import (
	"context"

	"github.com/taskly/task-api/internal/core/domain"
)

// UserRepository defines persistence for account records. Email uniqueness is
// enforced by the backing store; Create returns domain.ErrEmailExists on
// collision.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
