package ports

import (
	"context"

	"github.com/gymclub/booking-system/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	// Create inserts a new user. ErrEmailTaken or ErrUsernameTaken is
	// returned when a unique index rejects the insert.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	// SetRole updates the role of the user with the given email.
	SetRole(ctx context.Context, email, role string) error
}
