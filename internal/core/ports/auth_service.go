package ports

import (
	"context"

	"github.com/gymclub/booking-system/internal/core/domain"
)

// SignupInput carries the fields a new account is created from. Role is not
// part of the input: every signup starts as a regular user.
type SignupInput struct {
	Username string
	Name     string
	Email    string
	Password string
}

// AuthService implements signup, login, and account administration.
type AuthService interface {
	// Signup creates the account and returns a freshly issued token.
	Signup(ctx context.Context, input SignupInput) (string, error)
	// Login verifies credentials and returns a token embedding the current
	// identity snapshot.
	Login(ctx context.Context, username, password string) (string, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	// MakeAdmin promotes the user with the given email. The promotion is
	// visible in tokens issued after the user's next login.
	MakeAdmin(ctx context.Context, email string) error
}
