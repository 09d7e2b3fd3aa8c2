package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gymclub/booking-system/internal/auth"
	"github.com/gymclub/booking-system/internal/core/domain"
	"github.com/gymclub/booking-system/internal/core/ports"
)

// AuthService implements signup, login, and account administration.
type AuthService struct {
	repo   ports.UserRepository
	tokens *auth.TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *auth.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Signup creates a new account and returns a token for it. Uniqueness of
// email and username is checked up front and additionally enforced by unique
// indexes, so a concurrent duplicate insert still surfaces as a conflict.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (string, error) {
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return "", domain.ErrEmailTaken
	}
	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return "", domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		Username:     input.Username,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("username", created.Username).Msg("user registered")

	return s.tokens.Issue(domain.SnapshotOf(created))
}

// Login verifies the password and returns a token with the user's current
// snapshot. An unknown username and a wrong password are distinct failures.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidPassword
	}

	return s.tokens.Issue(domain.SnapshotOf(user))
}

func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

// MakeAdmin promotes an existing user. Promoting an admin again is a no-op.
func (s *AuthService) MakeAdmin(ctx context.Context, email string) error {
	if _, err := s.repo.FindByEmail(ctx, email); err != nil {
		return err
	}

	if err := s.repo.SetRole(ctx, email, domain.RoleAdmin); err != nil {
		return err
	}

	s.logger.Info().Str("email", email).Msg("user promoted to admin")
	return nil
}
