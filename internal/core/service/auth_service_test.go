package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gymclub/booking-system/internal/auth"
	"github.com/gymclub/booking-system/internal/core/domain"
	"github.com/gymclub/booking-system/internal/core/ports"
)

type stubUserRepo struct {
	users []*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
		if u.Username == user.Username {
			return nil, domain.ErrUsernameTaken
		}
	}
	r.users = append(r.users, user)
	return user, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	return r.users, nil
}

func (r *stubUserRepo) SetRole(_ context.Context, email, role string) error {
	for _, u := range r.users {
		if u.Email == email {
			u.Role = role
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func newAuthFixture() (*AuthService, *stubUserRepo, *auth.TokenService) {
	repo := &stubUserRepo{}
	tokens := auth.NewTokenService("test-secret", time.Hour)
	return NewAuthService(repo, tokens, zerolog.Nop()), repo, tokens
}

func seedUser(repo *stubUserRepo, username, email, password, role string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	repo.users = append(repo.users, &domain.User{
		Username:     username,
		Name:         "Seed User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
}

func TestSignupIssuesUserToken(t *testing.T) {
	svc, repo, tokens := newAuthFixture()

	token, err := svc.Signup(context.Background(), ports.SignupInput{
		Username: "new.member",
		Name:     "New Member",
		Email:    "member@example.com",
		Password: "s3cret99",
	})
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	identity, ok := tokens.Verify(token)
	if !ok {
		t.Fatal("Signup() returned a token that does not verify")
	}
	if identity.Role != domain.RoleUser {
		t.Errorf("new account role = %q, want %q", identity.Role, domain.RoleUser)
	}
	if identity.Email != "member@example.com" {
		t.Errorf("token email = %q, want member@example.com", identity.Email)
	}

	stored := repo.users[0]
	if stored.PasswordHash == "s3cret99" {
		t.Error("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret99")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestSignupRejectsDuplicates(t *testing.T) {
	svc, repo, _ := newAuthFixture()
	seedUser(repo, "taken.name", "taken@example.com", "pw", domain.RoleUser)

	_, err := svc.Signup(context.Background(), ports.SignupInput{
		Username: "other.name",
		Email:    "taken@example.com",
		Password: "pw123456",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("duplicate email error = %v, want ErrEmailTaken", err)
	}

	_, err = svc.Signup(context.Background(), ports.SignupInput{
		Username: "taken.name",
		Email:    "fresh@example.com",
		Password: "pw123456",
	})
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Errorf("duplicate username error = %v, want ErrUsernameTaken", err)
	}
}

func TestLoginUnknownUsername(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), "nobody", "whatever")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("Login() error = %v, want ErrUserNotFound", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, repo, _ := newAuthFixture()
	seedUser(repo, "some.one", "one@example.com", "correct-horse", domain.RoleUser)

	_, err := svc.Login(context.Background(), "some.one", "battery-staple")
	if !errors.Is(err, domain.ErrInvalidPassword) {
		t.Errorf("Login() error = %v, want ErrInvalidPassword", err)
	}
}

func TestLoginReturnsCurrentSnapshot(t *testing.T) {
	svc, repo, tokens := newAuthFixture()
	seedUser(repo, "admin.bob", "bob@example.com", "hunter22", domain.RoleAdmin)

	token, err := svc.Login(context.Background(), "admin.bob", "hunter22")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	identity, ok := tokens.Verify(token)
	if !ok {
		t.Fatal("Login() token does not verify")
	}
	if !identity.IsAdmin() {
		t.Errorf("identity role = %q, want admin", identity.Role)
	}
}

// A promotion only becomes visible in tokens issued after the next login.
// Tokens minted before the promotion keep their old role snapshot.
func TestPromotionVisibleAfterNextLogin(t *testing.T) {
	svc, repo, tokens := newAuthFixture()
	seedUser(repo, "plain.jane", "jane@example.com", "pw123456", domain.RoleUser)
	ctx := context.Background()

	before, err := svc.Login(ctx, "plain.jane", "pw123456")
	if err != nil {
		t.Fatalf("Login() before promotion error = %v", err)
	}

	if err := svc.MakeAdmin(ctx, "jane@example.com"); err != nil {
		t.Fatalf("MakeAdmin() error = %v", err)
	}

	old, ok := tokens.Verify(before)
	if !ok {
		t.Fatal("pre-promotion token stopped verifying")
	}
	if old.IsAdmin() {
		t.Error("pre-promotion token already carries admin role")
	}

	after, err := svc.Login(ctx, "plain.jane", "pw123456")
	if err != nil {
		t.Fatalf("Login() after promotion error = %v", err)
	}
	fresh, ok := tokens.Verify(after)
	if !ok {
		t.Fatal("post-promotion token does not verify")
	}
	if !fresh.IsAdmin() {
		t.Error("post-promotion login still issues a user-role token")
	}
}

func TestMakeAdminUnknownEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	err := svc.MakeAdmin(context.Background(), "ghost@example.com")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("MakeAdmin() error = %v, want ErrUserNotFound", err)
	}
}
