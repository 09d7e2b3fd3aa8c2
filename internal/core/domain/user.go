package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models a registered account. The password is only ever stored as a
// bcrypt hash and is never serialized in responses.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"userName"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Identity is the snapshot of a user's public fields embedded in a token at
// issuance time. It deliberately carries no reference back to the users
// collection: role or name changes after issuance are not visible until a new
// token is issued.
type Identity struct {
	Username string `json:"userName"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the identity snapshot carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// SnapshotOf builds the token identity for a user.
func SnapshotOf(u *User) Identity {
	return Identity{
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
	}
}
