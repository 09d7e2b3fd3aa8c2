package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gymclub/booking-system/internal/core/domain"
)

// Claims is the signed token payload: an identity snapshot taken at issuance
// plus the registered expiry/issuance fields.
type Claims struct {
	Username string `json:"userName"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed identity tokens. It never
// reads storage: the payload is whatever snapshot was passed at issuance, and
// validity is purely signature (and expiry) validity.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding the given identity snapshot.
func (s *TokenService) Issue(identity domain.Identity) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: identity.Username,
		Name:     identity.Name,
		Email:    identity.Email,
		Role:     identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates the signature and returns the embedded identity. The
// second result is false for any malformed, tampered, expired, or
// wrongly-signed token; callers treat that identically to an absent token.
func (s *TokenService) Verify(tokenString string) (*domain.Identity, bool) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	return &domain.Identity{
		Username: claims.Username,
		Name:     claims.Name,
		Email:    claims.Email,
		Role:     claims.Role,
	}, true
}
