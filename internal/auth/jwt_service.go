package auth

import (
	"errors"

	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenExpiry is the duration for which issued tokens are valid. There is no
// refresh or revocation: a leaked token stays valid until this window ends.
const TokenExpiry = 24 * time.Hour

// FallbackSecret is substituted when no signing secret is configured. It is a
// documented weakness carried over from the original deployment; callers are
// expected to warn loudly when it is in use.
const FallbackSecret = "fallback-secret"

// ErrInvalidToken is returned for any verification failure. The concrete
// cause (expiry, tampering, malformed input) is never exposed to clients.
var ErrInvalidToken = errors.New("invalid token")

// Claims represents the JWT claims embedded in an admin token.
type Claims struct {
	AdminID uint `json:"id"`
	jwt.RegisteredClaims
}

// Service handles token generation and validation.
type Service struct {
	secret []byte
}

// NewService creates a token service with the given secret.
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue produces a signed token embedding the admin id, valid for TokenExpiry.
func (s *Service) Issue(adminID uint) (string, error) {
	now := time.Now()
	claims := &Claims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a token string and returns the embedded admin id. It
// rejects signature mismatches, expired tokens and structurally malformed
// input, collapsing every failure into ErrInvalidToken.
func (s *Service) Verify(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	return claims.AdminID, nil
}
