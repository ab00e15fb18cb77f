package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("test-secret")

	token, err := svc.Issue(42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	id, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestIssueEmbedsExpiry(t *testing.T) {
	svc := NewService("test-secret")

	tokenString, err := svc.Issue(1)
	require.NoError(t, err)

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	assert.NotEmpty(t, claims.ID, "token should carry a jti")
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.WithinDuration(t, claims.IssuedAt.Add(TokenExpiry), claims.ExpiresAt.Time, time.Second)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewService("secret-one").Issue(1)
	require.NoError(t, err)

	_, err = NewService("secret-two").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	secret := "test-secret"
	past := time.Now().Add(-2 * time.Hour)
	claims := &Claims{
		AdminID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(past),
			NotBefore: jwt.NewNumericDate(past),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewService(secret).Verify(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMalformedInput(t *testing.T) {
	svc := NewService("test-secret")

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	claims := &Claims{
		AdminID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewService("test-secret").Verify(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTamperedPayloadFailsVerification(t *testing.T) {
	svc := NewService("test-secret")

	token, err := svc.Issue(1)
	require.NoError(t, err)

	// Flip a payload byte without re-signing.
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	_, err = svc.Verify(string(tampered))
	assert.ErrorIs(t, err, ErrInvalidToken)
}
