package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, subject string, authorities []string, exp time.Time) string {
	t.Helper()
	claims := Claims{
		Authorities: authorities,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("backend-only-secret"))
	require.NoError(t, err)
	return signed
}

func TestFromTokenCustomer(t *testing.T) {
	now := time.Now()
	tok := signToken(t, "ana@example.com", []string{"ROLE_USER"}, now.Add(time.Hour))

	s := FromToken(tok, now)
	assert.True(t, s.Authenticated)
	assert.False(t, s.Admin)
	assert.Equal(t, "ana@example.com", s.Email)
}

func TestFromTokenAdmin(t *testing.T) {
	now := time.Now()
	tok := signToken(t, "root@example.com", []string{"ROLE_USER", "ROLE_ADMIN"}, now.Add(time.Hour))

	s := FromToken(tok, now)
	assert.True(t, s.Authenticated)
	assert.True(t, s.Admin)
}

func TestFromTokenExpired(t *testing.T) {
	now := time.Now()
	tok := signToken(t, "ana@example.com", []string{"ROLE_ADMIN"}, now.Add(-time.Minute))

	assert.Equal(t, Anonymous(), FromToken(tok, now))
}

func TestFromTokenGarbage(t *testing.T) {
	assert.Equal(t, Anonymous(), FromToken("", time.Now()))
	assert.Equal(t, Anonymous(), FromToken("not.a.jwt", time.Now()))
	assert.Equal(t, Anonymous(), FromToken("xxxx", time.Now()))
}

func TestClaimsValidAtRequiresExp(t *testing.T) {
	// Tokens without an expiry are treated as unusable.
	c := &Claims{}
	assert.False(t, c.ValidAt(time.Now()))
}

func TestHasRole(t *testing.T) {
	roles := []string{"ROLE_USER", "ROLE_ADMIN"}
	assert.True(t, HasRole(roles, "ROLE_ADMIN"))
	assert.False(t, HasRole(roles, "ROLE_AUDITOR"))
	assert.False(t, HasRole(nil, "ROLE_USER"))
}
