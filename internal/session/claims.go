package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const adminAuthority = "ROLE_ADMIN"

// Claims are decoded from the bearer token without local verification:
// they only drive gating in this gateway, every backend re-verifies the
// token on its own.
type Claims struct {
	Authorities []string `json:"authorities"`
	jwt.RegisteredClaims
}

// ParseClaims decodes the claims of a JWT. The signature is deliberately
// not checked here.
func ParseClaims(token string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// ValidAt reports whether the token's expiry is still in the future.
// A missing exp claim counts as invalid.
func (c *Claims) ValidAt(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.After(now)
}

func (c *Claims) IsAdmin() bool {
	return HasRole(c.Authorities, adminAuthority)
}

// HasRole checks if the user has a specific role
func HasRole(userRoles []string, required string) bool {
	for _, r := range userRoles {
		if r == required {
			return true
		}
	}
	return false
}
