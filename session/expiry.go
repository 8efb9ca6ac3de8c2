package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ParseExpiry returns the exp claim of a JWT shaped token without verifying it.
// Opaque tokens yield the zero time, which oauth2 treats as "never expires".
func ParseExpiry(token string) time.Time {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
