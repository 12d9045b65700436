package fileapi

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims identifies the cache service and the file it asks about
type Claims struct {
	Variant string `json:"variant,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken signs a short-lived HS256 bearer token for one file
func GenerateToken(secret, issuer, fileID, variant string, now time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		Variant: variant,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   fileID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
