package server

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// pinTokenTTL bounds how long a proven PIN stays proven. It is a viewing
// session, not an account: unlocking is terminal until the token expires.
const pinTokenTTL = 12 * time.Hour

// pinSigner mints and checks the tokens that carry an anonymous visitor's
// proven PIN across requests. Each token is bound to one share code.
type pinSigner struct {
	secretKey []byte
}

type pinClaims struct {
	ShareCode string `json:"share_code"`
	jwt.RegisteredClaims
}

func newPinSigner(secretKey string) *pinSigner {
	return &pinSigner{secretKey: []byte(secretKey)}
}

// issue creates a token proving the PIN for the given share code.
func (s *pinSigner) issue(shareCode string) (string, error) {
	claims := &pinClaims{
		ShareCode: shareCode,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(pinTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign pin token: %w", err)
	}
	return signed, nil
}

// verified reports whether the token proves the PIN for this share code.
// Any parse or mismatch failure just means "not verified".
func (s *pinSigner) verified(shareCode, tokenString string) bool {
	if tokenString == "" {
		return false
	}
	token, err := jwt.ParseWithClaims(
		tokenString,
		&pinClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.secretKey, nil
		},
	)
	if err != nil || !token.Valid {
		return false
	}
	claims, ok := token.Claims.(*pinClaims)
	return ok && claims.ShareCode == shareCode
}
