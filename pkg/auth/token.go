package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"arboria/entities"
	"arboria/pkg/apperr"
)

const tokenTTL = 30 * 24 * time.Hour

func (s *Service) issueToken(u *entities.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   u.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return "", apperr.Wrap(apperr.Store, "sign token", err)
	}
	return tok, nil
}

// ParseToken returns the user ID a token was issued for, or "" for anything
// invalid or expired.
func ParseToken(secret, raw string) string {
	tok, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return ""
	}
	claims, ok := tok.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return ""
	}
	return claims.Subject
}
