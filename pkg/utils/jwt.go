package utils

import (
	"fmt"
	"time"

	"github.com/alimikegami/catalog-service/pkg/errs"
	"github.com/golang-jwt/jwt"
	"github.com/oklog/ulid/v2"
)

type AdminClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.StandardClaims
}

func CreateJWTToken(username string, role string, jwtSecretKey string, issuedAt time.Time, ttl time.Duration) (string, AdminClaims, error) {
	claims := AdminClaims{
		Username: username,
		Role:     role,
		StandardClaims: jwt.StandardClaims{
			Id:        ulid.Make().String(),
			IssuedAt:  issuedAt.Unix(),
			ExpiresAt: issuedAt.Add(ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(jwtSecretKey))
	if err != nil {
		return "", claims, err
	}

	return signed, claims, nil
}

// ParseJWTToken verifies signature, algorithm and expiry. Every failure is
// reported as errs.ErrForbidden.
func ParseJWTToken(tokenString string, jwtSecretKey string) (AdminClaims, error) {
	claims := AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(jwtSecretKey), nil
	})
	if err != nil {
		return claims, fmt.Errorf("%w: %v", errs.ErrForbidden, err)
	}

	if !token.Valid {
		return claims, errs.ErrForbidden
	}

	return claims, nil
}
