// Package auth issues and checks the short-lived access tokens handed out
// after a successful verification.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/voxkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the verified username as the token subject, plus the
// method that verified it.
type Claims struct {
	jwt.RegisteredClaims
	Method string `json:"mth,omitempty"`
}

// GenerateToken signs an HS256 token for username valid for validityDuration.
func GenerateToken(username, method string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Method: method,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUsernameFromToken validates tokenString and returns its subject.
// Expired tokens yield common.ErrTokenExpired, anything else that fails
// validation yields common.ErrInvalidToken.
func GetUsernameFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
