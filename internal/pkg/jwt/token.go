package jwt

import (
	"time"

	"github.com/earnnest/earnnest-web/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateToken creates a signed session token for the given user.
// Tokens are normally minted by the upstream auth service; this mirrors
// its claim layout for local development and tests.
func GenerateToken(userID, email string, expiry time.Duration, cfg models.JWTConfig) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(expiry).Unix(),
		"iss":     cfg.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string, secret string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, err
}
