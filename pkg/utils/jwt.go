package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	sessionSecret string
	sessionExpiry time.Duration
)

// InitJWT initializes the session token secret and expiry
func InitJWT(secret string, expiry time.Duration) {
	sessionSecret = secret
	sessionExpiry = expiry
}

// SessionClaims represents the session token custom claims.
// SerialNumber is set only for patient sessions.
type SessionClaims struct {
	UserID       uint   `json:"user_id"`
	Role         string `json:"role"`
	Email        string `json:"email"`
	SerialNumber string `json:"serial_number,omitempty"`
	jwt.RegisteredClaims
}

// GenerateSessionToken generates a signed, time-limited session token
func GenerateSessionToken(userID uint, role, email, serialNumber string) (string, error) {
	claims := SessionClaims{
		UserID:       userID,
		Role:         role,
		Email:        email,
		SerialNumber: serialNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(sessionSecret))
}

// ValidateSessionToken validates and parses a session token
func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(sessionSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
