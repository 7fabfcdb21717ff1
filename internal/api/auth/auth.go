// Package auth issues and verifies the JWT session tokens used by the API.
package auth

import (
	"fmt"
	"strings"
	"time"

	"gympass/pkg/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer is the iss claim stamped on every issued token.
const Issuer = "gympass"

// Config holds the signing parameters for session tokens.
type Config struct {
	// Secret is the HMAC key used to sign and verify tokens.
	Secret string
	// TTL is how long an issued token stays valid.
	TTL time.Duration
}

// Claims represents the payload extracted from a session token.
type Claims struct {
	UserID    domain.UserID
	ExpiresAt time.Time
}

// ErrMissingToken is returned when the Authorization header is absent.
var ErrMissingToken = fmt.Errorf("missing bearer token")

// ErrInvalidToken wraps parsing/validation errors.
var ErrInvalidToken = fmt.Errorf("invalid bearer token")

// Sign issues a token for the given user. The subject claim carries the user
// ID and the token expires after cfg.TTL.
func Sign(userID domain.UserID, cfg Config, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    Issuer,
		Subject:   uuid.UUID(userID).String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
	})

	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return signed, nil
}

// Parse validates a session token and returns its normalized claims.
func Parse(token string, cfg Config) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(cfg.Secret), nil
	}, jwt.WithIssuer(Issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	subject, _ := claims["sub"].(string)
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrInvalidToken
	}

	return &Claims{
		UserID:    domain.UserID(userID),
		ExpiresAt: exp.Time,
	}, nil
}
