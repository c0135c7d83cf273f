package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned by VerifyToken when the token's expiry has passed.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenMalformed is returned by VerifyToken when the signature does not
	// validate or the token structure is unparseable.
	ErrTokenMalformed = errors.New("token is malformed or invalid")
)

// Claims holds the identity facts embedded in a verified token.
type Claims struct {
	UserID uint
	Email  string
}

// Generator defines the interface for JWT token generation and verification.
type Generator interface {
	// GenerateToken creates a signed JWT token for the given user.
	GenerateToken(userID uint, email string) (string, error)
	// VerifyToken validates a token string and returns its decoded claims.
	VerifyToken(token string) (*Claims, error)
}

// generator implements the Generator interface.
type generator struct {
	secret     []byte
	expiration time.Duration
}

// NewGenerator creates a new JWT generator with the provided secret and expiration duration.
// The secret and TTL are process-wide: rotating the secret invalidates all
// previously issued tokens.
func NewGenerator(secret string, expiration time.Duration) Generator {
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken creates a signed JWT token with standard claims.
func (g *generator) GenerateToken(userID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"exp":   time.Now().Add(g.expiration).Unix(),
		"iat":   time.Now().Unix(),
		"email": email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken parses and validates a token string.
// It returns ErrTokenExpired for tokens past their expiry and
// ErrTokenMalformed for any other validation failure.
func (g *generator) VerifyToken(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}
	if !token.Valid {
		return nil, ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenMalformed
	}

	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return nil, ErrTokenMalformed
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, ErrTokenMalformed
	}

	return &Claims{UserID: uint(sub), Email: email}, nil
}
