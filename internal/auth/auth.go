package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/banka-network/banka-backend/internal/adapter"
)

const (
	DEFAULT_TOKEN_TTL = 24 * time.Hour
	TOKEN_ISSUER      = "banka"
)

var (
	// ErrSecretNotConfigured is returned when signing or verifying without a secret
	ErrSecretNotConfigured = errors.New("JWT secret not configured")
	// ErrInvalidToken is returned for tokens that fail signature or claim validation
	ErrInvalidToken = errors.New("invalid token")
)

// HashPassword hashes a password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the bcrypt hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// TokenIssuer signs and verifies HS256 session tokens whose subject is the user ID
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  adapter.Clock
}

// NewTokenIssuer creates a token issuer. A non-positive ttl uses DEFAULT_TOKEN_TTL.
func NewTokenIssuer(secret string, ttl time.Duration, clock adapter.Clock) *TokenIssuer {
	if ttl <= 0 {
		ttl = DEFAULT_TOKEN_TTL
	}
	if clock == nil {
		clock = adapter.NewClock()
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, clock: clock}
}

// Issue returns a signed token for the user
func (i *TokenIssuer) Issue(userID string) (string, time.Time, error) {
	if len(i.secret) == 0 {
		return "", time.Time{}, ErrSecretNotConfigured
	}

	now := i.clock.Now()
	expiresAt := now.Add(i.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    TOKEN_ISSUER,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify validates a token and returns its claims
func (i *TokenIssuer) Verify(tokenString string) (*jwt.RegisteredClaims, error) {
	if len(i.secret) == 0 {
		return nil, ErrSecretNotConfigured
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	},
		jwt.WithIssuer(TOKEN_ISSUER),
		jwt.WithTimeFunc(i.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
