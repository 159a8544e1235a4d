package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/common/clock"
	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned for malformed, badly signed or unexpected tokens
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when the token is past its expiry
	ErrExpiredToken = errors.New("token has expired")
)

// Claims carried by an operator token
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwtlib.RegisteredClaims
}

// Manager issues and verifies HS256 operator tokens
type Manager struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// NewManager creates a token manager. ttl is the lifetime of issued tokens.
func NewManager(secret string, ttl time.Duration, clk clock.Clock) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret cannot be empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt lifetime must be positive, got %s", ttl)
	}
	if clk == nil {
		clk = &clock.DefaultClock{}
	}
	return &Manager{secret: []byte(secret), ttl: ttl, clock: clk}, nil
}

// Issue signs a token for the operator and returns it with its expiry
func (m *Manager) Issue(subject, email, role string) (string, time.Time, error) {
	now := m.clock.Now()
	expiresAt := now.Add(m.ttl)

	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(expiresAt),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse verifies the signature and expiry and returns the claims
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	parser := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(m.clock.Now),
		jwtlib.WithExpirationRequired(),
	)

	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwtlib.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
