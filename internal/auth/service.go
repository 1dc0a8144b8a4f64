package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Config holds session token configuration
type Config struct {
	Secret      []byte        // Secret key for signing tokens
	TokenExpiry time.Duration // How long a session token is valid
}

// DefaultConfig returns sensible defaults
func DefaultConfig(secret string) Config {
	return Config{
		Secret:      []byte(secret),
		TokenExpiry: 30 * time.Minute,
	}
}

// Claims represents the JWT payload
type Claims struct {
	jwt.RegisteredClaims
	SessionID uuid.UUID `json:"session_id"`
	Username  string    `json:"username"`
}

// Token is a signed session token handed to the client after login
type Token struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	TokenType   string    `json:"token_type"`
}

// Service issues and validates session tokens
type Service struct {
	config Config
	now    func() time.Time
}

// NewService creates a new auth service
func NewService(config Config) *Service {
	return &Service{
		config: config,
		now:    time.Now,
	}
}

// Issue signs a token bound to the given session
func (s *Service) Issue(username string, sessionID uuid.UUID) (*Token, error) {
	if sessionID == uuid.Nil {
		return nil, errors.New("cannot issue token without a session")
	}

	now := s.now()
	expiry := now.Add(s.config.TokenExpiry)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
			Issuer:    "bankist",
		},
		SessionID: sessionID,
		Username:  username,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.config.Secret)
	if err != nil {
		return nil, err
	}

	return &Token{
		AccessToken: signed,
		ExpiresAt:   expiry,
		TokenType:   "Bearer",
	}, nil
}

// ValidateToken parses and validates a session token
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.config.Secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
