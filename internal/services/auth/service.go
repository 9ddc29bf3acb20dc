package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/gamestack/admin/internal/dependencies/clock"
	"github.com/gamestack/admin/internal/model"
	"github.com/gamestack/admin/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// Service issues and verifies session tokens and authenticates logins.
// Tokens are HS256-signed JWTs carrying the user ID as subject; they are
// opaque to every other layer.
type Service struct {
	storage storage.Storage
	clock   clock.Clock

	secret          []byte
	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	// Secret signs session tokens. If empty, a random per-process secret
	// is generated (sessions then die with the process).
	Secret string
	// SessionDuration bounds how long an issued session stays valid
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new auth service
func New(store storage.Storage, clk clock.Clock, cfg Config) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}

	secret := []byte(cfg.Secret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		_, _ = rand.Read(secret)
	}

	return &Service{
		storage:         store,
		clock:           clk,
		secret:          secret,
		sessionDuration: cfg.SessionDuration,
	}
}

// Login authenticates a user by username and password and returns the user
// together with a freshly issued session token
func (s *Service) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.IssueSession(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// IssueSession creates a signed session token for the given user ID
func (s *Service) IssueSession(id model.UserID) (string, error) {
	now := s.clock.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   string(id),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionDuration)),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	return signed, nil
}

// VerifySession checks a session token and returns the subject user ID.
// The token only proves an authenticated subject; callers must re-resolve
// the user record for any authorization decision.
func (s *Service) VerifySession(tokenString string) (model.UserID, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidSession
	}

	if claims.Subject == "" {
		return "", ErrInvalidSession
	}

	return model.UserID(claims.Subject), nil
}

// HashPassword produces a bcrypt hash for storage on a user record
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
