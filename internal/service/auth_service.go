package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cafe-pos/internal/model"
	"cafe-pos/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// sessionTTL bounds how long an admin session token stays valid.
const sessionTTL = 12 * time.Hour

// authService implements AuthService using bcrypt credential hashes and an
// in-memory session store.
type authService struct {
	adminRepo repository.AdminRepository
	logger    zerolog.Logger

	mu       sync.Mutex
	sessions map[string]time.Time
}

// NewAuthService creates a new authentication service.
func NewAuthService(adminRepo repository.AdminRepository, logger zerolog.Logger) AuthService {
	return &authService{
		adminRepo: adminRepo,
		logger:    logger.With().Str("service", "auth").Logger(),
		sessions:  make(map[string]time.Time),
	}
}

// Login verifies an administrator's credentials against the stored bcrypt
// hash and issues a session token on success. Unknown usernames and wrong
// passwords are indistinguishable to the caller, which avoids username
// enumeration.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", model.ErrInvalidCredentials
	}

	creds, err := s.adminRepo.GetCredentials(ctx, username)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch admin credentials")
		return "", fmt.Errorf("failed to verify credentials: %w", err)
	}

	if creds == nil {
		s.logger.Warn().Msg("login attempt for unknown admin user")
		return "", model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn().Str("username", username).Msg("admin login failed")
		return "", model.ErrInvalidCredentials
	}

	token := uuid.NewString()

	s.mu.Lock()
	s.sessions[token] = time.Now().Add(sessionTTL)
	s.mu.Unlock()

	s.logger.Info().Str("username", username).Msg("admin login succeeded")

	return token, nil
}

// Validate reports whether the token belongs to a live session. Expired
// sessions are dropped on sight.
func (s *authService) Validate(token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.sessions[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(s.sessions, token)
		return false
	}
	return true
}
