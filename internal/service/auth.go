package service

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"time"

	"alpharoot/config"
	"alpharoot/internal/dto"
	"alpharoot/internal/model"
	"alpharoot/pkg/apperrors"
	"alpharoot/pkg/localstore"
	"alpharoot/pkg/logger"
)

const (
	// Snapshot key of the serialized current user, the localStorage analog.
	userSnapshotKey = "alpharoot_user"

	// Plain session flags read by the standalone page variant.
	sessionFlagKey  = "isLoggedIn"
	sessionEmailKey = "userEmail"
	sessionNameKey  = "userName"

	// The only credential pair the demo accepts.
	demoEmail    = "test@example.com"
	demoPassword = "password"
	demoUserName = "Demo User"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService holds the single current session and keeps a persisted
// snapshot of it in the local store.
type AuthService struct {
	cfg   *config.Config
	log   *logger.Logger
	store *localstore.Store
	ids   idAllocator

	mu      sync.RWMutex
	current *model.User
}

// NewAuthService restores any persisted session snapshot. A snapshot that
// fails to parse is discarded and the service starts logged out; that is
// never surfaced as an error.
func NewAuthService(cfg *config.Config, log *logger.Logger, store *localstore.Store) *AuthService {
	s := &AuthService{cfg: cfg, log: log, store: store}

	var user model.User
	err := store.GetJSON(userSnapshotKey, &user)
	switch {
	case err == nil:
		s.current = &user
	case errors.Is(err, apperrors.ErrNotFound):
		// no previous session
	default:
		log.Warn("discarding unreadable session snapshot", logger.ErrorField(err))
		if delErr := store.Delete(userSnapshotKey); delErr != nil {
			log.Error("failed to clear session snapshot", logger.ErrorField(delErr))
		}
	}
	return s
}

// Login authenticates the fixed demo credential pair. Any other input fails
// with an AuthenticationError and leaves the session untouched.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	s.simulateLatency(ctx)

	if email != demoEmail || password != demoPassword {
		return nil, apperrors.NewAuthenticationError("email or password is incorrect")
	}

	now := time.Now()
	user := model.User{
		ID:        1,
		Email:     email,
		Name:      demoUserName,
		IsActive:  true,
		CreatedAt: now,
		LastLogin: &now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &user
	s.persistSession()

	s.log.InfoContext(ctx, "user logged in", logger.StringField("email", user.Email))
	out := user
	return &out, nil
}

// Register validates the payload and returns the new user. It does not
// establish a session; the caller logs in separately.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*model.User, error) {
	s.simulateLatency(ctx)

	if len([]rune(req.Name)) < 2 {
		return nil, apperrors.NewValidationError("name", "name must be at least 2 characters")
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, apperrors.NewValidationError("email", "please enter a valid email address")
	}
	if len(req.Password) < 6 {
		return nil, apperrors.NewValidationError("password", "password must be at least 6 characters")
	}

	user := model.User{
		ID:        s.ids.Next(),
		Email:     req.Email,
		Name:      req.Name,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	s.log.InfoContext(ctx, "user registered", logger.StringField("email", user.Email))
	return &user, nil
}

// Logout clears the session and its persisted snapshot. Idempotent.
func (s *AuthService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	for _, key := range []string{userSnapshotKey, sessionFlagKey, sessionEmailKey, sessionNameKey} {
		if err := s.store.Delete(key); err != nil {
			s.log.Error("failed to clear session key",
				logger.StringField("key", key), logger.ErrorField(err))
		}
	}
}

// IsAuthenticated reports whether an active user is logged in.
func (s *AuthService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && s.current.IsActive
}

// GetCurrentUser returns the session user, or nil when logged out.
func (s *AuthService) GetCurrentUser() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	out := *s.current
	return &out
}

// UpdateUser patches the current user's name and re-persists the snapshot.
func (s *AuthService) UpdateUser(req dto.UpdateUserRequest) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, apperrors.NewAuthenticationError("login required")
	}

	if req.Name != "" {
		s.current.Name = req.Name
	}
	s.persistSession()

	out := *s.current
	return &out, nil
}

// ResetPassword is a stub kept for API symmetry; it always fails.
func (s *AuthService) ResetPassword(email string) error {
	s.log.Info("password reset requested", logger.StringField("email", email))
	return errors.New("password reset is not implemented yet")
}

// persistSession writes the snapshot and the standalone session flags.
// Callers hold mu.
func (s *AuthService) persistSession() {
	if s.current == nil {
		return
	}
	if err := s.store.SetJSON(userSnapshotKey, s.current); err != nil {
		s.log.Error("failed to persist session snapshot", logger.ErrorField(err))
		return
	}
	flags := map[string]string{
		sessionFlagKey:  "true",
		sessionEmailKey: s.current.Email,
		sessionNameKey:  s.current.DisplayName(),
	}
	for key, value := range flags {
		if err := s.store.SetJSON(key, value); err != nil {
			s.log.Error("failed to persist session flag",
				logger.StringField("key", key), logger.ErrorField(err))
		}
	}
}

// simulateLatency pauses briefly to mimic a network round trip. It always
// completes; there is no cancellation semantics to honor.
func (s *AuthService) simulateLatency(ctx context.Context) {
	delay := s.cfg.Auth.SimulatedLatency
	if delay <= 0 {
		return
	}
	select {
	case <-time.After(delay):
	case <-ctx.Done():
	}
}
