package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"keystrokes/internal/domain"
	"keystrokes/internal/logging"
)

// ErrEmptyUsername is returned when logging in without a username
var ErrEmptyUsername = errors.New("username must not be empty")

// AuthService is a local login stub. Any non-empty username is accepted,
// the password is ignored, and the account ID is the login timestamp in
// unix millis. No credentials are ever validated or stored.
type AuthService struct {
	prefs *PreferencesService
}

// NewAuthService creates a new AuthService
func NewAuthService(prefs *PreferencesService) *AuthService {
	return &AuthService{prefs: prefs}
}

// Login creates and persists a user for the given username
func (s *AuthService) Login(ctx context.Context, username, _ string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}

	user := domain.User{
		ID:       time.Now().UnixMilli(),
		Username: username,
	}
	persisted := s.prefs.SaveUser(ctx, user)
	logging.Logger.Info("User logged in", "username", username, "persisted", persisted)
	return &user, nil
}

// CurrentUser returns the persisted user, or nil when nobody is logged in
func (s *AuthService) CurrentUser(ctx context.Context) *domain.User {
	return s.prefs.LoadUser(ctx)
}

// Logout removes the persisted user
func (s *AuthService) Logout(ctx context.Context) bool {
	ok := s.prefs.DeleteUser(ctx)
	logging.Logger.Info("User logged out", "persisted", ok)
	return ok
}
