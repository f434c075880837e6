// Package session tracks authentication state for one user session and
// persists the session token across restarts via the credential store.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/attidev/storefront/internal/credstore"
	"github.com/attidev/storefront/internal/gateway"
)

// AuthGateway is the slice of the remote gateway the session needs.
type AuthGateway interface {
	Login(ctx context.Context, username, password string, expiresInMins int) (*gateway.AuthUser, error)
	Me(ctx context.Context, token string) (*gateway.AuthUser, error)
}

// Options tune session behavior.
type Options struct {
	// ExpiresInMins is passed through to the login exchange.
	ExpiresInMins int
	// ValidateOnStart makes Initialize confirm a stored token against the
	// remote profile endpoint instead of trusting its presence. Off by
	// default: the stored token is trusted until a request rejects it.
	ValidateOnStart bool
}

// Session holds authentication status, the token, and the user profile
// retained from the last successful login. It is owned by a single caller
// and not safe for concurrent use.
type Session struct {
	gw     AuthGateway
	store  *credstore.Store
	opts   Options
	logger *slog.Logger

	authenticated bool
	token         string
	user          *gateway.AuthUser
}

// New creates an unauthenticated session.
func New(gw AuthGateway, store *credstore.Store, opts Options, logger *slog.Logger) *Session {
	if opts.ExpiresInMins <= 0 {
		opts.ExpiresInMins = 30
	}
	return &Session{
		gw:     gw,
		store:  store,
		opts:   opts,
		logger: logger.With("component", "session"),
	}
}

// Login exchanges credentials with the remote gateway. On success the token
// is persisted, the full profile payload is retained, and the session is
// authenticated. On failure the session is left exactly as it was:
// unauthenticated callers stay unauthenticated, nothing is persisted.
// With remember set, the credentials are stored for later prefill;
// otherwise any previously remembered credentials are cleared.
func (s *Session) Login(ctx context.Context, username, password string, remember bool) error {
	user, err := s.gw.Login(ctx, username, password, s.opts.ExpiresInMins)
	if err != nil {
		return err
	}

	if err := s.store.SetToken(user.Token); err != nil {
		return fmt.Errorf("login succeeded but token could not be persisted: %w", err)
	}
	if remember {
		if err := s.store.SaveCredentials(username, password); err != nil {
			s.logger.Warn("Failed to remember credentials", "error", err)
		}
	} else if err := s.store.ClearCredentials(); err != nil {
		s.logger.Warn("Failed to clear remembered credentials", "error", err)
	}

	s.authenticated = true
	s.token = user.Token
	s.user = user
	s.logger.Info("Login successful", "username", user.Username)
	return nil
}

// Logout clears the persisted token and resets to unauthenticated with no
// user profile. Remembered credentials are left alone.
func (s *Session) Logout() error {
	s.authenticated = false
	s.token = ""
	s.user = nil
	if err := s.store.ClearToken(); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	s.logger.Info("Logged out")
	return nil
}

// Initialize restores authentication state at process start. A stored token
// marks the session authenticated without a profile; with ValidateOnStart
// the token is confirmed against the profile endpoint first, and a rejected
// token leaves the session unauthenticated.
func (s *Session) Initialize(ctx context.Context) error {
	token, ok := s.store.Token()
	if !ok {
		return nil
	}

	if s.opts.ValidateOnStart {
		user, err := s.gw.Me(ctx, token)
		if err != nil {
			s.logger.Warn("Stored token rejected, starting unauthenticated", "error", err)
			return s.store.ClearToken()
		}
		s.user = user
	}

	s.authenticated = true
	s.token = token
	return nil
}

// Authenticated reports whether the session holds a token.
func (s *Session) Authenticated() bool {
	return s.authenticated
}

// Token returns the current session token, empty when unauthenticated.
func (s *Session) Token() string {
	return s.token
}

// User returns the retained profile payload, nil when none is known (either
// unauthenticated, or restored from a stored token without validation).
func (s *Session) User() *gateway.AuthUser {
	return s.user
}

// SavedCredentials returns remembered credentials for login-form prefill.
func (s *Session) SavedCredentials() (username, password string, ok bool) {
	return s.store.Credentials()
}
