// Package credstore persists the session token and optional remembered
// credentials across restarts, backed by a diskv key-value store on disk.
// The key names are part of the contract: they must stay stable so an
// existing store keeps working after upgrades.
package credstore

import (
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

const (
	keyToken    = "auth_token"
	keyUsername = "saved_username"
	keyPassword = "saved_password"
)

// Store is a small file-backed key-value store for session credentials.
type Store struct {
	d *diskv.Diskv
}

// New opens (creating if necessary) a credential store rooted at basePath.
func New(basePath string) *Store {
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 64 * 1024,
	})}
}

// Token returns the persisted session token. The second return is false when
// no token is stored.
func (s *Store) Token() (string, bool) {
	return s.read(keyToken)
}

// SetToken persists the session token.
func (s *Store) SetToken(token string) error {
	if err := s.d.Write(keyToken, []byte(token)); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	return nil
}

// ClearToken removes the persisted token. Clearing an absent token is a
// no-op.
func (s *Store) ClearToken() error {
	if err := s.d.Erase(keyToken); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

// SaveCredentials stores the username and password for login-form prefill
// when the user opted to be remembered.
func (s *Store) SaveCredentials(username, password string) error {
	if err := s.d.Write(keyUsername, []byte(username)); err != nil {
		return fmt.Errorf("failed to save username: %w", err)
	}
	if err := s.d.Write(keyPassword, []byte(password)); err != nil {
		return fmt.Errorf("failed to save password: %w", err)
	}
	return nil
}

// Credentials returns the remembered username and password. The third
// return is false when nothing was remembered.
func (s *Store) Credentials() (username, password string, ok bool) {
	username, okUser := s.read(keyUsername)
	password, okPass := s.read(keyPassword)
	if !okUser || !okPass {
		return "", "", false
	}
	return username, password, true
}

// ClearCredentials forgets any remembered username and password.
func (s *Store) ClearCredentials() error {
	for _, key := range []string{keyUsername, keyPassword} {
		if err := s.d.Erase(key); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}
	return nil
}

func (s *Store) read(key string) (string, bool) {
	val, err := s.d.Read(key)
	if err != nil {
		return "", false
	}
	return string(val), true
}
