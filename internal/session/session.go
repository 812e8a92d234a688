// Package session owns the bearer credential for the ShopHub API.
// The token is persisted in ~/.config/shopfront/session.toml so a
// login survives restarts until the user logs out.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

const defaultSessionPath = "~/.config/shopfront/session.toml"

// DefaultPath returns the default session file path.
func DefaultPath() string {
	return defaultSessionPath
}

// Session holds the current bearer token and its storage location.
// At most one token is active at a time; an empty token means the
// client is unauthenticated.
type Session struct {
	mu     sync.RWMutex
	path   string
	token  string
	userID uint
}

type sessionFile struct {
	Token  string `toml:"token"`
	UserID uint   `toml:"user_id"`
}

// Load reads a persisted session from path, falling back to the default
// location when path is empty. A missing file yields an unauthenticated
// session, not an error.
func Load(path string) (*Session, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve session path: %w", err)
	}

	s := &Session{path: resolved}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	var file sessionFile
	if err := toml.Unmarshal(bytes, &file); err != nil {
		// A corrupt session file is treated as logged out rather than
		// blocking startup; the user can simply log in again.
		return s, nil
	}

	s.token = strings.TrimSpace(file.Token)
	s.userID = file.UserID
	return s, nil
}

// Current returns the active bearer token, or "" when unauthenticated.
func (s *Session) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// UserID returns the user id recorded at login time.
func (s *Session) UserID() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Authenticated reports whether a token is held.
func (s *Session) Authenticated() bool {
	return s.Current() != ""
}

// Set stores the token for subsequent requests and persists it.
func (s *Session) Set(token string, userID uint) error {
	s.mu.Lock()
	s.token = strings.TrimSpace(token)
	s.userID = userID
	path := s.path
	file := sessionFile{Token: s.token, UserID: s.userID}
	s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	bytes, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	// The token proves an authenticated session; keep it private.
	if err := os.WriteFile(path, bytes, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear removes the token from memory and deletes the session file.
// Subsequent requests are sent unauthenticated.
func (s *Session) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.userID = 0
	path := s.path
	s.mu.Unlock()

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultSessionPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
