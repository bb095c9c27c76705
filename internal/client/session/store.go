package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoCredentials is returned by Store.Load when no usable credentials are
// on disk: either no file exists or the file lacks a token/username pair.
var ErrNoCredentials = errors.New("no stored credentials")

// Credentials is the durable remainder of a session: exactly the token and
// the username it belongs to. Nothing else outlives a run.
type Credentials struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Store reads and writes Credentials at a fixed file path. It is written
// once per successful authentication, read once at startup, and cleared on
// logout; there are no concurrent writers.
type Store struct {
	path string
}

// NewStore builds a Store around the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath places the session file under the user config dir,
// e.g. ~/.config/hacksnooze/session.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(dir, "hacksnooze", "session.json"), nil
}

// Save writes the credentials, creating parent directories as needed.
// The file is user-only: it holds a live session token.
func (s *Store) Save(c Credentials) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

// Load reads the stored credentials. A missing file or a file without both
// fields yields ErrNoCredentials.
func (s *Store) Load() (Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Credentials{}, ErrNoCredentials
		}
		return Credentials{}, fmt.Errorf("reading session file: %w", err)
	}
	var c Credentials
	if err := json.Unmarshal(data, &c); err != nil {
		return Credentials{}, fmt.Errorf("decoding session file: %w", err)
	}
	if c.Token == "" || c.Username == "" {
		return Credentials{}, ErrNoCredentials
	}
	return c, nil
}

// Clear removes the session file. Clearing an absent file is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}
