// Package session persists the user's credentials between runs, the way the
// web storefront keeps them in localStorage. The token is opaque: attached
// per request, never parsed, never refreshed.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Balance  int64  `json:"balance"`
}

// Authenticated reports whether a token is present. Without one the user is
// anonymous: catalog and search still work, the cart does not.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath places the session file under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "qkart", "session.json"), nil
}

// Load reads the persisted session. A missing file is an anonymous session,
// not an error.
func (f *FileStore) Load() (Session, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Session{}, nil
		}
		return Session{}, err
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return Session{}, err
	}
	return s, nil
}

func (f *FileStore) Save(s Session) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, raw, 0o600)
}

// Clear removes the persisted session. Clearing an absent session is a no-op.
func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
