// Package credstore persists the current bearer credential across process
// restarts. The file store is the production implementation; MemStore backs
// tests and any embedding that must not touch disk.
package credstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const credentialsFile = "credentials.json"

// credentialsPayload is the on-disk shape. A dedicated struct keeps the file
// self-describing and leaves room for later fields without a format break.
type credentialsPayload struct {
	Token string `json:"token"`
}

// FileStore keeps the credential in a JSON file, one file per install dir,
// mirroring how the browser original scoped its storage to one origin.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore rooted at dir. An empty dir places the
// file under the user config directory. The directory is created with 0700;
// the file is written with 0600.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("credstore: resolve config dir: %w", err)
		}
		dir = filepath.Join(base, "restaurant-dashboard")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("credstore: create dir: %w", err)
	}
	return &FileStore{path: filepath.Join(dir, credentialsFile)}, nil
}

// Save writes the token, replacing any previous credential.
func (s *FileStore) Save(token string) error {
	data, err := json.MarshalIndent(credentialsPayload{Token: token}, "", "  ")
	if err != nil {
		return fmt.Errorf("credstore: marshal: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("credstore: write: %w", err)
	}
	return nil
}

// Load returns the stored token. A missing, unreadable or corrupt file all
// mean "no credential": the caller re-authenticates rather than crashing
// over a broken store.
func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", nil
	}
	var payload credentialsPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", nil
	}
	return payload.Token, nil
}

// Clear removes the credential. Clearing an already-empty store is a no-op.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("credstore: remove: %w", err)
	}
	return nil
}
