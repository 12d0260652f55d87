package implementation

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"lumera-client/internal/entity"
	"lumera-client/internal/repository/contract"
)

// sessionFile is the on-disk shape: one flat JSON object under the
// well-known "token" and "user" keys.
type sessionFile struct {
	Token string       `json:"token,omitempty"`
	User  *entity.User `json:"user,omitempty"`
}

type fileSessionRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileSessionRepository(path string) contract.SessionRepository {
	return &fileSessionRepository{path: path}
}

func (r *fileSessionRepository) Get() entity.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return entity.Session{}
	}

	var stored sessionFile
	if err := json.Unmarshal(data, &stored); err != nil {
		// Corrupt store reads as logged-out, it is rewritten on next login
		return entity.Session{}
	}
	if stored.Token == "" {
		// User without token would violate the session invariant
		return entity.Session{}
	}
	return entity.Session{Token: stored.Token, User: stored.User}
}

func (r *fileSessionRepository) Set(token string, user entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.write(sessionFile{Token: token, User: &user})
}

func (r *fileSessionRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// write persists via temp file + rename so readers never see a half-written
// session.
func (r *fileSessionRepository) write(stored sessionFile) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return err
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}
