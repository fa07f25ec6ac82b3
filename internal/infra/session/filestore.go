package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
	"github.com/ShubhamAnand123/onlawthink/internal/ports"
)

// FileStore keeps the session token in a single file readable only by its owner.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

var _ ports.SessionStore = (*FileStore)(nil)

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return &domain.OpError{Op: "session.save", Kind: domain.KindInvalidConfig, Path: s.path, Err: ErrMissingToken}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return &domain.OpError{Op: "session.mkdir", Kind: domain.KindExecution, Path: s.path, Err: err}
	}

	// Atomic-ish write: tmp then rename.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(token+"\n"), 0o600); err != nil {
		return &domain.OpError{Op: "session.write", Kind: domain.KindExecution, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "session.rename", Kind: domain.KindExecution, Path: s.path, Err: err}
	}
	return nil
}

// Load returns "" without error when no session was saved.
func (s *FileStore) Load() (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", &domain.OpError{Op: "session.load", Kind: domain.KindExecution, Path: s.path, Err: err}
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return &domain.OpError{Op: "session.clear", Kind: domain.KindExecution, Path: s.path, Err: err}
	}
	return nil
}
