package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shortling/shortling/pkg/core/domain"
)

const (
	tokenFile = "token"
	userFile  = "user.json"
)

// FileStore persists the session as two entries under dir: the raw bearer
// token and a small JSON identity record. The pair is written together on
// login and removed together on logout; loading anything less than the full
// pair counts as not logged in.
type FileStore struct {
	dir string
}

type userRecord struct {
	Username string `json:"username"`
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create credential dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Load reads the persisted pair. A missing or malformed entry yields
// found=false with no error; storage that cannot even be read surfaces the
// underlying error so the caller can log it.
func (s *FileStore) Load() (domain.Session, bool, error) {
	tokenRaw, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if errors.Is(err, os.ErrNotExist) {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, fmt.Errorf("read token: %w", err)
	}

	userRaw, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if errors.Is(err, os.ErrNotExist) {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, fmt.Errorf("read user: %w", err)
	}

	token := strings.TrimSpace(string(tokenRaw))
	var user userRecord
	if token == "" || json.Unmarshal(userRaw, &user) != nil || user.Username == "" {
		return domain.Session{}, false, nil
	}

	return domain.Session{Username: user.Username, Token: token}, true, nil
}

// Save writes both entries. The identity record goes first so a crash between
// the two writes leaves a partial pair, which Load treats as logged out.
func (s *FileStore) Save(session domain.Session) error {
	raw, err := json.Marshal(userRecord{Username: session.Username})
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.dir, userFile), raw, 0o600); err != nil {
		return fmt.Errorf("write user: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(session.Token), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// Clear removes both entries. Already-absent entries are not an error.
func (s *FileStore) Clear() error {
	var errs []error
	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
