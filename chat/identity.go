package chat

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// IdentityStore persists the anonymous chat identifier across sessions, the
// way the browser widget kept one in local storage.
type IdentityStore interface {
	Load() (string, error)
	Save(id string) error
}

// FileIdentityStore keeps the anonymous id in a small file under the user's
// config directory.
type FileIdentityStore struct {
	Path string
}

func NewFileIdentityStore() (*FileIdentityStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &FileIdentityStore{Path: filepath.Join(dir, "smartstorefront", "chat_user_id")}, nil
}

func (s *FileIdentityStore) Load() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileIdentityStore) Save(id string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(id), 0o644)
}

// ResolveUserID returns the stable correlation key the widget sends with
// every message: the account id when the viewer is authenticated, otherwise
// an anonymous identifier generated once and reused across sessions. Storage
// failures degrade to "anonymous" rather than blocking chat.
func ResolveUserID(accountID string, store IdentityStore) string {
	if accountID != "" {
		return accountID
	}

	if store != nil {
		if id, err := store.Load(); err == nil && id != "" {
			return id
		}
		id := uuid.NewString()
		if err := store.Save(id); err == nil {
			return id
		}
	}
	return "anonymous"
}
