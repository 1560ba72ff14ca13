package chat

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{}

func (failingStore) Load() (string, error) { return "", errors.New("disk gone") }
func (failingStore) Save(string) error     { return errors.New("disk gone") }

func TestResolveUserIDPrefersAccountID(t *testing.T) {
	store := &FileIdentityStore{Path: filepath.Join(t.TempDir(), "chat_user_id")}

	assert.Equal(t, "42", ResolveUserID("42", store))

	// Nothing should have been persisted for an authenticated viewer.
	id, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestResolveUserIDGeneratesAndReusesAnonymousID(t *testing.T) {
	store := &FileIdentityStore{Path: filepath.Join(t.TempDir(), "chat_user_id")}

	first := ResolveUserID("", store)
	require.NotEmpty(t, first)
	_, err := uuid.Parse(first)
	require.NoError(t, err, "anonymous id is a uuid")

	second := ResolveUserID("", store)
	assert.Equal(t, first, second, "id survives across sessions")
}

func TestResolveUserIDDegradesWhenStorageFails(t *testing.T) {
	assert.Equal(t, "anonymous", ResolveUserID("", failingStore{}))
	assert.Equal(t, "anonymous", ResolveUserID("", nil))
}

func TestFileIdentityStoreLoadMissingFile(t *testing.T) {
	store := &FileIdentityStore{Path: filepath.Join(t.TempDir(), "nested", "chat_user_id")}

	id, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, store.Save("abc-123"))
	id, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc-123", id)
}
