package implementation

import (
	"os"
	"path/filepath"
	"testing"

	"lumera-client/internal/entity"

	"github.com/stretchr/testify/assert"
)

func testUser() entity.User {
	return entity.User{Id: 7, Email: "jane@example.com", Username: "jane", CreatedAt: "2024-03-01T10:00:00Z"}
}

func TestSetThenGetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	repo := NewFileSessionRepository(path)

	assert.NoError(t, repo.Set("token-abc", testUser()))

	session := repo.Get()
	assert.Equal(t, "token-abc", session.Token)
	if assert.NotNil(t, session.User) {
		assert.Equal(t, 7, session.User.Id)
		assert.Equal(t, "jane", session.User.Username)
	}
}

func TestGetWithoutStoreIsEmptySession(t *testing.T) {
	repo := NewFileSessionRepository(filepath.Join(t.TempDir(), "missing.json"))

	session := repo.Get()
	assert.False(t, session.Authenticated())
	assert.Nil(t, session.User)
}

func TestSessionSurvivesNewRepositoryInstance(t *testing.T) {
	// Same path, fresh instance: the reload-persistence the browser's
	// localStorage provided
	path := filepath.Join(t.TempDir(), "session.json")
	assert.NoError(t, NewFileSessionRepository(path).Set("token-abc", testUser()))

	reopened := NewFileSessionRepository(path)
	assert.Equal(t, "token-abc", reopened.Get().Token)
}

func TestClearRemovesBothFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	repo := NewFileSessionRepository(path)
	assert.NoError(t, repo.Set("token-abc", testUser()))

	assert.NoError(t, repo.Clear())

	session := repo.Get()
	assert.Empty(t, session.Token)
	assert.Nil(t, session.User)

	// Clearing an already-empty store is fine
	assert.NoError(t, repo.Clear())
}

func TestCorruptStoreReadsAsLoggedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	session := NewFileSessionRepository(path).Get()
	assert.False(t, session.Authenticated())
}

func TestUserWithoutTokenIsDiscarded(t *testing.T) {
	// A stored user without a token would violate the session invariant
	path := filepath.Join(t.TempDir(), "session.json")
	assert.NoError(t, os.WriteFile(path, []byte(`{"user": {"id": 7}}`), 0o600))

	session := NewFileSessionRepository(path).Get()
	assert.False(t, session.Authenticated())
	assert.Nil(t, session.User)
}
