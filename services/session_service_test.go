package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elgato/elgato-app/models"
	"github.com/elgato/elgato-app/storage"
	"github.com/elgato/elgato-app/utils"
)

func TestLoginAdmin(t *testing.T) {
	store := storage.NewMemoryStore()
	sessions := newTestSessions(t, store)

	sess, token, err := sessions.Login(testAdminEmail, testAdminPassword)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, sess.Role)
	assert.True(t, sess.IsLoggedIn)
	assert.NotEmpty(t, sess.SessionID)

	claims, err := utils.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, sess.SessionID, claims.SessionID)
}

// The admin email with a wrong password falls through to a regular user
// session, matching the original stub's behavior.
func TestLoginAdminWrongPasswordBecomesUser(t *testing.T) {
	store := storage.NewMemoryStore()
	sessions := newTestSessions(t, store)

	sess, _, err := sessions.Login(testAdminEmail, "not-the-password")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleUser, sess.Role)
}

func TestLoginAnyNonEmptyPairIsUser(t *testing.T) {
	store := storage.NewMemoryStore()
	sessions := newTestSessions(t, store)

	sess, _, err := sessions.Login("gata@example.com", "whatever")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleUser, sess.Role)
	assert.True(t, sessions.LoggedIn())
}

func TestLoginRejectsEmptyFields(t *testing.T) {
	store := storage.NewMemoryStore()
	sessions := newTestSessions(t, store)

	_, _, err := sessions.Login("", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = sessions.Login("a@b.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, sessions.LoggedIn())
}

func TestLoginOverwritesSession(t *testing.T) {
	store := storage.NewMemoryStore()
	sessions := newTestSessions(t, store)

	first, _, err := sessions.Login("a@example.com", "pw")
	assert.NoError(t, err)
	second, _, err := sessions.Login("b@example.com", "pw")
	assert.NoError(t, err)

	current, ok := sessions.Current()
	assert.True(t, ok)
	assert.Equal(t, second.Email, current.Email)
	assert.NotEqual(t, first.SessionID, second.SessionID)
}

func TestLogoutErasesSessionRecord(t *testing.T) {
	store := storage.NewMemoryStore()
	sessions := newTestSessions(t, store)

	_, _, err := sessions.Login("gata@example.com", "pw")
	assert.NoError(t, err)
	assert.NoError(t, sessions.Logout())

	assert.False(t, sessions.LoggedIn())
	_, ok, err := store.Load(storage.KeySession)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionHydratesFromStore(t *testing.T) {
	store := storage.NewMemoryStore()
	sessions := newTestSessions(t, store)
	_, _, err := sessions.Login("gata@example.com", "pw")
	assert.NoError(t, err)

	reloaded := newTestSessions(t, store)
	current, ok := reloaded.Current()
	assert.True(t, ok)
	assert.Equal(t, "gata@example.com", current.Email)
}
