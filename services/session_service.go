package services

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/elgato/elgato-app/models"
	"github.com/elgato/elgato-app/storage"
	"github.com/elgato/elgato-app/utils"
)

// SessionService manages the single active session record. Logging in
// overwrites it, logging out erases it. The admin identity is a single
// configured credential pair; any other non-empty email/password combo
// is accepted as a regular user.
type SessionService struct {
	store      storage.Adapter
	adminEmail string
	adminHash  []byte

	mu      sync.RWMutex
	current *models.UserSession
}

func NewSessionService(store storage.Adapter, adminEmail string, adminHash []byte) (*SessionService, error) {
	s := &SessionService{
		store:      store,
		adminEmail: adminEmail,
		adminHash:  adminHash,
	}

	var sess models.UserSession
	ok, err := storage.LoadJSON(store, storage.KeySession, &sess)
	if err != nil {
		return nil, err
	}
	if ok && sess.IsLoggedIn {
		s.current = &sess
	}
	return s, nil
}

// Login authenticates and returns the new session plus an API token.
// The admin email with a wrong password falls through to a regular user
// session rather than failing, matching the original stub.
func (s *SessionService) Login(email, password string) (models.UserSession, string, error) {
	if email == "" || password == "" {
		return models.UserSession{}, "", ErrInvalidCredentials
	}

	role := models.RoleUser
	if email == s.adminEmail &&
		bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)) == nil {
		role = models.RoleAdmin
	}

	sess := models.UserSession{
		SessionID:  uuid.NewString(),
		Email:      email,
		Role:       role,
		IsLoggedIn: true,
	}

	s.mu.Lock()
	s.current = &sess
	err := storage.SaveJSON(s.store, storage.KeySession, sess)
	s.mu.Unlock()
	if err != nil {
		return models.UserSession{}, "", err
	}

	token, err := utils.GenerateToken(sess.SessionID, sess.Email, string(sess.Role))
	if err != nil {
		return models.UserSession{}, "", err
	}

	utils.InfoLogger.Printf("Login: %s (role=%s)", sess.Email, sess.Role)
	return sess, token, nil
}

// Logout erases the session record entirely.
func (s *SessionService) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	return s.store.Delete(storage.KeySession)
}

// Current returns the active session, if any.
func (s *SessionService) Current() (models.UserSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return models.UserSession{}, false
	}
	return *s.current, true
}

func (s *SessionService) LoggedIn() bool {
	_, ok := s.Current()
	return ok
}
