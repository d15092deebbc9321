package services

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/elgato/elgato-app/models"
	"github.com/elgato/elgato-app/storage"
	"github.com/elgato/elgato-app/utils"
)

const (
	testAdminEmail    = "admin@elgato.com"
	testAdminPassword = "admin123"
)

func testAdminHash(t *testing.T) []byte {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return hash
}

func newTestSessions(t *testing.T, store storage.Adapter) *SessionService {
	t.Helper()
	utils.InitLogger()
	utils.SetJWTSecret("test-secret")

	sessions, err := NewSessionService(store, testAdminEmail, testAdminHash(t))
	if err != nil {
		t.Fatal(err)
	}
	return sessions
}

func loginAsUser(t *testing.T, sessions *SessionService) {
	t.Helper()
	if _, _, err := sessions.Login("cliente@example.com", "segredo"); err != nil {
		t.Fatal(err)
	}
}

func testCartLine(foodID int64, spiceLevel, quantity int, unitPrice float64) models.CartItem {
	return models.CartItem{
		FoodItem: models.FoodItem{
			ID:       foodID,
			Name:     "Test Food",
			Price:    unitPrice,
			Category: "tacos",
		},
		Quantity:           quantity,
		SelectedSpiceLevel: spiceLevel,
		TotalPrice:         float64(quantity) * unitPrice,
	}
}
