package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/elgato/elgato-app/events"
	"github.com/elgato/elgato-app/router"
	"github.com/elgato/elgato-app/services"
	"github.com/elgato/elgato-app/storage"
	"github.com/elgato/elgato-app/utils"
)

const (
	testAdminEmail    = "admin@elgato.com"
	testAdminPassword = "admin123"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *storage.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	utils.SetJWTSecret("test-secret")

	store := storage.NewMemoryStore()
	hub := events.NewHub()

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	sessions, err := services.NewSessionService(store, testAdminEmail, hash)
	if err != nil {
		t.Fatal(err)
	}
	carts, err := services.NewCartService(store, sessions)
	if err != nil {
		t.Fatal(err)
	}
	orders, err := services.NewOrderService(store, sessions, hub)
	if err != nil {
		t.Fatal(err)
	}
	favorites, err := services.NewFavoriteService(store, hub)
	if err != nil {
		t.Fatal(err)
	}

	r := router.SetupRouter(router.App{
		Catalog:   services.NewCatalogService(),
		Carts:     carts,
		Orders:    orders,
		Sessions:  sessions,
		Favorites: favorites,
		Hub:       hub,
		BaseURL:   "http://localhost:8080",
	})
	return r, store
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		buf = bytes.NewBuffer(payload)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return resp
}

func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()

	w := doRequest(t, r, "POST", "/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}

	data := decodeResponse(t, w)["data"].(map[string]interface{})
	return data["token"].(string)
}
