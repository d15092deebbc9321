package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/elgato/elgato-app/models"
	"github.com/elgato/elgato-app/services"
	"github.com/elgato/elgato-app/storage"
	"github.com/elgato/elgato-app/utils"
)

// Exercises the full order flow against the file adapter and then
// rebuilds every service from the same directory, the way a process
// restart would.
func TestStateSurvivesRestart(t *testing.T) {
	utils.InitLogger()
	utils.SetJWTSecret("test-secret")

	dir := t.TempDir()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	boot := func() (*services.SessionService, *services.CartService, *services.OrderService, *services.FavoriteService) {
		store, err := storage.NewFileStore(dir)
		require.NoError(t, err)
		sessions, err := services.NewSessionService(store, "admin@elgato.com", hash)
		require.NoError(t, err)
		carts, err := services.NewCartService(store, sessions)
		require.NoError(t, err)
		orders, err := services.NewOrderService(store, sessions, nil)
		require.NoError(t, err)
		favorites, err := services.NewFavoriteService(store, nil)
		require.NoError(t, err)
		return sessions, carts, orders, favorites
	}

	sessions, carts, orders, favorites := boot()

	_, _, err = sessions.Login("gata@example.com", "segredo")
	require.NoError(t, err)

	catalog := services.NewCatalogService()
	food, ok := catalog.ByID(2)
	require.True(t, ok)

	require.NoError(t, carts.Add(models.CartItem{
		FoodItem:           food,
		Quantity:           1,
		SelectedSpiceLevel: food.SpiceLevel,
		TotalPrice:         food.Price,
	}))
	require.NoError(t, favorites.Add(2))

	order, err := orders.Submit(carts.Items(), "Avenida Paulista, 1000", "")
	require.NoError(t, err)
	require.NoError(t, carts.Clear())

	revenue := orders.Revenue()
	assert.InDelta(t, 32.90, revenue.Today, 0.001)

	// Restart.
	sessions2, carts2, orders2, favorites2 := boot()

	sess, ok := sessions2.Current()
	require.True(t, ok)
	assert.Equal(t, "gata@example.com", sess.Email)
	assert.True(t, sess.IsLoggedIn)

	assert.Empty(t, carts2.Items())
	assert.Equal(t, []int64{2}, favorites2.List())

	got, ok := orders2.GetByID(order.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.InDelta(t, 32.90, got.Total, 0.001)

	// Deleted orders keep contributing to revenue after a restart too.
	require.NoError(t, orders2.Delete(order.ID))
	assert.InDelta(t, 32.90, orders2.Revenue().Today, 0.001)

	_, _, orders3, _ := boot()
	assert.Empty(t, orders3.AdminOrders())
	assert.InDelta(t, 32.90, orders3.Revenue().Today, 0.001)
}
