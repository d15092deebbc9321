package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elgato/elgato-app/storage"
)

func newTestCart(t *testing.T) (*CartService, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	sessions := newTestSessions(t, store)
	loginAsUser(t, sessions)

	cart, err := NewCartService(store, sessions)
	if err != nil {
		t.Fatal(err)
	}
	return cart, store
}

func TestAddToCartMergesSameSpiceLevel(t *testing.T) {
	cart, _ := newTestCart(t)

	assert.NoError(t, cart.Add(testCartLine(1, 2, 1, 24.90)))
	assert.NoError(t, cart.Add(testCartLine(1, 2, 2, 24.90)))

	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.InDelta(t, 74.70, items[0].TotalPrice, 0.001)
}

func TestAddToCartKeepsSpiceLevelsSeparate(t *testing.T) {
	cart, _ := newTestCart(t)

	assert.NoError(t, cart.Add(testCartLine(1, 2, 1, 24.90)))
	assert.NoError(t, cart.Add(testCartLine(1, 4, 1, 24.90)))

	assert.Len(t, cart.Items(), 2)
	assert.Equal(t, 2, cart.Count())
}

func TestAddToCartRequiresSession(t *testing.T) {
	store := storage.NewMemoryStore()
	sessions := newTestSessions(t, store)

	cart, err := NewCartService(store, sessions)
	assert.NoError(t, err)

	err = cart.Add(testCartLine(1, 2, 1, 24.90))
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Empty(t, cart.Items())

	// No state may be persisted either.
	_, ok, err := store.Load(storage.KeyCart)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestAddToCartRejectsBadInput(t *testing.T) {
	cart, _ := newTestCart(t)

	assert.ErrorIs(t, cart.Add(testCartLine(1, 2, 0, 24.90)), ErrInvalidQuantity)
	assert.ErrorIs(t, cart.Add(testCartLine(1, 6, 1, 24.90)), ErrInvalidSpiceLevel)
	assert.Empty(t, cart.Items())
}

func TestCartTotalAndCountAreSums(t *testing.T) {
	cart, _ := newTestCart(t)

	assert.NoError(t, cart.Add(testCartLine(1, 2, 2, 24.90)))
	assert.NoError(t, cart.Add(testCartLine(2, 3, 1, 32.90)))
	assert.NoError(t, cart.Add(testCartLine(3, 4, 3, 28.90)))

	var wantTotal float64
	wantCount := 0
	for _, it := range cart.Items() {
		wantTotal += it.TotalPrice
		wantCount += it.Quantity
	}
	assert.InDelta(t, wantTotal, cart.Total(), 0.001)
	assert.Equal(t, wantCount, cart.Count())
	assert.InDelta(t, 2*24.90+32.90+3*28.90, cart.Total(), 0.001)
}

func TestUpdateQuantityUsesLineUnitPrice(t *testing.T) {
	cart, _ := newTestCart(t)

	assert.NoError(t, cart.Add(testCartLine(1, 2, 1, 24.90)))
	assert.NoError(t, cart.UpdateQuantity(1, 4))

	items := cart.Items()
	assert.Equal(t, 4, items[0].Quantity)
	assert.InDelta(t, 99.60, items[0].TotalPrice, 0.001)
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	cart, _ := newTestCart(t)

	assert.NoError(t, cart.Add(testCartLine(1, 2, 1, 24.90)))
	assert.NoError(t, cart.UpdateQuantity(1, 0))
	assert.Empty(t, cart.Items())
}

func TestRemoveDropsAllSpiceVariants(t *testing.T) {
	cart, _ := newTestCart(t)

	assert.NoError(t, cart.Add(testCartLine(1, 1, 1, 24.90)))
	assert.NoError(t, cart.Add(testCartLine(1, 3, 1, 24.90)))
	assert.NoError(t, cart.Add(testCartLine(2, 0, 1, 18.90)))

	assert.NoError(t, cart.Remove(1))

	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ID)
}

func TestClearCartErasesPersistedState(t *testing.T) {
	cart, store := newTestCart(t)

	assert.NoError(t, cart.Add(testCartLine(1, 2, 2, 24.90)))
	assert.NoError(t, cart.Clear())

	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.Total())
	assert.Zero(t, cart.Count())

	_, ok, err := store.Load(storage.KeyCart)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestCartHydratesFromStore(t *testing.T) {
	cart, store := newTestCart(t)
	assert.NoError(t, cart.Add(testCartLine(1, 2, 2, 24.90)))

	sessions := newTestSessions(t, store)
	reloaded, err := NewCartService(store, sessions)
	assert.NoError(t, err)

	assert.Len(t, reloaded.Items(), 1)
	assert.InDelta(t, 49.80, reloaded.Total(), 0.001)
}
