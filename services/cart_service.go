package services

import (
	"sync"

	"github.com/elgato/elgato-app/models"
	"github.com/elgato/elgato-app/storage"
)

// CartService holds the current cart in memory and mirrors every
// mutation to the persistence adapter under the "cart" key.
type CartService struct {
	store    storage.Adapter
	sessions *SessionService

	mu    sync.RWMutex
	items []models.CartItem
}

func NewCartService(store storage.Adapter, sessions *SessionService) (*CartService, error) {
	cs := &CartService{store: store, sessions: sessions}
	if _, err := storage.LoadJSON(store, storage.KeyCart, &cs.items); err != nil {
		return nil, err
	}
	return cs, nil
}

// Add puts an item in the cart. A line with the same food id and spice
// level already present absorbs the incoming quantity; otherwise a new
// line is appended. Requires an active session.
func (cs *CartService) Add(item models.CartItem) error {
	if !cs.sessions.LoggedIn() {
		return ErrNotLoggedIn
	}
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if item.SelectedSpiceLevel < 0 || item.SelectedSpiceLevel > 5 {
		return ErrInvalidSpiceLevel
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	for i := range cs.items {
		if cs.items[i].Key() == item.Key() {
			cs.items[i].Quantity += item.Quantity
			cs.items[i].TotalPrice = float64(cs.items[i].Quantity) * cs.items[i].Price
			return cs.persist()
		}
	}

	item.TotalPrice = float64(item.Quantity) * item.Price
	cs.items = append(cs.items, item)
	return cs.persist()
}

// UpdateQuantity sets the quantity of every line with the given food id,
// recomputing each line's total from its own unit price. A quantity of
// zero or less removes the lines.
func (cs *CartService) UpdateQuantity(foodID int64, quantity int) error {
	if quantity <= 0 {
		return cs.Remove(foodID)
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	found := false
	for i := range cs.items {
		if cs.items[i].ID == foodID {
			cs.items[i].Quantity = quantity
			cs.items[i].TotalPrice = float64(quantity) * cs.items[i].Price
			found = true
		}
	}
	if !found {
		return ErrFoodNotFound
	}
	return cs.persist()
}

// Remove drops every line with the given food id, regardless of spice
// level.
func (cs *CartService) Remove(foodID int64) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	kept := cs.items[:0]
	removed := false
	for _, it := range cs.items {
		if it.ID == foodID {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if !removed {
		return ErrFoodNotFound
	}
	cs.items = kept
	return cs.persist()
}

// Clear empties the cart and erases its persisted state.
func (cs *CartService) Clear() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.items = nil
	return cs.store.Delete(storage.KeyCart)
}

func (cs *CartService) Items() []models.CartItem {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	out := make([]models.CartItem, len(cs.items))
	copy(out, cs.items)
	return out
}

// Total sums the line totals of the cart.
func (cs *CartService) Total() float64 {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	var total float64
	for _, it := range cs.items {
		total += it.TotalPrice
	}
	return total
}

// Count sums the quantities of the cart.
func (cs *CartService) Count() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	var count int
	for _, it := range cs.items {
		count += it.Quantity
	}
	return count
}

// persist must be called with the lock held.
func (cs *CartService) persist() error {
	return storage.SaveJSON(cs.store, storage.KeyCart, cs.items)
}
