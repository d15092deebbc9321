package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/elgato/elgato-app/events"
	"github.com/elgato/elgato-app/models"
	"github.com/elgato/elgato-app/storage"
)

// OrderService is the order ledger and the revenue aggregator. Orders
// live in two parallel lists, a user-scoped one and the admin one, kept
// value-consistent for the same id. Deleting a non-cancelled order from
// the admin list first preserves its amount in a side ledger so the
// revenue aggregates never move.
type OrderService struct {
	store    storage.Adapter
	sessions *SessionService
	hub      *events.Hub
	now      func() time.Time

	mu             sync.RWMutex
	orders         []models.Order
	adminOrders    []models.Order
	deletedRevenue []models.RevenueRecord
	nextID         int64
}

func NewOrderService(store storage.Adapter, sessions *SessionService, hub *events.Hub) (*OrderService, error) {
	s := &OrderService{
		store:    store,
		sessions: sessions,
		hub:      hub,
		now:      time.Now,
	}

	if _, err := storage.LoadJSON(store, storage.KeyUserOrders, &s.orders); err != nil {
		return nil, err
	}
	if _, err := storage.LoadJSON(store, storage.KeyAdminOrders, &s.adminOrders); err != nil {
		return nil, err
	}
	if _, err := storage.LoadJSON(store, storage.KeyDeletedRevenue, &s.deletedRevenue); err != nil {
		return nil, err
	}

	// Ids look like creation timestamps but are allocated from a
	// monotonic counter, so two checkouts in the same millisecond can
	// never collide.
	s.nextID = time.Now().UnixMilli()
	for _, o := range s.adminOrders {
		if o.ID >= s.nextID {
			s.nextID = o.ID + 1
		}
	}
	for _, o := range s.orders {
		if o.ID >= s.nextID {
			s.nextID = o.ID + 1
		}
	}
	return s, nil
}

// Submit turns the given cart lines into a new pending order. Requires
// an active session, a non-empty cart and a delivery address.
func (s *OrderService) Submit(items []models.CartItem, address, notes string) (models.Order, error) {
	sess, ok := s.sessions.Current()
	if !ok {
		return models.Order{}, ErrNotLoggedIn
	}
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}
	if strings.TrimSpace(address) == "" {
		return models.Order{}, ErrEmptyAddress
	}

	var total float64
	for _, it := range items {
		total += it.TotalPrice
	}

	lines := make([]models.CartItem, len(items))
	copy(lines, items)

	s.mu.Lock()
	order := models.Order{
		ID:      s.nextID,
		Items:   lines,
		Total:   total,
		Address: address,
		Notes:   notes,
		Status:  models.StatusPending,
		Date:    s.now(),
		UserID:  sess.Email,
	}
	s.nextID++

	s.orders = append(s.orders, order)
	s.adminOrders = append(s.adminOrders, order)
	err := s.persistOrders()
	s.mu.Unlock()
	if err != nil {
		return models.Order{}, err
	}

	s.hub.Broadcast(events.EventOrderUpdate, order)
	s.hub.Broadcast(events.EventRevenueUpdate, s.Revenue())
	return order, nil
}

// UpdateStatus overwrites the status of the order in both lists. Any
// valid status may be set; transitions are advisory, not enforced.
func (s *OrderService) UpdateStatus(orderID int64, status models.OrderStatus) (models.Order, error) {
	if !status.Valid() {
		return models.Order{}, fmt.Errorf("unknown order status %q", status)
	}

	s.mu.Lock()
	var updated models.Order
	found := false
	for i := range s.adminOrders {
		if s.adminOrders[i].ID == orderID {
			s.adminOrders[i].Status = status
			updated = s.adminOrders[i]
			found = true
		}
	}
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
		}
	}
	var err error
	if found {
		err = s.persistOrders()
	}
	s.mu.Unlock()

	if !found {
		return models.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, err
	}

	s.hub.Broadcast(events.EventOrderUpdate, updated)
	s.hub.Broadcast(events.EventRevenueUpdate, s.Revenue())
	return updated, nil
}

// Delete removes the order from both lists. If the order was not
// already cancelled its amount is recorded in the deleted-revenue
// ledger first, so historical aggregates stay stable. A cancelled order
// contributed nothing and keeps contributing nothing.
func (s *OrderService) Delete(orderID int64) error {
	s.mu.Lock()
	idx := -1
	for i, o := range s.adminOrders {
		if o.ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrOrderNotFound
	}

	doomed := s.adminOrders[idx]
	if doomed.Status != models.StatusCancelled {
		s.deletedRevenue = append(s.deletedRevenue, models.RevenueRecord{
			Date:   doomed.Date,
			Amount: doomed.Total,
		})
		if err := storage.SaveJSON(s.store, storage.KeyDeletedRevenue, s.deletedRevenue); err != nil {
			s.mu.Unlock()
			return err
		}
	}

	s.adminOrders = append(s.adminOrders[:idx], s.adminOrders[idx+1:]...)
	kept := s.orders[:0]
	for _, o := range s.orders {
		if o.ID != orderID {
			kept = append(kept, o)
		}
	}
	s.orders = kept
	err := s.persistOrders()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.hub.Broadcast(events.EventOrderDeleted, map[string]int64{"id": orderID})
	s.hub.Broadcast(events.EventRevenueUpdate, s.Revenue())
	return nil
}

// GetByID looks up an order in the user-scoped list only.
func (s *OrderService) GetByID(orderID int64) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == orderID {
			return o, true
		}
	}
	return models.Order{}, false
}

func (s *OrderService) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *OrderService) AdminOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.adminOrders))
	copy(out, s.adminOrders)
	return out
}

// Revenue aggregates three windows: today (local midnight to now), week
// (midnight seven days ago to now) and month (the 1st of the current
// month to now). Each window sums the totals of non-cancelled live
// admin orders plus the amounts preserved from deleted orders.
func (s *OrderService) Revenue() models.RevenueSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	week := today.AddDate(0, 0, -7)
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	return models.RevenueSummary{
		Today: s.revenueSince(today),
		Week:  s.revenueSince(week),
		Month: s.revenueSince(month),
	}
}

// revenueSince must be called with the lock held.
func (s *OrderService) revenueSince(start time.Time) float64 {
	var sum float64
	for _, o := range s.adminOrders {
		if o.Status != models.StatusCancelled && !o.Date.Before(start) {
			sum += o.Total
		}
	}
	for _, r := range s.deletedRevenue {
		if !r.Date.Before(start) {
			sum += r.Amount
		}
	}
	return sum
}

// persistOrders must be called with the lock held.
func (s *OrderService) persistOrders() error {
	if err := storage.SaveJSON(s.store, storage.KeyUserOrders, s.orders); err != nil {
		return err
	}
	return storage.SaveJSON(s.store, storage.KeyAdminOrders, s.adminOrders)
}
