package models

import (
	"fmt"
	"time"
)

// OrderStatus is the closed set of order states. Transitions are not
// enforced: the admin panel may set any status on any live order, the
// enum only guards against unknown strings.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusPreparing  OrderStatus = "preparing"
	StatusDelivering OrderStatus = "delivering"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// AllStatuses lists every valid status, in workflow order.
func AllStatuses() []OrderStatus {
	return []OrderStatus{
		StatusPending,
		StatusConfirmed,
		StatusPreparing,
		StatusDelivering,
		StatusDelivered,
		StatusCancelled,
	}
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing,
		StatusDelivering, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status ends the workflow.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ParseOrderStatus validates a raw status string.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown order status %q", raw)
	}
	return s, nil
}

// Order is a submitted checkout. The same order value lives in both the
// user-scoped list and the admin list and must stay consistent between
// them for the same id.
type Order struct {
	ID      int64       `json:"id"`
	Items   []CartItem  `json:"items"`
	Total   float64     `json:"total"`
	Address string      `json:"address"`
	Notes   string      `json:"notes,omitempty"`
	Status  OrderStatus `json:"status"`
	Date    time.Time   `json:"date"`
	UserID  string      `json:"userId,omitempty"`
}

// RevenueRecord preserves the monetary contribution of an order that was
// deleted from the admin list, so aggregate revenue stays stable.
type RevenueRecord struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// RevenueSummary holds the three aggregation windows the admin
// dashboard shows.
type RevenueSummary struct {
	Today float64 `json:"today"`
	Week  float64 `json:"week"`
	Month float64 `json:"month"`
}
