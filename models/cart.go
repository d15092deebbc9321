package models

// CartItem is one cart line. Lines are keyed by (food id, selected spice
// level); the same food at a different spice level is a separate line.
type CartItem struct {
	FoodItem
	Quantity           int     `json:"quantity"`
	SelectedSpiceLevel int     `json:"selectedSpiceLevel"`
	TotalPrice         float64 `json:"totalPrice"`
}

// CartKey identifies a cart line.
type CartKey struct {
	FoodID     int64
	SpiceLevel int
}

func (ci CartItem) Key() CartKey {
	return CartKey{FoodID: ci.ID, SpiceLevel: ci.SelectedSpiceLevel}
}
