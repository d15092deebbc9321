package models

// FoodItem is one entry of the menu catalog. The JSON field names mirror
// the shape the El Gato frontend reads and writes.
type FoodItem struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	SpiceLevel  int      `json:"spiceLevel"`
	PrepTime    string   `json:"prepTime"`
	Discount    *float64 `json:"discount,omitempty"` // percentage, nil when the item has no promotion
}

// HasDiscount reports whether the item carries a promotional discount.
func (f FoodItem) HasDiscount() bool {
	return f.Discount != nil
}

// DefaultFoods returns the seed catalog. Admin edits operate on an
// in-memory copy only, so the seed itself is never mutated.
func DefaultFoods() []FoodItem {
	return []FoodItem{
		{
			ID:          1,
			Name:        "Tacos de Carne",
			Description: "Deliciosos tacos de carne bovina com cebola, coentro e molho especial",
			Price:       24.90,
			Rating:      4.8,
			Image:       "https://images.unsplash.com/photo-1565299585323-38d6b0865b47?auto=format&fit=crop&w=780&q=80",
			Category:    "tacos",
			SpiceLevel:  2,
			PrepTime:    "15-20 min",
		},
		{
			ID:          2,
			Name:        "Burrito Supremo",
			Description: "Burrito recheado com carne, feijão, arroz, queijo e guacamole",
			Price:       32.90,
			Rating:      4.6,
			Image:       "https://images.unsplash.com/photo-1626700051175-6818013e1d4f?auto=format&fit=crop&w=687&q=80",
			Category:    "burritos",
			SpiceLevel:  3,
			PrepTime:    "20-25 min",
		},
		{
			ID:          3,
			Name:        "Nachos Grande",
			Description: "Nachos cobertos com queijo derretido, jalapeños, guacamole e sour cream",
			Price:       28.90,
			Rating:      4.7,
			Image:       "https://images.unsplash.com/photo-1582169296194-e4d644c48063?auto=format&fit=crop&w=1100&q=80",
			Category:    "nachos",
			SpiceLevel:  4,
			PrepTime:    "10-15 min",
		},
		{
			ID:          4,
			Name:        "Quesadilla de Frango",
			Description: "Tortilha recheada com frango desfiado, queijo derretido e pimentões",
			Price:       26.90,
			Rating:      4.5,
			Image:       "https://images.unsplash.com/photo-1618040996337-56904b7850b9?auto=format&fit=crop&w=1470&q=80",
			Category:    "quesadillas",
			SpiceLevel:  1,
			PrepTime:    "15-20 min",
		},
		{
			ID:          5,
			Name:        "Enchiladas Vegetarianas",
			Description: "Enchiladas recheadas com legumes, cobertas com molho de tomate e queijo",
			Price:       25.90,
			Rating:      4.4,
			Image:       "https://images.unsplash.com/photo-1534352956036-cd81e27dd615?auto=format&fit=crop&w=688&q=80",
			Category:    "enchiladas",
			SpiceLevel:  2,
			PrepTime:    "20-25 min",
		},
		{
			ID:          6,
			Name:        "Tacos de Camarão",
			Description: "Tacos com camarão grelhado, repolho picado e molho picante",
			Price:       34.90,
			Rating:      4.9,
			Image:       "https://images.unsplash.com/photo-1551504734-5ee1c4a1479b?auto=format&fit=crop&w=1470&q=80",
			Category:    "tacos",
			SpiceLevel:  3,
			PrepTime:    "15-20 min",
		},
		{
			ID:          7,
			Name:        "Margarita",
			Description: "Clássica bebida mexicana com tequila, limão e sal",
			Price:       18.90,
			Rating:      4.6,
			Image:       "https://images.unsplash.com/photo-1556855810-ac404aa91e85?auto=format&fit=crop&w=687&q=80",
			Category:    "bebidas",
			SpiceLevel:  0,
			PrepTime:    "5-10 min",
		},
		{
			ID:          8,
			Name:        "Burrito Vegetariano",
			Description: "Burrito com feijão, arroz, legumes grelhados e guacamole",
			Price:       28.90,
			Rating:      4.3,
			Image:       "https://images.unsplash.com/photo-1584208632869-05fa2b2a5934?auto=format&fit=crop&w=690&q=80",
			Category:    "burritos",
			SpiceLevel:  1,
			PrepTime:    "15-20 min",
		},
	}
}
