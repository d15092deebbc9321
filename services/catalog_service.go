package services

import (
	"strings"
	"sync"

	"github.com/elgato/elgato-app/models"
)

// CatalogService serves the menu. The catalog is seeded from the static
// food list; admin edits mutate the in-memory copy only and are lost on
// restart, which is the documented behavior of the admin foods panel.
type CatalogService struct {
	mu    sync.RWMutex
	foods []models.FoodItem
}

func NewCatalogService() *CatalogService {
	return &CatalogService{foods: models.DefaultFoods()}
}

func (cs *CatalogService) All() []models.FoodItem {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	out := make([]models.FoodItem, len(cs.foods))
	copy(out, cs.foods)
	return out
}

func (cs *CatalogService) ByID(id int64) (models.FoodItem, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	for _, f := range cs.foods {
		if f.ID == id {
			return f, true
		}
	}
	return models.FoodItem{}, false
}

func (cs *CatalogService) ByCategory(category string) []models.FoodItem {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	var out []models.FoodItem
	for _, f := range cs.foods {
		if strings.EqualFold(f.Category, category) {
			out = append(out, f)
		}
	}
	return out
}

// Search matches the query against name, description and category,
// case-insensitively. An empty query matches nothing.
func (cs *CatalogService) Search(query string) []models.FoodItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	cs.mu.RLock()
	defer cs.mu.RUnlock()

	var out []models.FoodItem
	for _, f := range cs.foods {
		if strings.Contains(strings.ToLower(f.Name), q) ||
			strings.Contains(strings.ToLower(f.Description), q) ||
			strings.Contains(strings.ToLower(f.Category), q) {
			out = append(out, f)
		}
	}
	return out
}

// FoodUpdate carries the editable fields of a catalog entry. Nil fields
// are left unchanged.
type FoodUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
	SpiceLevel  *int     `json:"spiceLevel"`
	PrepTime    *string  `json:"prepTime"`
	Discount    *float64 `json:"discount"`
}

// Update edits a catalog entry in memory.
func (cs *CatalogService) Update(id int64, upd FoodUpdate) (models.FoodItem, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	for i := range cs.foods {
		if cs.foods[i].ID != id {
			continue
		}
		f := &cs.foods[i]
		if upd.Name != nil {
			f.Name = *upd.Name
		}
		if upd.Description != nil {
			f.Description = *upd.Description
		}
		if upd.Price != nil {
			f.Price = *upd.Price
		}
		if upd.Image != nil {
			f.Image = *upd.Image
		}
		if upd.Category != nil {
			f.Category = *upd.Category
		}
		if upd.SpiceLevel != nil {
			if *upd.SpiceLevel < 0 || *upd.SpiceLevel > 5 {
				return models.FoodItem{}, ErrInvalidSpiceLevel
			}
			f.SpiceLevel = *upd.SpiceLevel
		}
		if upd.PrepTime != nil {
			f.PrepTime = *upd.PrepTime
		}
		if upd.Discount != nil {
			f.Discount = upd.Discount
		}
		return *f, nil
	}
	return models.FoodItem{}, ErrFoodNotFound
}
