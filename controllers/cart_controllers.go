package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elgato/elgato-app/models"
	"github.com/elgato/elgato-app/services"
	"github.com/elgato/elgato-app/utils"
)

type CartController struct {
	Carts   *services.CartService
	Catalog *services.CatalogService
}

func NewCartController(carts *services.CartService, catalog *services.CatalogService) *CartController {
	return &CartController{Carts: carts, Catalog: catalog}
}

// GetCart -> current lines plus total and count.
func (cc *CartController) GetCart(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Cart contents", gin.H{
		"items": cc.Carts.Items(),
		"total": cc.Carts.Total(),
		"count": cc.Carts.Count(),
	})
}

// AddItem -> put a catalog item in the cart at the chosen spice level.
func (cc *CartController) AddItem(c *gin.Context) {
	var req struct {
		FoodID     int64 `json:"food_id" binding:"required"`
		Quantity   int   `json:"quantity"`
		SpiceLevel int   `json:"spice_level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	food, ok := cc.Catalog.ByID(req.FoodID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, services.ErrFoodNotFound)
		return
	}

	item := models.CartItem{
		FoodItem:           food,
		Quantity:           req.Quantity,
		SelectedSpiceLevel: req.SpiceLevel,
	}
	if err := cc.Carts.Add(item); err != nil {
		respondCartError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item added to cart", gin.H{
		"items": cc.Carts.Items(),
		"total": cc.Carts.Total(),
	})
}

// UpdateItem -> set the quantity of the lines with the given food id.
func (cc *CartController) UpdateItem(c *gin.Context) {
	foodID, err := strconv.ParseInt(c.Param("food_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid food id"))
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := cc.Carts.UpdateQuantity(foodID, req.Quantity); err != nil {
		respondCartError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cart updated", gin.H{
		"items": cc.Carts.Items(),
		"total": cc.Carts.Total(),
	})
}

// RemoveItem -> drop every line with the given food id.
func (cc *CartController) RemoveItem(c *gin.Context) {
	foodID, err := strconv.ParseInt(c.Param("food_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid food id"))
		return
	}

	if err := cc.Carts.Remove(foodID); err != nil {
		respondCartError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item removed from cart", gin.H{
		"items": cc.Carts.Items(),
		"total": cc.Carts.Total(),
	})
}

// ClearCart -> empty the cart and its persisted state.
func (cc *CartController) ClearCart(c *gin.Context) {
	if err := cc.Carts.Clear(); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", nil)
}

func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotLoggedIn):
		utils.RespondError(c, http.StatusUnauthorized, err)
	case errors.Is(err, services.ErrFoodNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrInvalidQuantity), errors.Is(err, services.ErrInvalidSpiceLevel):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
