package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elgato/elgato-app/services"
	"github.com/elgato/elgato-app/utils"
)

type OrderController struct {
	Orders *services.OrderService
	Carts  *services.CartService
}

func NewOrderController(orders *services.OrderService, carts *services.CartService) *OrderController {
	return &OrderController{Orders: orders, Carts: carts}
}

// Checkout -> turn the cart into a new pending order and clear the
// cart. Requires a logged-in session, a non-empty cart and an address.
func (oc *OrderController) Checkout(c *gin.Context) {
	var req struct {
		Address string `json:"address"`
		Notes   string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.Submit(oc.Carts.Items(), req.Address, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotLoggedIn):
			utils.RespondError(c, http.StatusUnauthorized, err)
		case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrEmptyAddress):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	if err := oc.Carts.Clear(); err != nil {
		utils.ErrorLogger.Printf("clearing cart after checkout: %v", err)
	}

	utils.RespondJSON(c, http.StatusCreated, "Order submitted", order)
}

// GetMyOrders -> the user-scoped order list.
func (oc *OrderController) GetMyOrders(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of orders", oc.Orders.Orders())
}

// GetOrderByID -> one order from the user-scoped list.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	order, ok := oc.Orders.GetByID(id)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, services.ErrOrderNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}
