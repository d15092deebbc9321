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

type AdminController struct {
	Orders  *services.OrderService
	Catalog *services.CatalogService
}

func NewAdminController(orders *services.OrderService, catalog *services.CatalogService) *AdminController {
	return &AdminController{Orders: orders, Catalog: catalog}
}

// GetAllOrders -> the admin order list.
func (ac *AdminController) GetAllOrders(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of orders", ac.Orders.AdminOrders())
}

// UpdateOrderStatus -> overwrite the status of an order in both lists.
func (ac *AdminController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	status, err := models.ParseOrderStatus(req.Status)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := ac.Orders.UpdateStatus(id, status)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// DeleteOrder -> remove an order, preserving its revenue contribution
// unless it was already cancelled.
func (ac *AdminController) DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	if err := ac.Orders.Delete(id); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": id})
}

// GetRevenue -> today/week/month aggregates.
func (ac *AdminController) GetRevenue(c *gin.Context) {
	revenue := ac.Orders.Revenue()
	utils.RespondJSON(c, http.StatusOK, "Revenue data", gin.H{
		"revenue": revenue,
		"formatted": gin.H{
			"today": utils.FormatCurrency(revenue.Today),
			"week":  utils.FormatCurrency(revenue.Week),
			"month": utils.FormatCurrency(revenue.Month),
		},
	})
}

// GetAllFoods -> the catalog as the admin panel sees it.
func (ac *AdminController) GetAllFoods(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of foods", ac.Catalog.All())
}

// UpdateFood -> edit a catalog entry. Edits live in memory only and are
// lost on restart.
func (ac *AdminController) UpdateFood(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("food_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid food id"))
		return
	}

	var upd services.FoodUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	food, err := ac.Catalog.Update(id, upd)
	if err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Food updated", food)
}
