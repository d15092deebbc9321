package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"github.com/elgato/elgato-app/services"
	"github.com/elgato/elgato-app/utils"
)

type MenuController struct {
	Catalog *services.CatalogService
	BaseURL string
}

func NewMenuController(catalog *services.CatalogService, baseURL string) *MenuController {
	return &MenuController{Catalog: catalog, BaseURL: baseURL}
}

// GetAllMenus -> the whole catalog.
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of menus", mc.Catalog.All())
}

// GetMenuByID -> one catalog entry.
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("food_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid food id"))
		return
	}

	food, ok := mc.Catalog.ByID(id)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, services.ErrFoodNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu detail", food)
}

// GetMenuByCategory -> catalog entries for ?category=.
func (mc *MenuController) GetMenuByCategory(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("category is required"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menus by category", mc.Catalog.ByCategory(category))
}

// SearchMenus -> free-text search over name, description and category.
func (mc *MenuController) SearchMenus(c *gin.Context) {
	query := c.Query("q")
	results := mc.Catalog.Search(query)
	utils.RespondJSON(c, http.StatusOK, "Search results", gin.H{
		"query":   query,
		"results": results,
	})
}

// GetMenuQRCode -> PNG QR code with the deep link to the food page.
func (mc *MenuController) GetMenuQRCode(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("food_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid food id"))
		return
	}

	if _, ok := mc.Catalog.ByID(id); !ok {
		utils.RespondError(c, http.StatusNotFound, services.ErrFoodNotFound)
		return
	}

	png, err := qrcode.Encode(fmt.Sprintf("%s/food/%d", mc.BaseURL, id), qrcode.Medium, 256)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
