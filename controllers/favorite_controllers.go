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

type FavoriteController struct {
	Favorites *services.FavoriteService
	Catalog   *services.CatalogService
}

func NewFavoriteController(favorites *services.FavoriteService, catalog *services.CatalogService) *FavoriteController {
	return &FavoriteController{Favorites: favorites, Catalog: catalog}
}

// GetFavorites -> the favorited catalog entries.
func (fc *FavoriteController) GetFavorites(c *gin.Context) {
	var foods []models.FoodItem
	for _, id := range fc.Favorites.List() {
		if food, ok := fc.Catalog.ByID(id); ok {
			foods = append(foods, food)
		}
	}
	utils.RespondJSON(c, http.StatusOK, "List of favorites", foods)
}

// AddFavorite -> mark a food as favorite.
func (fc *FavoriteController) AddFavorite(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("food_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid food id"))
		return
	}

	if _, ok := fc.Catalog.ByID(id); !ok {
		utils.RespondError(c, http.StatusNotFound, services.ErrFoodNotFound)
		return
	}

	if err := fc.Favorites.Add(id); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Added to favorites", fc.Favorites.List())
}

// RemoveFavorite -> unmark a food.
func (fc *FavoriteController) RemoveFavorite(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("food_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid food id"))
		return
	}

	if err := fc.Favorites.Remove(id); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Removed from favorites", fc.Favorites.List())
}
