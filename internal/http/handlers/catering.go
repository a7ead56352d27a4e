package handlers

import (
	"net/http"

	"umrah-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// GET /food-prices/
func GetFoodPrices(c *gin.Context) {
	items, err := referenceRepo.ListFoodPrices(middleware.GetOrganizationID(c))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil harga katering", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /ziarat-prices/
func GetZiaratPrices(c *gin.Context) {
	items, err := referenceRepo.ListZiaratPrices(middleware.GetOrganizationID(c))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil harga ziarat", err)
		return
	}
	c.JSON(http.StatusOK, items)
}
