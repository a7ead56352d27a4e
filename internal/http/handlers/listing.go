package handlers

import (
	"net/http"

	"umrah-backend/internal/http/middleware"
	"umrah-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

var listingRepo = repositories.ListingRepository{}

// ListTableHandler melayani endpoint referensi baca-saja yang isinya cukup
// "apa adanya dari tabel": bookings, tickets, pax-movements, dan kawan-kawan.
func ListTableHandler(table string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := listingRepo.ListTable(table, middleware.GetOrganizationID(c))
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}
