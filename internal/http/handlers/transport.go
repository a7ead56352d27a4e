package handlers

import (
	"net/http"
	"strings"

	"umrah-backend/internal/domain"
	"umrah-backend/internal/http/middleware"
	"umrah-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

var transportRepo = repositories.TransportRepository{}

// GET /transport-prices/ (alias: /small-sectors/, /transport-sector-prices/).
// Parameter visa_type menyaring sector ke reference visa type yang sama.
func GetTransportPrices(c *gin.Context) {
	sectors, err := transportRepo.ListSectors(middleware.GetOrganizationID(c))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil harga transport", err)
		return
	}

	if visaType := strings.TrimSpace(c.Query("visa_type")); visaType != "" {
		sectors = domain.FilterSectorsByReference(sectors, visaType)
	}
	c.JSON(http.StatusOK, sectors)
}

// GET /transport-prices/:id
func GetTransportPrice(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	sector, err := transportRepo.GetSector(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sector)
}
