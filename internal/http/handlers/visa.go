package handlers

import (
	"net/http"

	"umrah-backend/internal/domain"
	"umrah-backend/internal/http/middleware"
	"umrah-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

var visaRepo = repositories.VisaRepository{}

// Bentuk respons mengikuti penamaan kolom API lama (snake_case).
type typeOneBracketResponse struct {
	ID            int64   `json:"id"`
	VisaType      string  `json:"visa_type"`
	Category      string  `json:"category"`
	MaximumNights int     `json:"maximum_nights"`
	AdultPrice    float64 `json:"adult_price"`
	ChildPrice    float64 `json:"child_price"`
	InfantPrice   float64 `json:"infant_price"`
}

type typeTwoBracketResponse struct {
	ID                 int64   `json:"id"`
	PersonFrom         int     `json:"person_from"`
	PersonTo           int     `json:"person_to"`
	AdultPrice         float64 `json:"adult_price"`
	ChildPrice         float64 `json:"child_price"`
	InfantPrice        float64 `json:"infant_price"`
	AdultSellingPrice  float64 `json:"adult_selling_price"`
	ChildSellingPrice  float64 `json:"child_selling_price"`
	InfantSellingPrice float64 `json:"infant_selling_price"`
	IsTransport        bool    `json:"is_transport"`
}

type onlyVisaBracketResponse struct {
	ID          int64                    `json:"id"`
	AirportName string                   `json:"airport_name"`
	MinDays     int                      `json:"min_days"`
	MaxDays     int                      `json:"max_days"`
	Type        string                   `json:"type"`
	VisaOption  string                   `json:"visa_option"`
	AdultPrice  float64                  `json:"adult_price"`
	ChildPrice  float64                  `json:"child_price"`
	InfantPrice float64                  `json:"infant_price"`
	Sectors     []domain.TransportSector `json:"sectors"`
}

func mapTypeOneBrackets(in []domain.VisaBracketTypeOne) []typeOneBracketResponse {
	out := make([]typeOneBracketResponse, 0, len(in))
	for _, b := range in {
		out = append(out, typeOneBracketResponse{
			ID: b.ID, VisaType: b.VisaType, Category: b.Category,
			MaximumNights: b.MaximumNights,
			AdultPrice:    b.AdultPrice, ChildPrice: b.ChildPrice, InfantPrice: b.InfantPrice,
		})
	}
	return out
}

func mapTypeTwoBrackets(in []domain.VisaBracketTypeTwo) []typeTwoBracketResponse {
	out := make([]typeTwoBracketResponse, 0, len(in))
	for _, b := range in {
		out = append(out, typeTwoBracketResponse{
			ID: b.ID, PersonFrom: b.PersonFrom, PersonTo: b.PersonTo,
			AdultPrice: b.AdultPrice, ChildPrice: b.ChildPrice, InfantPrice: b.InfantPrice,
			AdultSellingPrice: b.AdultSellingPrice, ChildSellingPrice: b.ChildSellingPrice,
			InfantSellingPrice: b.InfantSellingPrice, IsTransport: b.IsTransport,
		})
	}
	return out
}

func mapOnlyVisaBrackets(in []domain.OnlyVisaBracket) []onlyVisaBracketResponse {
	out := make([]onlyVisaBracketResponse, 0, len(in))
	for _, b := range in {
		sectors := b.Sectors
		if sectors == nil {
			sectors = []domain.TransportSector{}
		}
		out = append(out, onlyVisaBracketResponse{
			ID: b.ID, AirportName: b.AirportName,
			MinDays: b.MinDays, MaxDays: b.MaxDays,
			Type: b.Type, VisaOption: b.VisaOption,
			AdultPrice: b.AdultPrice, ChildPrice: b.ChildPrice, InfantPrice: b.InfantPrice,
			Sectors: sectors,
		})
	}
	return out
}

// GET /umrah-visa-prices/
func GetUmrahVisaPrices(c *gin.Context) {
	brackets, err := visaRepo.ListTypeOneBrackets(middleware.GetOrganizationID(c))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil harga visa", err)
		return
	}
	c.JSON(http.StatusOK, mapTypeOneBrackets(brackets))
}

// GET /umrah-visa-type-two/
func GetUmrahVisaTypeTwo(c *gin.Context) {
	brackets, err := visaRepo.ListTypeTwoBrackets(middleware.GetOrganizationID(c))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil harga visa type-2", err)
		return
	}
	c.JSON(http.StatusOK, mapTypeTwoBrackets(brackets))
}

// GET /only-visa-prices/
func GetOnlyVisaPrices(c *gin.Context) {
	brackets, err := visaRepo.ListOnlyVisaBrackets(middleware.GetOrganizationID(c))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil harga only-visa", err)
		return
	}
	c.JSON(http.StatusOK, mapOnlyVisaBrackets(brackets))
}

// GET /booking-options/
func GetBookingOptions(c *gin.Context) {
	c.JSON(http.StatusOK, domain.OptionCatalog())
}
