package handlers

import (
	"net/http"
	"strings"

	"umrah-backend/internal/http/middleware"
	"umrah-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

var referenceRepo = repositories.ReferenceRepository{}

// GET /cities/
func GetCities(c *gin.Context) {
	cities, err := referenceRepo.ListCities()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data kota", err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

// GET /hotel-categories/
func GetHotelCategories(c *gin.Context) {
	cats, err := referenceRepo.ListHotelCategories(middleware.GetOrganizationID(c))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil kategori hotel", err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

type hotelCategoryRequest struct {
	Name string `json:"name"`
}

// POST /hotel-categories/
func CreateHotelCategory(c *gin.Context) {
	var req hotelCategoryRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		RespondError(c, http.StatusBadRequest, "nama kategori wajib diisi", nil)
		return
	}
	id, err := referenceRepo.CreateHotelCategory(middleware.GetOrganizationID(c), strings.TrimSpace(req.Name))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan kategori hotel", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "name": req.Name})
}

// DELETE /hotel-categories/:id
func DeleteHotelCategory(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := referenceRepo.DeleteHotelCategory(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "kategori hotel dihapus"})
}

// GET /airlines/
func GetAirlines(c *gin.Context) {
	airlines, err := referenceRepo.ListAirlines()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data airline", err)
		return
	}
	c.JSON(http.StatusOK, airlines)
}

// GET /organizations/
func GetOrganizations(c *gin.Context) {
	orgs, err := referenceRepo.ListOrganizations()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data organisasi", err)
		return
	}
	c.JSON(http.StatusOK, orgs)
}

// GET /riyal-rates/ — kurs terbaru organisasi, dibungkus array supaya bentuk
// respons sama dengan list endpoint lain.
func GetRiyalRates(c *gin.Context) {
	rate, err := referenceRepo.GetRiyalRate(middleware.GetOrganizationID(c))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil kurs riyal", err)
		return
	}
	if rate.ID == 0 {
		c.JSON(http.StatusOK, []any{})
		return
	}
	c.JSON(http.StatusOK, []any{rate})
}

// GET /set-visa-type/
func GetVisaTypes(c *gin.Context) {
	types, err := visaRepo.ListVisaTypes(middleware.GetOrganizationID(c))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil visa type", err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// GET /all-prices/ — agregat seluruh tabel harga yang dibutuhkan kalkulator
// dalam satu respons; target utama cache Redis.
func GetAllPrices(c *gin.Context) {
	orgID := middleware.GetOrganizationID(c)

	typeOne, err := visaRepo.ListTypeOneBrackets(orgID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil harga visa", err)
		return
	}
	typeTwo, err := visaRepo.ListTypeTwoBrackets(orgID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil harga visa type-2", err)
		return
	}
	onlyVisa, err := visaRepo.ListOnlyVisaBrackets(orgID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil harga only-visa", err)
		return
	}
	sectors, err := transportRepo.ListSectors(orgID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil harga transport", err)
		return
	}
	food, err := referenceRepo.ListFoodPrices(orgID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil harga katering", err)
		return
	}
	ziarat, err := referenceRepo.ListZiaratPrices(orgID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil harga ziarat", err)
		return
	}
	rate, err := referenceRepo.GetRiyalRate(orgID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil kurs riyal", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"umrah_visa_prices":   mapTypeOneBrackets(typeOne),
		"umrah_visa_type_two": mapTypeTwoBrackets(typeTwo),
		"only_visa_prices":    mapOnlyVisaBrackets(onlyVisa),
		"transport_prices":    sectors,
		"food_prices":         food,
		"ziarat_prices":       ziarat,
		"riyal_rate":          rate,
	})
}
