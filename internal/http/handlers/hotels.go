package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"umrah-backend/internal/domain"
	"umrah-backend/internal/domain/models"
	"umrah-backend/internal/http/middleware"
	"umrah-backend/internal/repositories"
	"umrah-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
)

var (
	hotelRepo  = repositories.HotelRepository{}
	hotelProbe = repositories.DependencyProbe{}
)

// mysqlFKBlocked: baris masih direferensikan FK lain (ER_ROW_IS_REFERENCED_2).
const mysqlFKBlocked = 1451

type hotelPayload struct {
	models.Hotel
	Prices   []models.HotelPrice   `json:"prices"`
	Contacts []models.HotelContact `json:"contact_details"`
	Photos   []models.HotelPhoto   `json:"photos"`
}

// GET /hotels/
func GetHotels(c *gin.Context) {
	q := utils.FirstNonEmpty(c.Query("search"), c.Query("q"))
	hotels, err := hotelRepo.List(middleware.GetOrganizationID(c), q)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data hotel", err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// GET /hotels/:id — hotel plus seluruh detail nested untuk form edit.
func GetHotel(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	hotel, err := hotelRepo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	rooms, _ := hotelRepo.ListRooms(id)
	prices, _ := hotelRepo.ListPrices(id)
	contacts, _ := hotelRepo.ListContacts(id)
	photos, _ := hotelRepo.ListPhotos(id)

	c.JSON(http.StatusOK, gin.H{
		"id":              hotel.ID,
		"organization":    hotel.OrganizationID,
		"name":            hotel.Name,
		"city":            hotel.City,
		"category":        hotel.CategoryID,
		"address":         hotel.Address,
		"phone":           hotel.Phone,
		"email":           hotel.Email,
		"distance":        hotel.Distance,
		"rooms":           rooms,
		"prices":          prices,
		"contact_details": contacts,
		"photos":          photos,
	})
}

// POST /hotels/ — menerima JSON biasa maupun multipart form-data dengan
// field prices/contact_details/photos sebagai JSON string (bentuk yang
// dikirim form upload lama).
func CreateHotel(c *gin.Context) {
	var payload hotelPayload
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if !bindHotelMultipart(c, &payload) {
			return
		}
	} else if !BindJSONOrError(c, &payload) {
		return
	}

	if strings.TrimSpace(payload.Name) == "" {
		RespondError(c, http.StatusBadRequest, "nama hotel wajib diisi", nil)
		return
	}
	if payload.OrganizationID == 0 {
		payload.OrganizationID = middleware.GetOrganizationID(c)
	}

	id, err := hotelRepo.Create(models.HotelCreateInput{
		Hotel:    payload.Hotel,
		Prices:   payload.Prices,
		Contacts: payload.Contacts,
		Photos:   payload.Photos,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan hotel", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "hotel tersimpan"})
}

func bindHotelMultipart(c *gin.Context, payload *hotelPayload) bool {
	payload.Name = c.PostForm("name")
	payload.City = c.PostForm("city")
	payload.Address = c.PostForm("address")
	payload.Phone = c.PostForm("phone")
	payload.Email = c.PostForm("email")
	payload.Distance = c.PostForm("distance")
	payload.OrganizationID = parseFormID(c, "organization")
	payload.CategoryID = parseFormID(c, "category")

	for field, dst := range map[string]any{
		"prices":          &payload.Prices,
		"contact_details": &payload.Contacts,
		"photos":          &payload.Photos,
	} {
		raw := strings.TrimSpace(c.PostForm(field))
		if raw == "" {
			continue
		}
		if err := json.Unmarshal([]byte(raw), dst); err != nil {
			RespondError(c, http.StatusBadRequest, "field "+field+" bukan JSON valid", err)
			return false
		}
	}
	return true
}

func parseFormID(c *gin.Context, field string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(c.PostForm(field)), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// PUT /hotels/:id
func UpdateHotel(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var payload hotelPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	payload.ID = id
	if err := hotelRepo.Update(payload.Hotel); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "hotel diperbarui"})
}

// DELETE /hotels/:id — saat delete terblokir FK (MySQL 1451), seluruh tabel
// dependen diprobe paralel dan hasilnya dikembalikan sebagai 409 "blocked by".
func DeleteHotel(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}

	err := hotelRepo.Delete(id)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "hotel dihapus"})
		return
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlFKBlocked {
		deps := hotelProbe.FindHotelDependents(id)
		if len(deps) == 0 {
			deps = repositories.ParseProtectedRefs(myErr.Message)
		}
		RespondDomainError(c, domain.ConflictError{
			Resource:   "hotel",
			Msg:        "hotel masih dipakai data lain",
			Dependents: deps,
			Err:        err,
		})
		return
	}

	RespondDomainError(c, err)
}

// GET /hotel-rooms/
func GetHotelRooms(c *gin.Context) {
	rooms, err := hotelRepo.ListRooms(queryID(c, "hotel"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data kamar", err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// POST /hotel-rooms/
func CreateHotelRoom(c *gin.Context) {
	var room models.HotelRoom
	if !BindJSONOrError(c, &room) {
		return
	}
	if room.HotelID == 0 {
		RespondError(c, http.StatusBadRequest, "hotel wajib diisi", nil)
		return
	}
	id, err := hotelRepo.CreateRoom(room)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan kamar", err)
		return
	}
	room.ID = id
	c.JSON(http.StatusCreated, room)
}

// PUT /hotel-rooms/:id
func UpdateHotelRoom(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var room models.HotelRoom
	if !BindJSONOrError(c, &room) {
		return
	}
	room.ID = id
	if err := hotelRepo.UpdateRoom(room); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// DELETE /hotel-rooms/:id
func DeleteHotelRoom(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := hotelRepo.DeleteRoom(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "kamar dihapus"})
}

// GET /hotel-prices/
func GetHotelPrices(c *gin.Context) {
	prices, err := hotelRepo.ListPrices(queryID(c, "hotel"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil harga hotel", err)
		return
	}
	c.JSON(http.StatusOK, prices)
}

// POST /hotel-prices/
func CreateHotelPrice(c *gin.Context) {
	var price models.HotelPrice
	if !BindJSONOrError(c, &price) {
		return
	}
	if price.HotelID == 0 {
		RespondError(c, http.StatusBadRequest, "hotel wajib diisi", nil)
		return
	}
	id, err := hotelRepo.CreatePrice(price)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan harga hotel", err)
		return
	}
	price.ID = id
	c.JSON(http.StatusCreated, price)
}

// PUT /hotel-prices/:id
func UpdateHotelPrice(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var price models.HotelPrice
	if !BindJSONOrError(c, &price) {
		return
	}
	price.ID = id
	if err := hotelRepo.UpdatePrice(price); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, price)
}

// DELETE /hotel-prices/:id
func DeleteHotelPrice(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := hotelRepo.DeletePrice(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "harga hotel dihapus"})
}

// GET /hotel-contact-details/
func GetHotelContacts(c *gin.Context) {
	contacts, err := hotelRepo.ListContacts(queryID(c, "hotel"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil kontak hotel", err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// GET /hotel-photos/
func GetHotelPhotos(c *gin.Context) {
	photos, err := hotelRepo.ListPhotos(queryID(c, "hotel"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil foto hotel", err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

func queryID(c *gin.Context, name string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Query(name)), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
