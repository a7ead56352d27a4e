package api

import (
	"log"
	stdhttp "net/http"

	intconfig "umrah-backend/internal/config"
	h "umrah-backend/internal/http/handlers"
	"umrah-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// NewRouter merakit seluruh route. Setiap resource dimount dua kali: di bawah
// /api dan di path telanjang, karena deployment frontend lama memanggil
// keduanya tanpa prefix yang konsisten.
func NewRouter(env intconfig.Env, rdb *redis.Client) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(),
		middleware.CORS(), middleware.OrganizationContext(), middleware.AuthOptional(env.JWTSecret))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	cache := middleware.CacheGET(rdb, env.CacheTTL)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		mountResources(api, cache)
	}

	// legacy mounts tanpa prefix /api
	mountResources(&r.RouterGroup, cache)

	return r
}

func mountResources(g *gin.RouterGroup, cache gin.HandlerFunc) {
	mountReference(g, cache)
	mountCalculator(g)
	mountHotels(g)
	mountPackages(g)
	mountListings(g)
}

func mountReference(g *gin.RouterGroup, cache gin.HandlerFunc) {
	g.GET("/cities/", cache, h.GetCities)
	g.GET("/airlines/", cache, h.GetAirlines)
	g.GET("/organizations/", cache, h.GetOrganizations)
	g.GET("/riyal-rates/", cache, h.GetRiyalRates)
	g.GET("/set-visa-type/", cache, h.GetVisaTypes)
	g.GET("/booking-options/", h.GetBookingOptions)

	g.GET("/hotel-categories/", h.GetHotelCategories)
	g.POST("/hotel-categories/", h.CreateHotelCategory)
	g.DELETE("/hotel-categories/:id", h.DeleteHotelCategory)

	g.GET("/umrah-visa-prices/", cache, h.GetUmrahVisaPrices)
	g.GET("/umrah-visa-type-two/", cache, h.GetUmrahVisaTypeTwo)
	g.GET("/only-visa-prices/", cache, h.GetOnlyVisaPrices)
	g.GET("/food-prices/", cache, h.GetFoodPrices)
	g.GET("/ziarat-prices/", cache, h.GetZiaratPrices)
	g.GET("/all-prices/", cache, h.GetAllPrices)

	g.GET("/transport-prices/", cache, h.GetTransportPrices)
	g.GET("/transport-prices/:id", h.GetTransportPrice)
	// alias warisan: dua nama lama untuk tabel sector yang sama
	g.GET("/small-sectors/", cache, h.GetTransportPrices)
	g.GET("/transport-sector-prices/", cache, h.GetTransportPrices)
}

func mountCalculator(g *gin.RouterGroup) {
	calc := g.Group("/calculator")
	calc.POST("/quote", h.QuotePackage)
	calc.POST("/transport-options", h.GetTransportOptions)
}

func mountHotels(g *gin.RouterGroup) {
	g.GET("/hotels/", h.GetHotels)
	g.GET("/hotels/:id", h.GetHotel)
	g.POST("/hotels/", h.CreateHotel)
	g.PUT("/hotels/:id", h.UpdateHotel)
	g.DELETE("/hotels/:id", h.DeleteHotel)

	g.GET("/hotel-rooms/", h.GetHotelRooms)
	g.POST("/hotel-rooms/", h.CreateHotelRoom)
	g.PUT("/hotel-rooms/:id", h.UpdateHotelRoom)
	g.DELETE("/hotel-rooms/:id", h.DeleteHotelRoom)

	g.GET("/hotel-prices/", h.GetHotelPrices)
	g.POST("/hotel-prices/", h.CreateHotelPrice)
	g.PUT("/hotel-prices/:id", h.UpdateHotelPrice)
	g.DELETE("/hotel-prices/:id", h.DeleteHotelPrice)

	g.GET("/hotel-contact-details/", h.GetHotelContacts)
	g.GET("/hotel-photos/", h.GetHotelPhotos)
}

func mountPackages(g *gin.RouterGroup) {
	g.GET("/custom-umrah-packages/", h.GetCustomPackages)
	g.GET("/custom-umrah-packages/:id", h.GetCustomPackage)
	g.POST("/custom-umrah-packages/", h.CreateCustomPackage)
	g.PUT("/custom-umrah-packages/:id", h.UpdateCustomPackage)
	g.DELETE("/custom-umrah-packages/:id", h.DeleteCustomPackage)
	g.GET("/custom-umrah-packages/:id/quotation", h.GetPackageQuotationPDF)
}

func mountListings(g *gin.RouterGroup) {
	g.GET("/bookings/", h.ListTableHandler("bookings"))
	g.GET("/tickets/", h.ListTableHandler("tickets"))
	g.GET("/packages/", h.ListTableHandler("packages"))
	g.GET("/umrah-packages/", h.ListTableHandler("umrah_packages"))
	g.GET("/umrah-package-hotel-details/", h.ListTableHandler("umrah_package_hotel_details"))
	g.GET("/custom-umrah-package-hotel-details/", h.ListTableHandler("custom_umrah_package_hotel_details"))
	g.GET("/operations/daily/hotels/", h.ListTableHandler("daily_hotel_operations"))
	g.GET("/pax-movements/", h.ListTableHandler("pax_movements"))
	g.GET("/hotel-outsourcing/", h.ListTableHandler("hotel_outsourcing"))
}
