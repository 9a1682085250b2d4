package routes

import (
	"net/http"
	"time"

	"ezero/handlers"
	"ezero/middleware"
	"ezero/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the booking workflow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.Booking.StartSession)
		bookingGroup.GET("/session/:sessionID", hb.Booking.GetSession)
		bookingGroup.PUT("/session/:sessionID", hb.Booking.Advance)
		bookingGroup.POST("/session/:sessionID/retreat", hb.Booking.Retreat)
		bookingGroup.POST("/session/:sessionID/images", hb.Booking.AttachImage)
		bookingGroup.POST("/session/:sessionID/submit", hb.Booking.Submit)
		bookingGroup.POST("/session/:sessionID/reset", hb.Booking.ResetSession)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.CancelSession)
		bookingGroup.GET("/prefill-address", hb.Booking.PrefillAddress)
	}
}

// RegisterPickupRoutes sets up the endpoints for the persisted booking history.
func RegisterPickupRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	pickupGroup := r.Group("/api/pickups")
	{
		pickupGroup.GET("", hb.Records.ListPickups)
		pickupGroup.GET("/:id", hb.Records.GetPickup)
		pickupGroup.POST("/:id/cancel", hb.Records.CancelPickup)
		pickupGroup.GET("/:id/receipt", hb.Records.DownloadReceipt)
	}
}

// RegisterCatalogRoutes sets up the item/service/slot schedules and the
// stateless quote endpoint.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	catalogGroup := r.Group("/api/catalog")
	{
		catalogGroup.GET("/categories", hb.Catalog.GetCategories)
		catalogGroup.GET("/services", hb.Catalog.GetServices)
		catalogGroup.GET("/timeslots", hb.Catalog.GetTimeSlots)
		catalogGroup.POST("/quote", hb.Catalog.Quote)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/admin/login", hb.Admin.Login)

	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/pickups", hb.Admin.ListAllPickups)
		adminGroup.PATCH("/pickups/:id/status", hb.Admin.UpdateStatus)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm Ezero",
			"detail":  utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterPickupRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
