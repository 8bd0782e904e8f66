package routes

import (
	"net/http"
	"time"

	"staybook/config"
	"staybook/handlers"
	"staybook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers wired in main.
type HandlerBundle struct {
	Hotel   *handlers.HotelHandler
	MyHotel *handlers.MyHotelHandler
	Booking *handlers.BookingHandler
	User    *handlers.UserHandler
}

// RegisterHotelRoutes registers the public hotel endpoints and the
// authenticated booking endpoints that hang off a hotel.
func RegisterHotelRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/hotels")
	{
		api.GET("/search", hb.Hotel.SearchHotels)
		api.GET("", hb.Hotel.ListHotels)
		api.GET("/:hotelId", hb.Hotel.GetHotel)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("/:hotelId/bookings/payment-intent", hb.Booking.CreatePaymentIntent)
		protected.POST("/:hotelId/bookings", hb.Booking.CommitBooking)
	}
}

// RegisterMyHotelRoutes registers the owner-facing hotel management endpoints.
func RegisterMyHotelRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/my-hotels")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.MyHotel.CreateHotel)
		api.GET("", hb.MyHotel.MyHotels)
		api.GET("/:hotelId", hb.MyHotel.GetMyHotel)
		api.PUT("/:hotelId", hb.MyHotel.UpdateHotel)
	}
}

// RegisterMyBookingRoutes registers the guest booking view.
func RegisterMyBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/my-bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Booking.MyBookings)
	}
}

// RegisterUserRoutes registers account and session endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	users := r.Group("/api/users")
	{
		users.POST("/register", hb.User.Register)
		users.GET("/me", middleware.JWTAuthMiddleware(), hb.User.Me)
	}

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", hb.User.Login)
		auth.GET("/validate-token", middleware.JWTAuthMiddleware(), hb.User.ValidateToken)
		auth.POST("/logout", hb.User.Logout)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Cookie-based auth requires credentialed CORS pinned to the frontend.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.FrontURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterHotelRoutes(r, hb)
	RegisterMyHotelRoutes(r, hb)
	RegisterMyBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
