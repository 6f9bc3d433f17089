package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"zipsea/handlers"
	"zipsea/middleware"
)

// RegisterPageRoutes registers the server-rendered pages.
func RegisterPageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.HomePage)
	r.GET("/cruises", hb.ListingPage)
	r.GET("/cruise/:slug", hb.CruisePage)
	r.GET("/legal/:id", hb.LegalPage)
	r.NoRoute(hb.NotFound)
}

// RegisterCruiseRoutes registers the public cruise and quote JSON API.
func RegisterCruiseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/cruises", hb.ListCruises)
		api.GET("/cruises/:slug", hb.GetCruise)
		api.GET("/legal", hb.ListLegal)
		api.POST("/quotes", hb.SubmitQuote)
	}
}

// RegisterBookingRoutes sets up the endpoints for the live booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking/sessions")
	{
		bookingGroup.POST("", hb.StartBookingSession)
		bookingGroup.GET("/:id", hb.GetBookingSession)
		bookingGroup.DELETE("/:id", hb.CancelBooking)
		bookingGroup.PUT("/:id/passengers", hb.UpdatePassengers)
		bookingGroup.PUT("/:id/rate-code", hb.SelectRateCode)
		bookingGroup.POST("/:id/reserve", hb.ReserveCabin)
		bookingGroup.PUT("/:id/flag", hb.UpdateBookingFlag)
	}
}

// RegisterAdminRoutes sets up endpoints for staff operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/quotes", hb.ListQuotes)
		adminGroup.GET("/quotes/:id", hb.GetQuote)
		adminGroup.DELETE("/cruises/:id/cache", hb.InvalidateCruise)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// siteURL restricts CORS to the public site; empty allows any origin.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, siteURL string) {
	r.Use(cors.New(corsConfig(siteURL)))

	RegisterPageRoutes(r, hb)
	RegisterCruiseRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}

func corsConfig(siteURL string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if siteURL = strings.TrimRight(siteURL, "/"); siteURL == "" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = []string{siteURL}
	cfg.AllowCredentials = true
	return cfg
}
