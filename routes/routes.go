package routes

import (
	"net/http"
	"time"

	"pawhaven/handlers"
	"pawhaven/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterHandler)
		api.POST("/login", hb.User.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.User.MeHandler)
		api.PUT("/me", hb.User.UpdateHandler)
		api.PUT("/me/fcm-token", hb.User.UpdateFCMTokenHandler)
		api.DELETE("/me", hb.User.DeleteHandler)
		api.POST("/logout", hb.User.LogoutHandler)
	}
}

// RegisterPetRoutes registers pet endpoints. All of them require a signed-in
// owner.
func RegisterPetRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pets")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Pet.CreateHandler)
		api.GET("", hb.Pet.ListHandler)
		api.GET("/:id", hb.Pet.GetHandler)
		api.PUT("/:id", hb.Pet.UpdateHandler)
		api.POST("/:id/photo", hb.Pet.UploadPhotoHandler)
		api.DELETE("/:id", hb.Pet.DeleteHandler)
	}
}

// RegisterCaregiverRoutes registers the public caregiver directory.
func RegisterCaregiverRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/caregivers")
	{
		api.GET("", hb.Caregiver.ListHandler)
		api.GET("/:id", hb.Caregiver.GetHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/caregiver-bookings")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware())
		bookingGroup.POST("", hb.Booking.CreateBookingHandler)
		bookingGroup.GET("/user", hb.Booking.GetUserBookingsHandler)
		bookingGroup.GET("/admin", middleware.RequireAdmin(), hb.Booking.GetAllBookingsHandler)
		bookingGroup.PUT("/:id/status", hb.Booking.SetStatusHandler)
		bookingGroup.PUT("/:id/accepted", hb.Booking.AcceptBookingHandler)
		bookingGroup.PUT("/:id/rejected", hb.Booking.RejectBookingHandler)
	}

	groomingGroup := r.Group("/api/grooming-bookings")
	{
		groomingGroup.Use(middleware.JWTAuthMiddleware())
		groomingGroup.POST("", hb.Booking.CreateGroomingHandler)
		groomingGroup.GET("/user", hb.Booking.GetUserGroomingHandler)
	}
}

// RegisterCatalogRoutes registers the public product and program catalog.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	products := r.Group("/api/products")
	{
		products.GET("", hb.Catalog.ListProductsHandler)
		products.GET("/:id", hb.Catalog.GetProductHandler)
	}

	programs := r.Group("/api/programs")
	{
		programs.GET("", hb.Catalog.ListProgramsHandler)
		programs.GET("/:id", hb.Catalog.GetProgramHandler)
	}
}

// RegisterPaymentRoutes registers payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/intent", hb.Payment.CreateIntentHandler)
		api.POST("", hb.Payment.RecordHandler)
		api.GET("/user", hb.Payment.ListUserHandler)
	}
}

// RegisterCommunityRoutes registers the message board.
func RegisterCommunityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/community")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/posts", hb.Community.CreatePostHandler)
		api.GET("/posts", hb.Community.ListPostsHandler)
		api.GET("/posts/:id", hb.Community.GetPostHandler)
		api.POST("/posts/:id/comments", hb.Community.AddCommentHandler)
		api.DELETE("/posts/:id", hb.Community.DeletePostHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.RequireAdmin())

		adminGroup.GET("/users", hb.User.ListAllHandler)

		adminGroup.POST("/bookings/:id/status", hb.Booking.SetGroomingStatusHandler)

		adminGroup.POST("/caregivers", hb.Caregiver.CreateHandler)
		adminGroup.PUT("/caregivers/:id", hb.Caregiver.UpdateHandler)
		adminGroup.DELETE("/caregivers/:id", hb.Caregiver.DeleteHandler)

		adminGroup.POST("/products", hb.Catalog.CreateProductHandler)
		adminGroup.PUT("/products/:id", hb.Catalog.UpdateProductHandler)
		adminGroup.DELETE("/products/:id", hb.Catalog.DeleteProductHandler)

		adminGroup.POST("/programs", hb.Catalog.CreateProgramHandler)
		adminGroup.PUT("/programs/:id", hb.Catalog.UpdateProgramHandler)
		adminGroup.DELETE("/programs/:id", hb.Catalog.DeleteProgramHandler)

		adminGroup.GET("/payments", hb.Payment.ListAllHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm PawHaven"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterPetRoutes(r, hb)
	RegisterCaregiverRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterCommunityRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
