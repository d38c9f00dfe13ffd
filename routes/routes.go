package routes

import (
	"net/http"
	"time"

	"admas/handlers"
	"admas/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.Register)
		api.POST("/login", hb.User.Login)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/me", hb.User.Profile)
		api.PUT("/me", hb.User.UpdateProfile)
	}
}

// RegisterFormRoutes sets up the endpoints for the booking form engine.
func RegisterFormRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	formGroup := r.Group("/api/form")
	{
		formGroup.Use(middleware.JWTAuthUserMiddleware())
		formGroup.POST("/session", hb.Form.StartSession)
		formGroup.GET("/session/:sessionID", hb.Form.GetSession)
		formGroup.PATCH("/session/:sessionID", hb.Form.UpdateSession)
		formGroup.POST("/session/:sessionID/next", hb.Form.NextStep)
		formGroup.POST("/session/:sessionID/back", hb.Form.PrevStep)
		formGroup.POST("/session/:sessionID/autofill", hb.Form.AutoFillSession)
		formGroup.POST("/session/:sessionID/search", hb.Form.SearchFlights)
		formGroup.POST("/session/:sessionID/submit", hb.Form.SubmitSession)
		formGroup.DELETE("/session/:sessionID", hb.Form.CancelSession)
	}
}

// RegisterCarRoutes registers car-rental endpoints.
func RegisterCarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cars")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("/search", hb.Cars.SearchCars)
		api.POST("/book", hb.Cars.BookCar)
		api.GET("/form", hb.Cars.GetCarForm)
		api.PUT("/form", hb.Cars.SaveCarForm)
	}
}

// RegisterBookingRoutes registers persisted-booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/mine", hb.Booking.ListMine)
		api.GET("/reference/:reference", hb.Booking.GetByReference)
		api.POST("/payment-intent", hb.Booking.CreatePaymentIntent)
	}
}

// RegisterQuizRoutes registers travel-preference quiz endpoints.
func RegisterQuizRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/quiz")
	{
		api.GET("/questions", hb.Quiz.GetQuestions)

		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/answers", hb.Quiz.GetAnswers)
		api.PUT("/answers", hb.Quiz.SaveAnswers)
		api.GET("/recommendation", hb.Quiz.Recommend)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware(hb.UserRepo))
		adminGroup.GET("/bookings", hb.Admin.ListBookings)
		adminGroup.PUT("/bookings/:reference/cancel", hb.Admin.CancelBooking)
		adminGroup.GET("/prefs", hb.Admin.GetViewPrefs)
		adminGroup.PUT("/prefs", hb.Admin.SaveViewPrefs)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Admas Travel"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterFormRoutes(r, hb)
	RegisterCarRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterQuizRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
