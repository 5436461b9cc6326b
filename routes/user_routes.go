package routes

import (
	"github.com/Sreehari-23/LinkLedger/controllers"
	"github.com/Sreehari-23/LinkLedger/middleware"
	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes all user-related routes
func initUserRoutes(router *gin.RouterGroup) {
	// Public routes (no authentication required)
	router.POST("/register", controllers.RegisterUser)
	router.POST("/login", controllers.LoginUser)

	// Product catalog
	router.GET("/products", controllers.GetProducts)
	router.GET("/products/:id", controllers.GetProductDetails)

	// Tracking endpoints; the link code is the only credential
	router.GET("/t/:code", controllers.TrackClick)
	router.POST("/t/:code/convert", controllers.RecordConversion)

	// Protected routes (require authentication)
	protected := router.Group("/user")
	protected.Use(middleware.AuthMiddleware())
	{
		// Affiliate links
		protected.POST("/links", controllers.GenerateLink)
		protected.GET("/links", controllers.GetLinks)
		protected.GET("/links/:id/qr", controllers.GetLinkQR)

		// Balance and payouts
		protected.GET("/balance", controllers.GetBalance)
		protected.POST("/payouts", controllers.RequestPayout)
		protected.GET("/payouts", controllers.GetPayouts)

		// Stats
		protected.GET("/stats/daily", controllers.GetDailyStats)
	}
}
