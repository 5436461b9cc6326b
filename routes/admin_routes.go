package routes

import (
	"github.com/Sreehari-23/LinkLedger/controllers"
	"github.com/Sreehari-23/LinkLedger/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes all admin-related routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		// User management
		admin.GET("/users", controllers.GetUsers)
		admin.PATCH("/users/:id/block", controllers.BlockUser)
		admin.PATCH("/users/:id/unblock", controllers.UnblockUser)

		// Product management
		admin.POST("/products", controllers.CreateProduct)
		admin.PUT("/products/:id", controllers.UpdateProduct)
		admin.DELETE("/products/:id", controllers.DeleteProduct)
		admin.GET("/products/:id/stats", controllers.GetProductStats)

		// Link cleanup
		admin.DELETE("/links/:id", controllers.DeleteLink)

		// Payout management
		admin.GET("/payouts", controllers.GetAllPayouts)
		admin.PATCH("/payouts/:id/status", controllers.UpdatePayoutStatus)

		// Reporting
		admin.GET("/dashboard", controllers.GetDashboard)
		admin.GET("/reports/leaderboard", controllers.GetLeaderboard)
		admin.GET("/reports/earnings/excel", controllers.DownloadEarningsReportExcel)
		admin.GET("/reports/earnings/pdf", controllers.DownloadEarningsReportPDF)
	}
}
