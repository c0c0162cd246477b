// internal/api/routes/admin_routes.go
package routes

import (
	"job-board-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes registers the hiring-manager approval routes.
// Every route requires an admin token.
func RegisterAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminHandler, requireAdmin gin.HandlerFunc) {
	admin := rg.Group("/admin")
	admin.Use(requireAdmin)
	{
		admin.GET("/hiring-managers", adminHandler.ListManagers)
		admin.PATCH("/hiring-managers/:id/approve", adminHandler.ApproveManager)
		admin.DELETE("/hiring-managers/:id/deny", adminHandler.DenyManager)
	}
}
