// internal/api/routes/manager_routes.go
package routes

import (
	"job-board-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterManagerRoutes registers the hiring-manager surface. Job mutations
// and listings require the hiringManager role; the read-only lookups only
// require a valid token of any role.
func RegisterManagerRoutes(
	rg *gin.RouterGroup,
	jobHandler *handlers.JobHandler,
	requireManager gin.HandlerFunc,
	authenticate gin.HandlerFunc,
) {
	manager := rg.Group("/manager")
	{
		manager.POST("/jobs", requireManager, jobHandler.CreateJob)
		manager.GET("/jobs", requireManager, jobHandler.ListManagerJobs)
		manager.PUT("/jobs/:jobId", requireManager, jobHandler.UpdateJob)
		manager.DELETE("/jobs/:jobId", requireManager, jobHandler.DeleteJob)
		manager.PUT("/jobs/:jobId/applicants/:applicantId/accept", requireManager, jobHandler.AcceptApplicant)
		manager.PUT("/jobs/:jobId/applicants/:applicantId/decline", requireManager, jobHandler.DeclineApplicant)

		manager.GET("/jobs/:jobId", authenticate, jobHandler.GetJobByID)
		manager.GET("/applicants", authenticate, jobHandler.ListApplicants)
		manager.GET("/resume/:applicantId", authenticate, jobHandler.GetResume)
	}
}
