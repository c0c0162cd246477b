// internal/api/routes/applicant_routes.go
package routes

import (
	"job-board-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterApplicantRoutes registers the applicant surface. All routes accept
// any valid token; profile updates act on the identity from the token.
func RegisterApplicantRoutes(rg *gin.RouterGroup, applicantHandler *handlers.ApplicantHandler, authenticate gin.HandlerFunc) {
	applicant := rg.Group("/applicant")
	applicant.Use(authenticate)
	{
		applicant.GET("/jobs", applicantHandler.ListJobs)
		applicant.POST("/apply", applicantHandler.Apply)
		applicant.PUT("/profile", applicantHandler.UpdateProfile)
		applicant.GET("/applied-jobs/:applicantId", applicantHandler.AppliedJobs)
		applicant.GET("/applicant/:applicantId", applicantHandler.GetApplicant)
	}
}
