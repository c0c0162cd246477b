// internal/api/handlers/applicants.go
package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"job-board-api/internal/api/middleware"
	"job-board-api/internal/models"
	"job-board-api/internal/services"
	"job-board-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
)

// ApplicantHandler holds the dependencies for the applicant surface.
type ApplicantHandler struct {
	applicants services.ApplicantService
	apps       services.ApplicationService
	jobs       services.JobService
	validator  *validator.Validate
}

// NewApplicantHandler creates a new ApplicantHandler.
func NewApplicantHandler(applicants services.ApplicantService, apps services.ApplicationService, jobs services.JobService, validate *validator.Validate) *ApplicantHandler {
	return &ApplicantHandler{applicants: applicants, apps: apps, jobs: jobs, validator: validate}
}

// ListJobs godoc
// @Summary      List every job posting
// @Tags         applicant
// @Produce      json
// @Success      200  {array}  models.Job
// @Router       /applicant/jobs [get]
func (h *ApplicantHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobs.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Idempotent: re-applying to the same job is a no-op, not an error.
// @Tags         applicant
// @Accept       json
// @Produce      json
// @Param        body body      dto.ApplyRequest true "Applicant and job IDs"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /applicant/apply [post]
func (h *ApplicantHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Applicant ID and Job ID are required."})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Applicant ID and Job ID are required."})
		return
	}

	job, err := h.apps.Apply(c.Request.Context(), req.ApplicantID, req.JobID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found."})
		case errors.Is(err, services.ErrApplicantNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Applicant not found."})
		default:
			log.Printf("Error applying applicant %s to job %s: %v", req.ApplicantID, req.JobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Applied to job successfully", "job": job})
}

// UpdateProfile godoc
// @Summary      Update the authenticated applicant's profile
// @Description  Multipart form: name, school, degrees (comma-separated) and an optional resume file.
// @Tags         applicant
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /applicant/profile [put]
func (h *ApplicantHandler) UpdateProfile(c *gin.Context) {
	ident, err := middleware.GetIdentity(c)
	if err != nil || ident.Role != models.RoleApplicant {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}
	applicantID, err := uuid.Parse(ident.SubjectID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	req := dto.UpdateApplicantProfileRequest{ID: applicantID}
	if name := c.PostForm("name"); name != "" {
		req.Name = &name
	}
	if school := c.PostForm("school"); school != "" {
		req.School = &school
	}
	req.Degrees = []string{}
	if degrees := c.PostForm("degrees"); degrees != "" {
		for _, d := range strings.Split(degrees, ",") {
			req.Degrees = append(req.Degrees, strings.TrimSpace(d))
		}
	}

	if file, err := c.FormFile("resume"); err == nil {
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid resume upload"})
			return
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid resume upload"})
			return
		}
		req.Resume = data
		req.ResumeContentType = file.Header.Get("Content-Type")
	}

	applicant, err := h.applicants.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrApplicantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Applicant not found."})
		} else {
			log.Printf("Error updating profile for applicant %s: %v", applicantID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "applicant": applicant})
}

// AppliedJobs godoc
// @Summary      List jobs an applicant has applied to
// @Tags         applicant
// @Produce      json
// @Param        applicantId path string true "Applicant ID" Format(uuid)
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /applicant/applied-jobs/{applicantId} [get]
func (h *ApplicantHandler) AppliedJobs(c *gin.Context) {
	applicantID, ok := parseIDParam(c, "applicantId", "Invalid applicantId")
	if !ok {
		return
	}

	jobs, err := h.applicants.AppliedJobs(c.Request.Context(), applicantID)
	if err != nil {
		if errors.Is(err, services.ErrApplicantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Applicant not found."})
		} else {
			log.Printf("Error fetching applied jobs for %s: %v", applicantID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"appliedJobs": jobs})
}

// GetApplicant godoc
// @Summary      Get an applicant by ID
// @Tags         applicant
// @Produce      json
// @Param        applicantId path string true "Applicant ID" Format(uuid)
// @Success      200  {object}  models.Applicant
// @Failure      404  {object}  map[string]string
// @Router       /applicant/applicant/{applicantId} [get]
func (h *ApplicantHandler) GetApplicant(c *gin.Context) {
	applicantID, ok := parseIDParam(c, "applicantId", "Invalid applicantId")
	if !ok {
		return
	}

	applicant, err := h.applicants.GetByID(c.Request.Context(), applicantID)
	if err != nil {
		if errors.Is(err, services.ErrApplicantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Applicant not found."})
		} else {
			log.Printf("Error fetching applicant %s: %v", applicantID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}
	c.JSON(http.StatusOK, applicant)
}
