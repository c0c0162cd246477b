// internal/api/handlers/jobs.go
package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"job-board-api/internal/api/middleware"
	"job-board-api/internal/models"
	"job-board-api/internal/services"
	"job-board-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
)

// JobHandler holds the dependencies for the hiring manager surface.
type JobHandler struct {
	jobs       services.JobService
	apps       services.ApplicationService
	applicants services.ApplicantService
	validator  *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobs services.JobService, apps services.ApplicationService, applicants services.ApplicantService, validate *validator.Validate) *JobHandler {
	return &JobHandler{jobs: jobs, apps: apps, applicants: applicants, validator: validate}
}

// callerID extracts the authenticated subject from the gate's context entry.
func callerID(c *gin.Context) (string, bool) {
	ident, err := middleware.GetIdentity(c)
	if err != nil {
		log.Printf("Handler reached without identity in context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. No token provided."})
		return "", false
	}
	return ident.SubjectID, true
}

// CreateJob godoc
// @Summary      Create a job posting
// @Description  The owning hiring manager is taken from the authenticated token.
// @Tags         manager
// @Accept       json
// @Produce      json
// @Param        body body      dto.CreateJobRequest true "Job fields"
// @Success      201  {object}  models.Job
// @Failure      400  {object}  map[string]string
// @Router       /manager/jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	managerID, err := uuid.Parse(caller)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing userId"})
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	req.HiringManagerID = managerID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	job, err := h.jobs.Create(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error creating job: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, job)
}

// ListManagerJobs godoc
// @Summary      List jobs owned by a hiring manager
// @Tags         manager
// @Produce      json
// @Param        userId query     string  true  "Hiring manager ID" Format(uuid)
// @Success      200  {array}   models.Job
// @Failure      400  {object}  map[string]string
// @Router       /manager/jobs [get]
func (h *JobHandler) ListManagerJobs(c *gin.Context) {
	managerID, err := uuid.Parse(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing userId"})
		return
	}

	jobs, err := h.jobs.ListByManager(c.Request.Context(), managerID)
	if err != nil {
		log.Printf("Error fetching jobs for manager %s: %v", managerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJobByID godoc
// @Summary      Get a job by ID
// @Tags         manager
// @Produce      json
// @Param        jobId path      string  true  "Job ID" Format(uuid)
// @Success      200  {object}  models.Job
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /manager/jobs/{jobId} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	jobID, ok := parseIDParam(c, "jobId", "Invalid jobId")
	if !ok {
		return
	}

	job, err := h.jobs.GetByID(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		} else {
			log.Printf("Error fetching job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}
	c.JSON(http.StatusOK, job)
}

// UpdateJob godoc
// @Summary      Update a job's fields
// @Tags         manager
// @Accept       json
// @Produce      json
// @Param        jobId path      string  true  "Job ID" Format(uuid)
// @Param        body  body      dto.UpdateJobRequest true "Fields to change"
// @Success      200  {object}  models.Job
// @Failure      404  {object}  map[string]string
// @Router       /manager/jobs/{jobId} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	jobID, ok := parseIDParam(c, "jobId", "Invalid jobId")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = jobID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	job, err := h.jobs.Update(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		} else {
			log.Printf("Error updating job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}
	c.JSON(http.StatusOK, job)
}

// DeleteJob godoc
// @Summary      Delete a job
// @Description  Removes the job and its applications; the owner's job list no longer references it.
// @Tags         manager
// @Produce      json
// @Param        jobId path      string  true  "Job ID" Format(uuid)
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /manager/jobs/{jobId} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	jobID, ok := parseIDParam(c, "jobId", "Invalid jobId")
	if !ok {
		return
	}

	if err := h.jobs.Delete(c.Request.Context(), jobID); err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		} else {
			log.Printf("Error deleting job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// AcceptApplicant godoc
// @Summary      Accept an applicant for a job
// @Tags         manager
// @Produce      json
// @Param        jobId       path string true "Job ID" Format(uuid)
// @Param        applicantId path string true "Applicant ID" Format(uuid)
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /manager/jobs/{jobId}/applicants/{applicantId}/accept [put]
func (h *JobHandler) AcceptApplicant(c *gin.Context) {
	h.decideApplicant(c, "Applicant accepted", h.apps.Accept)
}

// DeclineApplicant godoc
// @Summary      Decline an applicant for a job
// @Tags         manager
// @Produce      json
// @Param        jobId       path string true "Job ID" Format(uuid)
// @Param        applicantId path string true "Applicant ID" Format(uuid)
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /manager/jobs/{jobId}/applicants/{applicantId}/decline [put]
func (h *JobHandler) DeclineApplicant(c *gin.Context) {
	h.decideApplicant(c, "Applicant declined", h.apps.Decline)
}

type decideFunc func(ctx context.Context, jobID, applicantID uuid.UUID, callerID string) (*models.Job, error)

func (h *JobHandler) decideApplicant(c *gin.Context, message string, decide decideFunc) {
	jobID, ok := parseIDParam(c, "jobId", "Invalid jobId")
	if !ok {
		return
	}
	applicantID, ok := parseIDParam(c, "applicantId", "Invalid applicantId")
	if !ok {
		return
	}
	caller, ok := callerID(c)
	if !ok {
		return
	}

	job, err := decide(c.Request.Context(), jobID, applicantID, caller)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		case errors.Is(err, services.ErrApplicationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Applicant not found for this job"})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied. Not the owner of this job."})
		case errors.Is(err, services.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"message": "Applicant status already decided"})
		default:
			log.Printf("Error deciding applicant %s on job %s: %v", applicantID, jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "job": job})
}

// ListApplicants godoc
// @Summary      Fetch applicants by their IDs
// @Tags         manager
// @Produce      json
// @Param        ids  query     []string  true  "Applicant IDs"
// @Success      200  {array}   models.Applicant
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /manager/applicants [get]
func (h *JobHandler) ListApplicants(c *gin.Context) {
	rawIDs := c.QueryArray("ids")
	if len(rawIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing ids"})
		return
	}

	ids := make([]uuid.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing ids"})
			return
		}
		ids = append(ids, id)
	}

	applicants, err := h.applicants.GetByIDs(c.Request.Context(), ids)
	if err != nil {
		log.Printf("Error fetching applicants by IDs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if len(applicants) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No applicants found"})
		return
	}
	c.JSON(http.StatusOK, applicants)
}

// GetResume godoc
// @Summary      Download an applicant's resume
// @Description  Streams the stored resume bytes with their original content type.
// @Tags         manager
// @Produce      octet-stream
// @Param        applicantId path string true "Applicant ID" Format(uuid)
// @Success      200  {file}    binary
// @Failure      404  {object}  map[string]string
// @Router       /manager/resume/{applicantId} [get]
func (h *JobHandler) GetResume(c *gin.Context) {
	applicantID, ok := parseIDParam(c, "applicantId", "Invalid applicantId")
	if !ok {
		return
	}

	data, contentType, err := h.applicants.Resume(c.Request.Context(), applicantID)
	if err != nil {
		if errors.Is(err, services.ErrResumeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Resume not found"})
		} else {
			log.Printf("Error fetching resume for applicant %s: %v", applicantID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}
	c.Data(http.StatusOK, contentType, data)
}
