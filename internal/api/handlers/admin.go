package handlers

import (
	"errors"
	"log"
	"net/http"

	"job-board-api/internal/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler holds the service dependency for the approval workflow.
type AdminHandler struct {
	admin services.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(admin services.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// ListManagers godoc
// @Summary      List all hiring managers
// @Description  Returns every hiring manager record, approved or awaiting approval.
// @Tags         admin
// @Produce      json
// @Success      200  {array}   models.HiringManager
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/hiring-managers [get]
func (h *AdminHandler) ListManagers(c *gin.Context) {
	managers, err := h.admin.ListManagers(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching hiring managers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, managers)
}

// ApproveManager godoc
// @Summary      Approve a hiring manager
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Hiring manager ID" Format(uuid)
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/hiring-managers/{id}/approve [patch]
func (h *AdminHandler) ApproveManager(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid or missing id")
	if !ok {
		return
	}

	if err := h.admin.Approve(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrManagerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Hiring manager not found"})
		} else {
			log.Printf("Error approving hiring manager %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hiring manager approved successfully"})
}

// DenyManager godoc
// @Summary      Deny and remove a hiring manager
// @Description  Hard-deletes the record. Jobs already posted by the manager are left in place.
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Hiring manager ID" Format(uuid)
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/hiring-managers/{id}/deny [delete]
func (h *AdminHandler) DenyManager(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid or missing id")
	if !ok {
		return
	}

	if err := h.admin.Deny(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrManagerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Hiring manager not found"})
		} else {
			log.Printf("Error denying hiring manager %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hiring manager denied and removed successfully"})
}
