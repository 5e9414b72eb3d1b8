package volunteer

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/trongdat-dev/volunteer-hub-backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ListVolunteers - GET /admin/volunteers?search=&organizationId=&page=&limit=
func (h *Handler) ListVolunteers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	var organizationID *uint
	if orgStr := c.Query("organizationId"); orgStr != "" {
		if id, err := strconv.ParseUint(orgStr, 10, 32); err == nil {
			oid := uint(id)
			organizationID = &oid
		}
	}

	result, err := h.Service.List(c.Request.Context(), c.Query("search"), organizationID, limit, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list volunteers"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetVolunteer - GET /admin/volunteers/:id
func (h *Handler) GetVolunteer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid volunteer ID"})
		return
	}

	v, err := h.Service.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "volunteer not found"})
		return
	}

	c.JSON(http.StatusOK, v)
}

// AwardPoints - POST /admin/volunteers/:id/points
func (h *Handler) AwardPoints(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid volunteer ID"})
		return
	}

	var req AwardPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a positive points value is required"})
		return
	}

	v, err := h.Service.AwardPoints(c.Request.Context(), uint(id), req, c.GetUint("user_id"), middleware.GetIPFromContext(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, v)
}
