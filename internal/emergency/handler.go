package emergency

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

// ListRequests - GET /emergency?status=NEW|COMPLETED
func (h *Handler) ListRequests(c *gin.Context) {
	requests, err := h.Service.ListByStatus(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": requests})
}

// CreateRequest - POST /emergency
func (h *Handler) CreateRequest(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "beneficiary_id and beneficiary snapshot are required"})
		return
	}

	r, err := h.Service.Create(c.Request.Context(), req, middleware.GetIPFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create emergency request"})
		return
	}

	c.JSON(http.StatusCreated, r)
}

// UpdateStatus - PATCH /emergency/:id
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	adminID := c.GetUint("user_id")
	ip := middleware.GetIPFromContext(c)

	if err := h.Service.UpdateStatus(c.Request.Context(), uint(id), req, adminID, ip); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "emergency request updated successfully"})
}
