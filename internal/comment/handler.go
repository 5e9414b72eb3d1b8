package comment

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

// ListComments - GET /admin/comments?volunteerId=&page=&limit=
func (h *Handler) ListComments(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	var volunteerID *uint
	if volStr := c.Query("volunteerId"); volStr != "" {
		id, err := strconv.ParseUint(volStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid volunteer ID"})
			return
		}
		vid := uint(id)
		volunteerID = &vid
	}

	result, err := h.Service.List(c.Request.Context(), volunteerID, limit, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list comments"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateComment - POST /admin/comments
func (h *Handler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "volunteer_id, comment and a rating from 1 to 5 are required"})
		return
	}

	ac, ok := middleware.GetAccessContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	cm, err := h.Service.Create(c.Request.Context(), req, ac, middleware.GetIPFromContext(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cm)
}

// DeleteComment - DELETE /admin/comments/:id
func (h *Handler) DeleteComment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment ID"})
		return
	}

	ac, ok := middleware.GetAccessContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), uint(id), ac, middleware.GetIPFromContext(c)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment deleted successfully"})
}
