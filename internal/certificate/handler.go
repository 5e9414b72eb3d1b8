package certificate

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

// ListTemplates - GET /certificates/templates?page=&limit=
func (h *Handler) ListTemplates(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.Service.ListTemplates(c.Request.Context(), limit, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list templates"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTemplate - GET /certificates/templates/:id
func (h *Handler) GetTemplate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template ID"})
		return
	}

	t, err := h.Service.GetTemplate(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		return
	}

	c.JSON(http.StatusOK, t)
}

// CreateTemplate - POST /certificates/templates
func (h *Handler) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, image_url, dimensions and text_box_config are required"})
		return
	}

	t, err := h.Service.CreateTemplate(c.Request.Context(), req, c.GetUint("user_id"), middleware.GetIPFromContext(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, t)
}

// DeleteTemplate - DELETE /certificates/templates/:id
func (h *Handler) DeleteTemplate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template ID"})
		return
	}

	if err := h.Service.DeleteTemplate(c.Request.Context(), uint(id), c.GetUint("user_id"), middleware.GetIPFromContext(c)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "template deleted successfully"})
}

// ListIssued - GET /certificates/issued?volunteerId=&page=&limit=
func (h *Handler) ListIssued(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	var volunteerID *uint
	if vStr := c.Query("volunteerId"); vStr != "" {
		if id, err := strconv.ParseUint(vStr, 10, 32); err == nil {
			vid := uint(id)
			volunteerID = &vid
		}
	}

	result, err := h.Service.ListIssued(c.Request.Context(), volunteerID, limit, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list certificates"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Issue - POST /certificates/issue
func (h *Handler) Issue(c *gin.Context) {
	var req IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "templateId and volunteerId are required"})
		return
	}

	ic, err := h.Service.Issue(c.Request.Context(), req, c.GetUint("user_id"), middleware.GetIPFromContext(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ic)
}
