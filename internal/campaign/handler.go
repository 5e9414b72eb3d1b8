package campaign

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

// ListCampaigns - GET /admin/content/campaigns?search=&organizationId=&status=&page=&limit=
func (h *Handler) ListCampaigns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	filter := ListFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}

	if orgStr := c.Query("organizationId"); orgStr != "" {
		if id, err := strconv.ParseUint(orgStr, 10, 32); err == nil {
			oid := uint(id)
			filter.OrganizationID = &oid
		}
	}

	result, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list campaigns"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCampaign - GET /admin/content/campaigns/:id
func (h *Handler) GetCampaign(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign ID"})
		return
	}

	campaign, err := h.Service.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// ReviewCampaign - PATCH /admin/content/campaigns/:id/approve
func (h *Handler) ReviewCampaign(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign ID"})
		return
	}

	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	adminID := c.GetUint("user_id")
	ip := middleware.GetIPFromContext(c)

	if err := h.Service.Review(c.Request.Context(), uint(id), req, adminID, ip); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "campaign status updated successfully"})
}
