package activitylog

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GetActivityLogs - GET /activity-log?limit=&page=&action=&status=&user_id=&from=&to=
// With only ?limit=N set this returns the N most recent entries, which is
// what the console's dashboard widget asks for.
func (h *Handler) GetActivityLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	// Plain recent feed when no other filter is present.
	if c.Query("page") == "" && c.Query("action") == "" && c.Query("status") == "" &&
		c.Query("user_id") == "" && c.Query("from") == "" && c.Query("to") == "" {
		logs, err := h.service.GetRecent(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch activity logs"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": logs})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	filter := ActivityLogFilter{
		Action: c.Query("action"),
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}

	if userIDStr := c.Query("user_id"); userIDStr != "" {
		if id, err := strconv.ParseUint(userIDStr, 10, 32); err == nil {
			uid := uint(id)
			filter.UserID = &uid
		}
	}
	if orgIDStr := c.Query("organization_id"); orgIDStr != "" {
		if id, err := strconv.ParseUint(orgIDStr, 10, 32); err == nil {
			oid := uint(id)
			filter.OrganizationID = &oid
		}
	}
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			filter.FromDate = &t
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			end := t.Add(24*time.Hour - time.Second)
			filter.ToDate = &end
		}
	}

	result, err := h.service.GetActivityLogs(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch activity logs"})
		return
	}

	c.JSON(http.StatusOK, result)
}
