package reports

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/trongdat-dev/volunteer-hub-backend/internal/activitylog"
	"github.com/trongdat-dev/volunteer-hub-backend/middleware"
)

type Handler struct {
	service     Service
	activitySvc activitylog.Service
}

func NewHandler(svc Service, activitySvc activitylog.Service) *Handler {
	return &Handler{service: svc, activitySvc: activitySvc}
}

// Export - GET /admin/reports/:type?format=excel|csv|pdf&status=&organizationId=
func (h *Handler) Export(c *gin.Context) {
	reportType := c.Param("type")
	format := c.DefaultQuery("format", FormatExcel)

	filter := Filter{CampaignStatus: c.Query("status")}
	if orgStr := c.Query("organizationId"); orgStr != "" {
		if id, err := strconv.ParseUint(orgStr, 10, 32); err == nil {
			oid := uint(id)
			filter.OrganizationID = &oid
		}
	}

	data, filename, contentType, err := h.service.BuildReport(c.Request.Context(), reportType, format, filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("user_id")
	_ = h.activitySvc.LogAction(c.Request.Context(), &userID, nil, "REPORT_EXPORTED",
		map[string]interface{}{"report_type": reportType, "format": format},
		middleware.GetIPFromContext(c), "success")

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
