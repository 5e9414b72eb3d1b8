package activitylog

import (
	"time"
)

// ActivityLog represents the activity_logs table
type ActivityLog struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         *uint     `gorm:"index" json:"user_id"`         // nullable (e.g. system events)
	OrganizationID *uint     `gorm:"index" json:"organization_id"` // nullable
	Action         string    `gorm:"size:100;not null;index" json:"action"`
	Details        string    `gorm:"type:jsonb" json:"details"` // freeform JSON details
	IPAddress      string    `gorm:"size:45" json:"ip_address"`
	Status         string    `gorm:"size:20;not null;index" json:"status"` // success/failure
	CreatedAt      time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

// ActivityLogResponse represents the activity log response for API
type ActivityLogResponse struct {
	ID             uint      `json:"id"`
	UserID         *uint     `json:"user_id"`
	OrganizationID *uint     `json:"organization_id"`
	Action         string    `json:"action"`
	Details        string    `json:"details"`
	IPAddress      string    `json:"ip_address"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UserName       *string   `json:"user_name,omitempty"`
}

// ActivityLogFilter represents filters for querying activity logs
type ActivityLogFilter struct {
	UserID         *uint      `json:"user_id"`
	OrganizationID *uint      `json:"organization_id"`
	Action         string     `json:"action"`
	Status         string     `json:"status"`
	FromDate       *time.Time `json:"from_date"`
	ToDate         *time.Time `json:"to_date"`
	Page           int        `json:"page"`
	Limit          int        `json:"limit"`
}

// PaginatedActivityLogs represents the paginated activity log response
type PaginatedActivityLogs struct {
	Data       []ActivityLogResponse `json:"data"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	TotalPages int                   `json:"total_pages"`
}
