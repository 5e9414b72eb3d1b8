package campaign

import (
	"time"

	"github.com/trongdat-dev/volunteer-hub-backend/internal/organization"
)

// Campaign statuses. Admin review only ever moves PENDING to APPROVED or
// REJECTED; the remaining statuses are driven by the campaign lifecycle.
const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusOngoing   = "ONGOING"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

type Campaign struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `json:"image_url"`
	Location    string `gorm:"size:255" json:"location"`

	OrganizationID uint                       `gorm:"not null;index" json:"organization_id"`
	Organization   *organization.Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`

	Status string `gorm:"size:20;default:'PENDING';index" json:"status"`

	MaxVolunteers     int `json:"max_volunteers"`
	CurrentVolunteers int `gorm:"default:0" json:"current_volunteers"`

	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

// ApproveRequest is the PATCH /admin/content/campaigns/:id/approve body.
type ApproveRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type ListFilter struct {
	Search         string
	OrganizationID *uint
	Status         string
	Page           int
	Limit          int
}

type PaginatedCampaigns struct {
	Data       []Campaign `json:"data"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"total_pages"`
}
