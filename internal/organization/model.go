package organization

import (
	"time"
)

// Organization statuses. PENDING and DENIED belong to the registration
// workflow; only ACTIVE and BANNED participate in the admin toggle.
const (
	StatusActive  = "ACTIVE"
	StatusPending = "PENDING"
	StatusBanned  = "BANNED"
	StatusDenied  = "DENIED"
)

type Organization struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name           string `gorm:"not null" json:"name"`
	Email          string `gorm:"unique;not null" json:"email"`
	Phone          string `gorm:"size:20" json:"phone"`
	AvatarURL      string `json:"avatar_url"`
	Representative string `gorm:"size:255" json:"representative"`
	Description    string `gorm:"type:text" json:"description"`
	Address        string `gorm:"type:text" json:"address"`

	Status string `gorm:"size:20;default:'PENDING';index" json:"status"`

	VolunteerCount int `gorm:"-" json:"volunteer_count"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Organization) TableName() string {
	return "organizations"
}

// UpdateStatusRequest is the PATCH /admin/organizations/:id body.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

// PaginatedOrganizations is the list response envelope.
type PaginatedOrganizations struct {
	Data       []Organization `json:"data"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}
