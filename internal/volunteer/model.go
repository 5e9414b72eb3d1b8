package volunteer

import (
	"time"
)

type Volunteer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;uniqueIndex" json:"user_id"`

	FullName  string `gorm:"size:255;not null" json:"full_name"`
	Email     string `gorm:"size:255;not null" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`
	AvatarURL string `json:"avatar_url"`

	OrganizationID *uint `gorm:"index" json:"organization_id"`

	// Points accumulate from completed campaigns and back the rewards screen.
	Points int `gorm:"default:0" json:"points"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Volunteer) TableName() string {
	return "volunteers"
}

// AwardPointsRequest is the POST /admin/volunteers/:id/points body.
type AwardPointsRequest struct {
	Points int    `json:"points" binding:"required,gt=0"`
	Reason string `json:"reason"`
}

type PaginatedVolunteers struct {
	Data       []Volunteer `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"total_pages"`
}
