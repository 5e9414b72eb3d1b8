package comment

import (
	"time"
)

// Comment is an organization's review of a volunteer who worked with it.
// Reviews are created and deleted, never edited.
type Comment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	VolunteerID    uint `gorm:"not null;index" json:"volunteer_id"`
	OrganizationID uint `gorm:"not null;index" json:"organization_id"`

	Content string `gorm:"type:text;not null;column:comment" json:"comment"`
	Rating  int    `gorm:"not null" json:"rating"`

	VolunteerName string `gorm:"-:migration;->" json:"volunteer_name,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}

type CreateCommentRequest struct {
	VolunteerID uint   `json:"volunteer_id" binding:"required"`
	Content     string `json:"comment" binding:"required"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
}

type PaginatedComments struct {
	Data       []Comment `json:"data"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"total_pages"`
}
