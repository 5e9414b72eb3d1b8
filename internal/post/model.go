package post

import (
	"time"

	"github.com/trongdat-dev/volunteer-hub-backend/internal/organization"
)

type Post struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title         string `gorm:"size:255;not null" json:"title"`
	Content       string `gorm:"type:text" json:"content"`
	CoverImageURL string `json:"cover_image_url"`

	OrganizationID uint                       `gorm:"not null;index" json:"organization_id"`
	Organization   *organization.Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}

type CreatePostRequest struct {
	Title          string `json:"title" binding:"required"`
	Content        string `json:"content" binding:"required"`
	CoverImageURL  string `json:"cover_image_url"`
	OrganizationID uint   `json:"organization_id" binding:"required"`
}

type UpdatePostRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	CoverImageURL string `json:"cover_image_url"`
}

type PaginatedPosts struct {
	Data       []Post `json:"data"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"total_pages"`
}
