package certificate

import (
	"time"

	"gorm.io/datatypes"
)

// Template is a certificate layout: a background image plus the named
// text-box placement stored as JSONB.
type Template struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:255;not null" json:"name"`
	ImageURL string `gorm:"not null" json:"image_url"`

	// Natural pixel dimensions of the template image, captured at creation.
	ImageWidth  int `gorm:"not null" json:"image_width"`
	ImageHeight int `gorm:"not null" json:"image_height"`

	TextBoxConfig datatypes.JSON `gorm:"type:jsonb;column:text_box_config" json:"text_box_config"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Template) TableName() string {
	return "certificate_templates"
}

// IssuedCertificate is the immutable record of one issuance.
type IssuedCertificate struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TemplateID  uint `gorm:"not null;index" json:"template_id"`
	VolunteerID uint `gorm:"not null;index" json:"volunteer_id"`

	PDFURL    string `gorm:"column:pdf_url" json:"pdf_url"`
	EmailSent bool   `gorm:"default:false" json:"email_sent"`
	Notes     string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (IssuedCertificate) TableName() string {
	return "issued_certificates"
}

type CreateTemplateRequest struct {
	Name          string        `json:"name" binding:"required"`
	ImageURL      string        `json:"image_url" binding:"required"`
	ImageWidth    int           `json:"image_width" binding:"required"`
	ImageHeight   int           `json:"image_height" binding:"required"`
	TextBoxConfig TextBoxConfig `json:"text_box_config" binding:"required"`
}

type IssueRequest struct {
	TemplateID  uint   `json:"templateId" binding:"required"`
	VolunteerID uint   `json:"volunteerId" binding:"required"`
	Notes       string `json:"notes"`
}

type PaginatedTemplates struct {
	Data       []Template `json:"data"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"total_pages"`
}

type PaginatedIssued struct {
	Data       []IssuedCertificate `json:"data"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"total_pages"`
}
