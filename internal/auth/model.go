package auth

import (
	"time"
)

// UserRole is a seeded lookup table (admin, organization, volunteer).
type UserRole struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RoleName string `gorm:"size:50;unique;not null" json:"role_name"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	FullName     string `gorm:"size:255;not null" json:"full_name"`
	Email        string `gorm:"size:255;unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	AvatarURL    string `json:"avatar_url"`

	RoleID uint     `gorm:"not null;index" json:"role_id"`
	Role   UserRole `gorm:"foreignKey:RoleID" json:"role"`

	// Set for organization accounts; links the login to its organization profile.
	OrganizationID *uint `gorm:"index" json:"organization_id,omitempty"`

	// Device registration for push delivery, refreshed by the client on login.
	FCMToken string `gorm:"size:512" json:"-"`

	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// MeResponse is the who-am-I payload consumed by the console's auth guard.
type MeResponse struct {
	ID             uint   `json:"id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	AvatarURL      string `json:"avatar_url"`
	Role           string `json:"role"`
	OrganizationID *uint  `json:"organization_id,omitempty"`
}
