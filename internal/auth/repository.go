package auth

import (
	"gorm.io/gorm"
)

type Repository interface {
	FindByEmail(email string) (*User, error)
	FindByID(userID uint) (User, error)
	GetUserEmailsByRole(roleName string) ([]string, error)
	GetAdminFCMTokens() ([]string, error)
	Update(user *User) error
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

// Find user by email (used in login)
func (r *repository) FindByEmail(email string) (*User, error) {
	var u User
	err := r.db.Preload("Role").Where("email = ?", email).First(&u).Error
	return &u, err
}

// Find user by ID (with role preload)
func (r *repository) FindByID(userID uint) (User, error) {
	var user User
	err := r.db.Preload("Role").First(&user, userID).Error
	return user, err
}

// GetUserEmailsByRole returns the emails of active accounts holding the role
// (SOS email fan-out targets).
func (r *repository) GetUserEmailsByRole(roleName string) ([]string, error) {
	var emails []string
	err := r.db.Model(&User{}).
		Joins("JOIN user_roles ON users.role_id = user_roles.id").
		Where("user_roles.role_name = ? AND users.is_active = TRUE", roleName).
		Pluck("users.email", &emails).Error
	return emails, err
}

// GetAdminFCMTokens returns the registered device tokens of active admins.
func (r *repository) GetAdminFCMTokens() ([]string, error) {
	var tokens []string
	err := r.db.Model(&User{}).
		Joins("JOIN user_roles ON users.role_id = user_roles.id").
		Where("user_roles.role_name = ? AND users.is_active = TRUE AND users.fcm_token <> ''", "admin").
		Pluck("users.fcm_token", &tokens).Error
	return tokens, err
}

func (r *repository) Update(user *User) error {
	return r.db.Save(user).Error
}
