package organization

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	GetByID(ctx context.Context, id uint) (*Organization, error)
	ListWithFilters(ctx context.Context, search, status string, limit, page int) ([]Organization, int64, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	CountVolunteers(ctx context.Context, orgID uint) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Organization, error) {
	var org Organization
	err := r.db.WithContext(ctx).First(&org, id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *repository) ListWithFilters(ctx context.Context, search, status string, limit, page int) ([]Organization, int64, error) {
	var orgs []Organization
	var total int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&Organization{})

	if search != "" {
		ilike := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR representative ILIKE ?", ilike, ilike, ilike)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&orgs).Error; err != nil {
		return nil, 0, err
	}

	return orgs, total, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&Organization{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repository) CountVolunteers(ctx context.Context, orgID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("volunteers").
		Where("organization_id = ?", orgID).
		Count(&count).Error
	return count, err
}
