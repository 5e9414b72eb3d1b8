package campaign

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	GetByID(ctx context.Context, id uint) (*Campaign, error)
	ListWithFilters(ctx context.Context, filter ListFilter) ([]Campaign, int64, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Campaign, error) {
	var c Campaign
	err := r.db.WithContext(ctx).Preload("Organization").First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) ListWithFilters(ctx context.Context, filter ListFilter) ([]Campaign, int64, error) {
	var campaigns []Campaign
	var total int64

	offset := (filter.Page - 1) * filter.Limit

	query := r.db.WithContext(ctx).Model(&Campaign{})

	if filter.Search != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.OrganizationID != nil {
		query = query.Where("organization_id = ?", *filter.OrganizationID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Organization").
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(offset).
		Find(&campaigns).Error
	if err != nil {
		return nil, 0, err
	}

	return campaigns, total, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&Campaign{}).
		Where("id = ?", id).
		Update("status", status).Error
}
