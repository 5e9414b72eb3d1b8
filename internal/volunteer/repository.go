package volunteer

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	GetByID(ctx context.Context, id uint) (*Volunteer, error)
	List(ctx context.Context, search string, organizationID *uint, limit, page int) ([]Volunteer, int64, error)
	AddPoints(ctx context.Context, id uint, points int) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Volunteer, error) {
	var v Volunteer
	err := r.db.WithContext(ctx).First(&v, id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) List(ctx context.Context, search string, organizationID *uint, limit, page int) ([]Volunteer, int64, error) {
	var volunteers []Volunteer
	var total int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&Volunteer{})

	if search != "" {
		ilike := "%" + search + "%"
		query = query.Where("full_name ILIKE ? OR email ILIKE ?", ilike, ilike)
	}
	if organizationID != nil {
		query = query.Where("organization_id = ?", *organizationID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("points DESC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&volunteers).Error
	if err != nil {
		return nil, 0, err
	}

	return volunteers, total, nil
}

func (r *repository) AddPoints(ctx context.Context, id uint, points int) error {
	return r.db.WithContext(ctx).Model(&Volunteer{}).
		Where("id = ?", id).
		Update("points", gorm.Expr("points + ?", points)).Error
}
