package certificate

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	CreateTemplate(ctx context.Context, t *Template) error
	GetTemplate(ctx context.Context, id uint) (*Template, error)
	ListTemplates(ctx context.Context, limit, page int) ([]Template, int64, error)
	DeleteTemplate(ctx context.Context, id uint) error

	CreateIssued(ctx context.Context, ic *IssuedCertificate) error
	UpdateIssued(ctx context.Context, ic *IssuedCertificate) error
	ListIssued(ctx context.Context, volunteerID *uint, limit, page int) ([]IssuedCertificate, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateTemplate(ctx context.Context, t *Template) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) GetTemplate(ctx context.Context, id uint) (*Template, error) {
	var t Template
	err := r.db.WithContext(ctx).First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) ListTemplates(ctx context.Context, limit, page int) ([]Template, int64, error) {
	var templates []Template
	var total int64

	if err := r.db.WithContext(ctx).Model(&Template{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&templates).Error
	if err != nil {
		return nil, 0, err
	}

	return templates, total, nil
}

func (r *repository) DeleteTemplate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Template{}, id).Error
}

func (r *repository) CreateIssued(ctx context.Context, ic *IssuedCertificate) error {
	return r.db.WithContext(ctx).Create(ic).Error
}

func (r *repository) UpdateIssued(ctx context.Context, ic *IssuedCertificate) error {
	return r.db.WithContext(ctx).Save(ic).Error
}

func (r *repository) ListIssued(ctx context.Context, volunteerID *uint, limit, page int) ([]IssuedCertificate, int64, error) {
	var issued []IssuedCertificate
	var total int64

	query := r.db.WithContext(ctx).Model(&IssuedCertificate{})
	if volunteerID != nil {
		query = query.Where("volunteer_id = ?", *volunteerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&issued).Error
	if err != nil {
		return nil, 0, err
	}

	return issued, total, nil
}
