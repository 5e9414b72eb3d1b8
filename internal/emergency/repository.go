package emergency

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, req *Request) error
	GetByID(ctx context.Context, id uint) (*Request, error)
	ListByStatus(ctx context.Context, status string) ([]Request, error)
	Update(ctx context.Context, req *Request) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req *Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Request, error) {
	var req Request
	err := r.db.WithContext(ctx).First(&req, id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *repository) ListByStatus(ctx context.Context, status string) ([]Request, error) {
	var requests []Request
	query := r.db.WithContext(ctx).Model(&Request{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *repository) Update(ctx context.Context, req *Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}
