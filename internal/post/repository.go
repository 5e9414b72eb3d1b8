package post

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, p *Post) error
	GetByID(ctx context.Context, id uint) (*Post, error)
	List(ctx context.Context, search string, organizationID *uint, limit, page int) ([]Post, int64, error)
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Post, error) {
	var p Post
	err := r.db.WithContext(ctx).Preload("Organization").First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context, search string, organizationID *uint, limit, page int) ([]Post, int64, error) {
	var posts []Post
	var total int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&Post{})

	if search != "" {
		query = query.Where("title ILIKE ?", "%"+search+"%")
	}
	if organizationID != nil {
		query = query.Where("organization_id = ?", *organizationID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Organization").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *repository) Update(ctx context.Context, p *Post) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Post{}, id).Error
}
