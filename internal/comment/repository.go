package comment

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, cm *Comment) error
	GetByID(ctx context.Context, id uint) (*Comment, error)
	List(ctx context.Context, volunteerID *uint, limit, page int) ([]Comment, int64, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, cm *Comment) error {
	return r.db.WithContext(ctx).Create(cm).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Comment, error) {
	var cm Comment
	err := r.db.WithContext(ctx).First(&cm, id).Error
	if err != nil {
		return nil, err
	}
	return &cm, nil
}

func (r *repository) List(ctx context.Context, volunteerID *uint, limit, page int) ([]Comment, int64, error) {
	var comments []Comment
	var total int64

	offset := (page - 1) * limit

	countQuery := r.db.WithContext(ctx).Model(&Comment{})
	if volunteerID != nil {
		countQuery = countQuery.Where("volunteer_id = ?", *volunteerID)
	}
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.*, volunteers.full_name AS volunteer_name").
		Joins("LEFT JOIN volunteers ON volunteers.id = comments.volunteer_id")
	if volunteerID != nil {
		query = query.Where("comments.volunteer_id = ?", *volunteerID)
	}

	err := query.Order("comments.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&comments).Error
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Comment{}, id).Error
}
