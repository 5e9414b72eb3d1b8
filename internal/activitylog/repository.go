package activitylog

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, log *ActivityLog) error
	GetByFilter(ctx context.Context, filter ActivityLogFilter) ([]ActivityLogResponse, int64, error)
	GetRecent(ctx context.Context, limit int) ([]ActivityLogResponse, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, log *ActivityLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// GetByFilter retrieves activity logs with filtering and pagination
func (r *repository) GetByFilter(ctx context.Context, filter ActivityLogFilter) ([]ActivityLogResponse, int64, error) {
	var logs []ActivityLogResponse
	var total int64

	query := r.db.WithContext(ctx).
		Table("activity_logs al").
		Select(`
			al.id, al.user_id, al.organization_id, al.action,
			al.details, al.ip_address, al.status, al.created_at,
			u.full_name as user_name
		`).
		Joins("LEFT JOIN users u ON al.user_id = u.id")

	if filter.UserID != nil {
		query = query.Where("al.user_id = ?", *filter.UserID)
	}
	if filter.OrganizationID != nil {
		query = query.Where("al.organization_id = ?", *filter.OrganizationID)
	}
	if filter.Action != "" {
		query = query.Where("al.action ILIKE ?", "%"+filter.Action+"%")
	}
	if filter.Status != "" {
		query = query.Where("al.status = ?", filter.Status)
	}
	if filter.FromDate != nil {
		query = query.Where("al.created_at >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("al.created_at <= ?", *filter.ToDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	query = query.Order("al.created_at DESC").
		Limit(filter.Limit).
		Offset(offset)

	if err := query.Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// GetRecent returns the newest entries, capped at limit.
func (r *repository) GetRecent(ctx context.Context, limit int) ([]ActivityLogResponse, error) {
	var logs []ActivityLogResponse
	err := r.db.WithContext(ctx).
		Table("activity_logs al").
		Select(`
			al.id, al.user_id, al.organization_id, al.action,
			al.details, al.ip_address, al.status, al.created_at,
			u.full_name as user_name
		`).
		Joins("LEFT JOIN users u ON al.user_id = u.id").
		Order("al.created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
