package reports

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FetchCampaignRows(ctx context.Context, status string) ([]CampaignReportRow, error)
	FetchVolunteerRows(ctx context.Context, organizationID *uint) ([]VolunteerReportRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FetchCampaignRows(ctx context.Context, status string) ([]CampaignReportRow, error) {
	var rows []CampaignReportRow

	query := r.db.WithContext(ctx).
		Table("campaigns").
		Select(`campaigns.id, campaigns.title, organizations.name AS organization_name,
			campaigns.status, campaigns.current_volunteers AS volunteer_count,
			campaigns.max_volunteers, campaigns.created_at`).
		Joins("LEFT JOIN organizations ON organizations.id = campaigns.organization_id")

	if status != "" {
		query = query.Where("campaigns.status = ?", status)
	}

	err := query.Order("campaigns.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *repository) FetchVolunteerRows(ctx context.Context, organizationID *uint) ([]VolunteerReportRow, error) {
	var rows []VolunteerReportRow

	query := r.db.WithContext(ctx).
		Table("volunteers").
		Select(`volunteers.id, volunteers.full_name, volunteers.email, volunteers.phone,
			organizations.name AS organization_name, volunteers.points,
			volunteers.created_at AS joined_at`).
		Joins("LEFT JOIN organizations ON organizations.id = volunteers.organization_id")

	if organizationID != nil {
		query = query.Where("volunteers.organization_id = ?", *organizationID)
	}

	err := query.Order("volunteers.points DESC").Scan(&rows).Error
	return rows, err
}
