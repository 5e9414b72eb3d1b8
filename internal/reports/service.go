package reports

import (
	"context"
	"fmt"
)

type Service interface {
	// BuildReport fetches rows for the requested report and renders them.
	BuildReport(ctx context.Context, reportType, format string, filter Filter) ([]byte, string, string, error)
}

// Filter narrows the exported rows.
type Filter struct {
	CampaignStatus string
	OrganizationID *uint
}

type service struct {
	repo     Repository
	exporter Exporter
}

func NewService(repo Repository, exporter Exporter) Service {
	return &service{repo: repo, exporter: exporter}
}

func (s *service) BuildReport(ctx context.Context, reportType, format string, filter Filter) ([]byte, string, string, error) {
	var data ReportData

	switch reportType {
	case ReportTypeCampaigns:
		rows, err := s.repo.FetchCampaignRows(ctx, filter.CampaignStatus)
		if err != nil {
			return nil, "", "", err
		}
		data.Campaigns = rows
	case ReportTypeVolunteers:
		rows, err := s.repo.FetchVolunteerRows(ctx, filter.OrganizationID)
		if err != nil {
			return nil, "", "", err
		}
		data.Volunteers = rows
	default:
		return nil, "", "", fmt.Errorf("unsupported report type: %s", reportType)
	}

	return s.exporter.Export(reportType, format, data)
}
