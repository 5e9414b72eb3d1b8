package campaign

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/trongdat-dev/volunteer-hub-backend/internal/activitylog"
)

type Service struct {
	Repo        Repository
	ActivitySvc activitylog.Service
}

func NewService(r Repository, activitySvc activitylog.Service) *Service {
	return &Service{Repo: r, ActivitySvc: activitySvc}
}

func (s *Service) List(ctx context.Context, filter ListFilter) (*PaginatedCampaigns, error) {
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	campaigns, total, err := s.Repo.ListWithFilters(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &PaginatedCampaigns{
		Data:       campaigns,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (*Campaign, error) {
	return s.Repo.GetByID(ctx, id)
}

// Review decides a pending campaign. Only PENDING campaigns move, and the
// only admissible outcomes are APPROVED and REJECTED.
func (s *Service) Review(ctx context.Context, id uint, req ApproveRequest, adminID uint, ip string) error {
	if req.Status != StatusApproved && req.Status != StatusRejected {
		return fmt.Errorf("status must be %s or %s", StatusApproved, StatusRejected)
	}

	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return errors.New("campaign not found")
	}

	if c.Status != StatusPending {
		s.logReview(ctx, adminID, c, req.Status, ip, "failure")
		return fmt.Errorf("only pending campaigns can be reviewed, current status is %s", c.Status)
	}

	if err := s.Repo.UpdateStatus(ctx, id, req.Status); err != nil {
		s.logReview(ctx, adminID, c, req.Status, ip, "failure")
		return err
	}

	s.logReview(ctx, adminID, c, req.Status, ip, "success")
	return nil
}

func (s *Service) logReview(ctx context.Context, adminID uint, c *Campaign, newStatus, ip, status string) {
	_ = s.ActivitySvc.LogAction(ctx, &adminID, &c.OrganizationID, "CAMPAIGN_REVIEWED",
		map[string]interface{}{
			"campaign_id": c.ID,
			"title":       c.Title,
			"from":        c.Status,
			"to":          newStatus,
		},
		ip, status)
}
