package organization

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/trongdat-dev/volunteer-hub-backend/internal/activitylog"
	"github.com/trongdat-dev/volunteer-hub-backend/utils"
)

type Service struct {
	Repo        Repository
	ActivitySvc activitylog.Service
}

func NewService(r Repository, activitySvc activitylog.Service) *Service {
	return &Service{Repo: r, ActivitySvc: activitySvc}
}

// List returns a page of organizations with volunteer counts attached.
func (s *Service) List(ctx context.Context, search, status string, limit, page int) (*PaginatedOrganizations, error) {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}

	orgs, total, err := s.Repo.ListWithFilters(ctx, search, status, limit, page)
	if err != nil {
		return nil, err
	}

	for i := range orgs {
		count, _ := s.Repo.CountVolunteers(ctx, orgs[i].ID)
		orgs[i].VolunteerCount = int(count)
	}

	return &PaginatedOrganizations{
		Data:       orgs,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (*Organization, error) {
	org, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	count, _ := s.Repo.CountVolunteers(ctx, org.ID)
	org.VolunteerCount = int(count)
	return org, nil
}

// UpdateStatus applies an admin status change. Only the ACTIVE↔BANNED toggle
// is allowed: PENDING and DENIED organizations sit in the registration
// workflow and cannot be toggled from the management screen.
func (s *Service) UpdateStatus(ctx context.Context, id uint, req UpdateStatusRequest, adminID uint, ip string) error {
	org, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return errors.New("organization not found")
	}

	if org.Status == StatusPending || org.Status == StatusDenied {
		s.logStatusChange(ctx, adminID, id, org.Status, req.Status, ip, "failure")
		return fmt.Errorf("organization in status %s cannot be toggled", org.Status)
	}

	validTransition := (org.Status == StatusActive && req.Status == StatusBanned) ||
		(org.Status == StatusBanned && req.Status == StatusActive)
	if !validTransition {
		s.logStatusChange(ctx, adminID, id, org.Status, req.Status, ip, "failure")
		return fmt.Errorf("invalid status transition %s → %s", org.Status, req.Status)
	}

	if err := s.Repo.UpdateStatus(ctx, id, req.Status); err != nil {
		s.logStatusChange(ctx, adminID, id, org.Status, req.Status, ip, "failure")
		return err
	}

	s.logStatusChange(ctx, adminID, id, org.Status, req.Status, ip, "success")

	switch req.Status {
	case StatusBanned:
		utils.SendOrganizationBanEmail(org.Email, org.Name, req.Reason)
	case StatusActive:
		utils.SendOrganizationApprovalEmail(org.Email, org.Name)
	}

	return nil
}

func (s *Service) logStatusChange(ctx context.Context, adminID, orgID uint, from, to, ip, status string) {
	_ = s.ActivitySvc.LogAction(ctx, &adminID, &orgID, "ORGANIZATION_STATUS_CHANGED",
		map[string]interface{}{
			"from": from,
			"to":   to,
		},
		ip, status)
}
