package volunteer

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

func (s *Service) List(ctx context.Context, search string, organizationID *uint, limit, page int) (*PaginatedVolunteers, error) {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}

	volunteers, total, err := s.Repo.List(ctx, search, organizationID, limit, page)
	if err != nil {
		return nil, err
	}

	return &PaginatedVolunteers{
		Data:       volunteers,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (*Volunteer, error) {
	return s.Repo.GetByID(ctx, id)
}

// AwardPoints credits reward points to a volunteer, typically after a
// campaign they worked on completes.
func (s *Service) AwardPoints(ctx context.Context, id uint, req AwardPointsRequest, userID uint, ip string) (*Volunteer, error) {
	if req.Points <= 0 {
		return nil, fmt.Errorf("points must be positive, got %d", req.Points)
	}

	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return nil, errors.New("volunteer not found")
	}

	if err := s.Repo.AddPoints(ctx, id, req.Points); err != nil {
		return nil, err
	}

	v, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	_ = s.ActivitySvc.LogAction(ctx, &userID, v.OrganizationID, "POINTS_AWARDED",
		map[string]interface{}{"volunteer_id": v.ID, "points": req.Points, "reason": req.Reason},
		ip, "success")

	return v, nil
}
