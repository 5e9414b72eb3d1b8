package comment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/trongdat-dev/volunteer-hub-backend/internal/activitylog"
	"github.com/trongdat-dev/volunteer-hub-backend/internal/volunteer"
	"github.com/trongdat-dev/volunteer-hub-backend/middleware"
)

// VolunteerSource resolves the volunteer a review is about.
type VolunteerSource interface {
	GetByID(ctx context.Context, id uint) (*volunteer.Volunteer, error)
}

type Service struct {
	Repo        Repository
	Volunteers  VolunteerSource
	ActivitySvc activitylog.Service
}

func NewService(r Repository, volunteers VolunteerSource, activitySvc activitylog.Service) *Service {
	return &Service{Repo: r, Volunteers: volunteers, ActivitySvc: activitySvc}
}

func (s *Service) List(ctx context.Context, volunteerID *uint, limit, page int) (*PaginatedComments, error) {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}

	comments, total, err := s.Repo.List(ctx, volunteerID, limit, page)
	if err != nil {
		return nil, err
	}

	return &PaginatedComments{
		Data:       comments,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

// Create records a review of the given volunteer authored by the caller's
// organization. The volunteer is resolved explicitly; the caller's own
// account id never enters the volunteer column.
func (s *Service) Create(ctx context.Context, req CreateCommentRequest, ac middleware.AccessContext, ip string) (*Comment, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5, got %d", req.Rating)
	}
	if ac.OrganizationID == nil {
		return nil, errors.New("account is not linked to an organization")
	}

	v, err := s.Volunteers.GetByID(ctx, req.VolunteerID)
	if err != nil {
		return nil, errors.New("volunteer not found")
	}

	cm := &Comment{
		VolunteerID:    v.ID,
		OrganizationID: *ac.OrganizationID,
		Content:        req.Content,
		Rating:         req.Rating,
	}

	if err := s.Repo.Create(ctx, cm); err != nil {
		return nil, err
	}
	cm.VolunteerName = v.FullName

	_ = s.ActivitySvc.LogAction(ctx, &ac.UserID, ac.OrganizationID, "COMMENT_CREATED",
		map[string]interface{}{"comment_id": cm.ID, "volunteer_id": cm.VolunteerID, "rating": cm.Rating},
		ip, "success")

	return cm, nil
}

// Delete removes a review. An organization may only delete its own reviews;
// admins may delete any.
func (s *Service) Delete(ctx context.Context, id uint, ac middleware.AccessContext, ip string) error {
	cm, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return errors.New("comment not found")
	}

	if !ac.CanAccessOrganization(cm.OrganizationID) {
		return errors.New("comment belongs to another organization")
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.ActivitySvc.LogAction(ctx, &ac.UserID, ac.OrganizationID, "COMMENT_DELETED",
		map[string]interface{}{"comment_id": cm.ID, "volunteer_id": cm.VolunteerID},
		ip, "success")

	return nil
}
