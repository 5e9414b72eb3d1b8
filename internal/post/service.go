package post

import (
	"context"
	"errors"
	"math"

	"github.com/trongdat-dev/volunteer-hub-backend/internal/activitylog"
	"github.com/trongdat-dev/volunteer-hub-backend/middleware"
)

type Service struct {
	Repo        Repository
	ActivitySvc activitylog.Service
}

func NewService(r Repository, activitySvc activitylog.Service) *Service {
	return &Service{Repo: r, ActivitySvc: activitySvc}
}

func (s *Service) List(ctx context.Context, search string, organizationID *uint, limit, page int) (*PaginatedPosts, error) {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}

	posts, total, err := s.Repo.List(ctx, search, organizationID, limit, page)
	if err != nil {
		return nil, err
	}

	return &PaginatedPosts{
		Data:       posts,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (*Post, error) {
	return s.Repo.GetByID(ctx, id)
}

// Create publishes a post on behalf of an organization. Organization
// accounts may only post under their own organization; admins under any.
func (s *Service) Create(ctx context.Context, req CreatePostRequest, ac middleware.AccessContext, ip string) (*Post, error) {
	if !ac.CanAccessOrganization(req.OrganizationID) {
		return nil, errors.New("cannot post for another organization")
	}

	p := &Post{
		Title:          req.Title,
		Content:        req.Content,
		CoverImageURL:  req.CoverImageURL,
		OrganizationID: req.OrganizationID,
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}

	_ = s.ActivitySvc.LogAction(ctx, &ac.UserID, &p.OrganizationID, "POST_CREATED",
		map[string]interface{}{"post_id": p.ID, "title": p.Title}, ip, "success")

	return p, nil
}

func (s *Service) Update(ctx context.Context, id uint, req UpdatePostRequest, ac middleware.AccessContext, ip string) (*Post, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("post not found")
	}
	if !ac.CanAccessOrganization(p.OrganizationID) {
		return nil, errors.New("post belongs to another organization")
	}

	if req.Title != "" {
		p.Title = req.Title
	}
	if req.Content != "" {
		p.Content = req.Content
	}
	if req.CoverImageURL != "" {
		p.CoverImageURL = req.CoverImageURL
	}

	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}

	_ = s.ActivitySvc.LogAction(ctx, &ac.UserID, &p.OrganizationID, "POST_UPDATED",
		map[string]interface{}{"post_id": p.ID, "title": p.Title}, ip, "success")

	return p, nil
}

func (s *Service) Delete(ctx context.Context, id uint, ac middleware.AccessContext, ip string) error {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return errors.New("post not found")
	}
	if !ac.CanAccessOrganization(p.OrganizationID) {
		return errors.New("post belongs to another organization")
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.ActivitySvc.LogAction(ctx, &ac.UserID, &p.OrganizationID, "POST_DELETED",
		map[string]interface{}{"post_id": p.ID, "title": p.Title}, ip, "success")

	return nil
}
