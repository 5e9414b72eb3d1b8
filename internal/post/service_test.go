package post

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trongdat-dev/volunteer-hub-backend/internal/activitylog"
	"github.com/trongdat-dev/volunteer-hub-backend/middleware"
)

type fakeRepo struct {
	posts  map[uint]*Post
	nextID uint
}

func newFakeRepo(ps ...*Post) *fakeRepo {
	m := make(map[uint]*Post)
	var max uint
	for _, p := range ps {
		m[p.ID] = p
		if p.ID > max {
			max = p.ID
		}
	}
	return &fakeRepo{posts: m, nextID: max + 1}
}

func (f *fakeRepo) Create(_ context.Context, p *Post) error {
	p.ID = f.nextID
	f.nextID++
	f.posts[p.ID] = p
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uint) (*Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *p
	return &cp, nil
}

func (f *fakeRepo) List(_ context.Context, _ string, _ *uint, limit, page int) ([]Post, int64, error) {
	var all []Post
	for _, p := range f.posts {
		all = append(all, *p)
	}
	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return []Post{}, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (f *fakeRepo) Update(_ context.Context, p *Post) error {
	if _, ok := f.posts[p.ID]; !ok {
		return errors.New("record not found")
	}
	cp := *p
	f.posts[p.ID] = &cp
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.posts[id]; !ok {
		return errors.New("record not found")
	}
	delete(f.posts, id)
	return nil
}

type noopActivity struct{}

func (noopActivity) LogAction(context.Context, *uint, *uint, string, map[string]interface{}, string, string) error {
	return nil
}

func (noopActivity) GetActivityLogs(context.Context, activitylog.ActivityLogFilter) (*activitylog.PaginatedActivityLogs, error) {
	return nil, nil
}

func (noopActivity) GetRecent(context.Context, int) ([]activitylog.ActivityLogResponse, error) {
	return nil, nil
}

func orgContext(userID, orgID uint) middleware.AccessContext {
	return middleware.AccessContext{
		UserID:         userID,
		RoleName:       middleware.RoleOrganization,
		OrganizationID: &orgID,
		PermissionType: "full",
	}
}

func adminContext(userID uint) middleware.AccessContext {
	return middleware.AccessContext{
		UserID:         userID,
		RoleName:       middleware.RoleAdmin,
		PermissionType: "full",
	}
}

func TestCreateRejectsForeignOrganization(t *testing.T) {
	svc := NewService(newFakeRepo(), noopActivity{})

	_, err := svc.Create(context.Background(), CreatePostRequest{
		Title:          "Beach cleanup recap",
		Content:        "...",
		OrganizationID: 8,
	}, orgContext(5, 3), "")
	assert.Error(t, err)
}

func TestCreateByOwnOrganization(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, noopActivity{})

	p, err := svc.Create(context.Background(), CreatePostRequest{
		Title:          "Beach cleanup recap",
		Content:        "...",
		OrganizationID: 3,
	}, orgContext(5, 3), "")
	require.NoError(t, err)
	assert.Equal(t, uint(3), p.OrganizationID)
}

func TestUpdateRejectsForeignOrganization(t *testing.T) {
	repo := newFakeRepo(&Post{ID: 1, Title: "orig", OrganizationID: 3})
	svc := NewService(repo, noopActivity{})

	_, err := svc.Update(context.Background(), 1, UpdatePostRequest{Title: "hijacked"}, orgContext(5, 8), "")
	require.Error(t, err)

	p, _ := repo.GetByID(context.Background(), 1)
	assert.Equal(t, "orig", p.Title, "title must be unchanged")
}

func TestDeleteRejectsForeignOrganization(t *testing.T) {
	repo := newFakeRepo(&Post{ID: 1, OrganizationID: 3})
	svc := NewService(repo, noopActivity{})

	err := svc.Delete(context.Background(), 1, orgContext(5, 8), "")
	require.Error(t, err)

	_, err = repo.GetByID(context.Background(), 1)
	assert.NoError(t, err)
}

func TestAdminMutatesAnyOrganization(t *testing.T) {
	repo := newFakeRepo(&Post{ID: 1, Title: "orig", OrganizationID: 3})
	svc := NewService(repo, noopActivity{})

	p, err := svc.Update(context.Background(), 1, UpdatePostRequest{Title: "moderated"}, adminContext(9), "")
	require.NoError(t, err)
	assert.Equal(t, "moderated", p.Title)

	require.NoError(t, svc.Delete(context.Background(), 1, adminContext(9), ""))
}

func TestUpdatePartialFields(t *testing.T) {
	repo := newFakeRepo(&Post{ID: 1, Title: "orig", Content: "body", CoverImageURL: "/uploads/a.png", OrganizationID: 3})
	svc := NewService(repo, noopActivity{})

	p, err := svc.Update(context.Background(), 1, UpdatePostRequest{Content: "new body"}, orgContext(5, 3), "")
	require.NoError(t, err)
	assert.Equal(t, "orig", p.Title)
	assert.Equal(t, "new body", p.Content)
	assert.Equal(t, "/uploads/a.png", p.CoverImageURL)
}
