package comment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trongdat-dev/volunteer-hub-backend/internal/activitylog"
	"github.com/trongdat-dev/volunteer-hub-backend/internal/volunteer"
	"github.com/trongdat-dev/volunteer-hub-backend/middleware"
)

type fakeRepo struct {
	comments map[uint]*Comment
	nextID   uint
}

func newFakeRepo(cms ...*Comment) *fakeRepo {
	m := make(map[uint]*Comment)
	var max uint
	for _, cm := range cms {
		m[cm.ID] = cm
		if cm.ID > max {
			max = cm.ID
		}
	}
	return &fakeRepo{comments: m, nextID: max + 1}
}

func (f *fakeRepo) Create(_ context.Context, cm *Comment) error {
	cm.ID = f.nextID
	f.nextID++
	f.comments[cm.ID] = cm
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uint) (*Comment, error) {
	cm, ok := f.comments[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *cm
	return &cp, nil
}

func (f *fakeRepo) List(_ context.Context, volunteerID *uint, limit, page int) ([]Comment, int64, error) {
	var all []Comment
	for _, cm := range f.comments {
		if volunteerID != nil && cm.VolunteerID != *volunteerID {
			continue
		}
		all = append(all, *cm)
	}
	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return []Comment{}, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.comments[id]; !ok {
		return errors.New("record not found")
	}
	delete(f.comments, id)
	return nil
}

type fakeVolunteers struct {
	volunteers map[uint]*volunteer.Volunteer
}

func (f *fakeVolunteers) GetByID(_ context.Context, id uint) (*volunteer.Volunteer, error) {
	v, ok := f.volunteers[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return v, nil
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

func TestCreateStoresResolvedVolunteerNotCaller(t *testing.T) {
	repo := newFakeRepo()
	// The org account's users.id (5) deliberately collides with an existing
	// volunteers.id to show the two identifier spaces stay separate.
	vols := &fakeVolunteers{volunteers: map[uint]*volunteer.Volunteer{
		5:  {ID: 5, FullName: "Unrelated Volunteer"},
		12: {ID: 12, FullName: "Tran Thi B"},
	}}
	svc := NewService(repo, vols, noopActivity{})

	cm, err := svc.Create(context.Background(), CreateCommentRequest{
		VolunteerID: 12,
		Content:     "Reliable and punctual",
		Rating:      5,
	}, orgContext(5, 3), "10.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, uint(12), cm.VolunteerID)
	assert.Equal(t, uint(3), cm.OrganizationID)
	assert.Equal(t, "Tran Thi B", cm.VolunteerName)
}

func TestCreateRejectsUnknownVolunteer(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeVolunteers{volunteers: map[uint]*volunteer.Volunteer{}}, noopActivity{})

	_, err := svc.Create(context.Background(), CreateCommentRequest{
		VolunteerID: 99,
		Content:     "great",
		Rating:      4,
	}, orgContext(5, 3), "")
	assert.Error(t, err)
}

func TestCreateRejectsAccountWithoutOrganization(t *testing.T) {
	vols := &fakeVolunteers{volunteers: map[uint]*volunteer.Volunteer{1: {ID: 1}}}
	svc := NewService(newFakeRepo(), vols, noopActivity{})

	ac := middleware.AccessContext{UserID: 5, RoleName: middleware.RoleOrganization, PermissionType: "full"}
	_, err := svc.Create(context.Background(), CreateCommentRequest{VolunteerID: 1, Content: "ok", Rating: 3}, ac, "")
	assert.Error(t, err)
}

func TestCreateRejectsOutOfRangeRating(t *testing.T) {
	vols := &fakeVolunteers{volunteers: map[uint]*volunteer.Volunteer{1: {ID: 1}}}
	svc := NewService(newFakeRepo(), vols, noopActivity{})

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), CreateCommentRequest{
			VolunteerID: 1,
			Content:     "x",
			Rating:      rating,
		}, orgContext(5, 3), "")
		require.Error(t, err, "rating %d must be rejected", rating)
	}
}

func TestDeleteByOwningOrganization(t *testing.T) {
	repo := newFakeRepo(&Comment{ID: 1, VolunteerID: 12, OrganizationID: 3})
	svc := NewService(repo, &fakeVolunteers{}, noopActivity{})

	err := svc.Delete(context.Background(), 1, orgContext(5, 3), "")
	require.NoError(t, err)

	_, err = repo.GetByID(context.Background(), 1)
	assert.Error(t, err)
}

func TestDeleteRejectsOtherOrganization(t *testing.T) {
	repo := newFakeRepo(&Comment{ID: 1, VolunteerID: 12, OrganizationID: 3})
	svc := NewService(repo, &fakeVolunteers{}, noopActivity{})

	err := svc.Delete(context.Background(), 1, orgContext(5, 8), "")
	require.Error(t, err)

	_, err = repo.GetByID(context.Background(), 1)
	assert.NoError(t, err, "comment must survive a foreign delete attempt")
}

func TestDeleteByAdmin(t *testing.T) {
	repo := newFakeRepo(&Comment{ID: 1, VolunteerID: 12, OrganizationID: 3})
	svc := NewService(repo, &fakeVolunteers{}, noopActivity{})

	ac := middleware.AccessContext{UserID: 9, RoleName: middleware.RoleAdmin, PermissionType: "full"}
	err := svc.Delete(context.Background(), 1, ac, "")
	require.NoError(t, err)
}

func TestListFiltersByVolunteer(t *testing.T) {
	repo := newFakeRepo(
		&Comment{ID: 1, VolunteerID: 12, OrganizationID: 3},
		&Comment{ID: 2, VolunteerID: 12, OrganizationID: 8},
		&Comment{ID: 3, VolunteerID: 7, OrganizationID: 3},
	)
	svc := NewService(repo, &fakeVolunteers{}, noopActivity{})

	vid := uint(12)
	page, err := svc.List(context.Background(), &vid, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	all, err := svc.List(context.Background(), nil, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Total)
}
