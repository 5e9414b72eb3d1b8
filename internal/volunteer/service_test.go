package volunteer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trongdat-dev/volunteer-hub-backend/internal/activitylog"
)

type fakeRepo struct {
	volunteers map[uint]*Volunteer
}

func newFakeRepo(vs ...*Volunteer) *fakeRepo {
	m := make(map[uint]*Volunteer)
	for _, v := range vs {
		m[v.ID] = v
	}
	return &fakeRepo{volunteers: m}
}

func (f *fakeRepo) GetByID(_ context.Context, id uint) (*Volunteer, error) {
	v, ok := f.volunteers[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *v
	return &cp, nil
}

func (f *fakeRepo) List(_ context.Context, _ string, _ *uint, limit, page int) ([]Volunteer, int64, error) {
	var all []Volunteer
	for _, v := range f.volunteers {
		all = append(all, *v)
	}
	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return []Volunteer{}, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (f *fakeRepo) AddPoints(_ context.Context, id uint, points int) error {
	v, ok := f.volunteers[id]
	if !ok {
		return errors.New("record not found")
	}
	v.Points += points
	return nil
}

type recordingActivity struct {
	actions []string
}

func (r *recordingActivity) LogAction(_ context.Context, _ *uint, _ *uint, action string, _ map[string]interface{}, _ string, _ string) error {
	r.actions = append(r.actions, action)
	return nil
}

func (r *recordingActivity) GetActivityLogs(context.Context, activitylog.ActivityLogFilter) (*activitylog.PaginatedActivityLogs, error) {
	return nil, nil
}

func (r *recordingActivity) GetRecent(context.Context, int) ([]activitylog.ActivityLogResponse, error) {
	return nil, nil
}

func TestAwardPointsAccumulates(t *testing.T) {
	repo := newFakeRepo(&Volunteer{ID: 12, FullName: "Tran Thi B", Points: 100})
	activity := &recordingActivity{}
	svc := NewService(repo, activity)

	v, err := svc.AwardPoints(context.Background(), 12, AwardPointsRequest{Points: 25, Reason: "campaign completed"}, 9, "10.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, 125, v.Points)
	require.Len(t, activity.actions, 1)
	assert.Equal(t, "POINTS_AWARDED", activity.actions[0])
}

func TestAwardPointsRejectsNonPositive(t *testing.T) {
	repo := newFakeRepo(&Volunteer{ID: 12, Points: 100})
	svc := NewService(repo, &recordingActivity{})

	for _, points := range []int{0, -10} {
		_, err := svc.AwardPoints(context.Background(), 12, AwardPointsRequest{Points: points}, 9, "")
		require.Error(t, err, "points %d must be rejected", points)
	}

	v, _ := repo.GetByID(context.Background(), 12)
	assert.Equal(t, 100, v.Points, "points must be unchanged")
}

func TestAwardPointsUnknownVolunteer(t *testing.T) {
	svc := NewService(newFakeRepo(), &recordingActivity{})
	_, err := svc.AwardPoints(context.Background(), 42, AwardPointsRequest{Points: 10}, 9, "")
	assert.Error(t, err)
}
