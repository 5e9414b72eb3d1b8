package emergency

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trongdat-dev/volunteer-hub-backend/internal/activitylog"
)

type fakeRepo struct {
	requests map[uint]*Request
	nextID   uint
}

func newFakeRepo(rs ...*Request) *fakeRepo {
	m := make(map[uint]*Request)
	var max uint
	for _, r := range rs {
		m[r.ID] = r
		if r.ID > max {
			max = r.ID
		}
	}
	return &fakeRepo{requests: m, nextID: max + 1}
}

func (f *fakeRepo) Create(_ context.Context, r *Request) error {
	r.ID = f.nextID
	f.nextID++
	f.requests[r.ID] = r
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uint) (*Request, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRepo) ListByStatus(_ context.Context, status string) ([]Request, error) {
	var out []Request
	for _, r := range f.requests {
		if status == "" || r.Status == status {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, r *Request) error {
	if _, ok := f.requests[r.ID]; !ok {
		return errors.New("record not found")
	}
	cp := *r
	f.requests[r.ID] = &cp
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

func TestCreateStoresRequestAsNew(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, nil, noopActivity{})

	r, err := svc.Create(context.Background(), CreateRequest{
		BeneficiaryID: 7,
		Beneficiary:   BeneficiarySnapshot{ID: 7, FullName: "Nguyen Van A", Phone: "0901", Address: "District 1"},
		Message:       "flooding",
	}, "10.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, StatusNew, r.Status)
	assert.NotZero(t, r.ID)

	stored, _ := repo.GetByID(context.Background(), r.ID)
	assert.JSONEq(t, `{"id":7,"full_name":"Nguyen Van A","phone":"0901","address":"District 1"}`, string(stored.Beneficiary))
}

func TestUpdateStatusCompletesNewRequest(t *testing.T) {
	repo := newFakeRepo(&Request{ID: 1, Status: StatusNew})
	svc := NewService(repo, nil, nil, noopActivity{})

	err := svc.UpdateStatus(context.Background(), 1, UpdateStatusRequest{Status: StatusCompleted}, 9, "")
	require.NoError(t, err)

	r, _ := repo.GetByID(context.Background(), 1)
	assert.Equal(t, StatusCompleted, r.Status)
	require.NotNil(t, r.CompletedBy)
	assert.Equal(t, uint(9), *r.CompletedBy)
	assert.NotNil(t, r.CompletedAt)
}

func TestUpdateStatusRejectsCompletedRequest(t *testing.T) {
	repo := newFakeRepo(&Request{ID: 1, Status: StatusCompleted})
	svc := NewService(repo, nil, nil, noopActivity{})

	err := svc.UpdateStatus(context.Background(), 1, UpdateStatusRequest{Status: StatusCompleted}, 9, "")
	assert.Error(t, err)
}

func TestUpdateStatusRejectsReopening(t *testing.T) {
	repo := newFakeRepo(&Request{ID: 1, Status: StatusCompleted})
	svc := NewService(repo, nil, nil, noopActivity{})

	err := svc.UpdateStatus(context.Background(), 1, UpdateStatusRequest{Status: StatusNew}, 9, "")
	assert.Error(t, err)
}

func TestListByStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewService(newFakeRepo(), nil, nil, noopActivity{})
	_, err := svc.ListByStatus(context.Background(), "PENDING")
	assert.Error(t, err)
}

func TestListByStatusFilters(t *testing.T) {
	repo := newFakeRepo(
		&Request{ID: 1, Status: StatusNew},
		&Request{ID: 2, Status: StatusCompleted},
		&Request{ID: 3, Status: StatusNew},
	)
	svc := NewService(repo, nil, nil, noopActivity{})

	news, err := svc.ListByStatus(context.Background(), StatusNew)
	require.NoError(t, err)
	assert.Len(t, news, 2)

	all, err := svc.ListByStatus(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
