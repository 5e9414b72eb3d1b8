package activitylog

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	entries []*ActivityLog
}

func (f *fakeRepo) Create(_ context.Context, entry *ActivityLog) error {
	entry.ID = uint(len(f.entries) + 1)
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeRepo) GetByFilter(_ context.Context, filter ActivityLogFilter) ([]ActivityLogResponse, int64, error) {
	var all []ActivityLogResponse
	for _, e := range f.entries {
		if filter.Action != "" && e.Action != filter.Action {
			continue
		}
		all = append(all, ActivityLogResponse{ID: e.ID, Action: e.Action, Status: e.Status})
	}
	total := int64(len(all))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (f *fakeRepo) GetRecent(_ context.Context, limit int) ([]ActivityLogResponse, error) {
	var out []ActivityLogResponse
	for i := len(f.entries) - 1; i >= 0 && len(out) < limit; i-- {
		e := f.entries[i]
		out = append(out, ActivityLogResponse{ID: e.ID, Action: e.Action, Status: e.Status})
	}
	return out, nil
}

func TestLogActionPersistsWithoutKafka(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	uid := uint(9)
	err := svc.LogAction(context.Background(), &uid, nil, "CAMPAIGN_REVIEWED",
		map[string]interface{}{"campaign_id": 3}, "10.0.0.1", "success")
	require.NoError(t, err)

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.Equal(t, "CAMPAIGN_REVIEWED", entry.Action)
	assert.Equal(t, "success", entry.Status)
	assert.Equal(t, "10.0.0.1", entry.IPAddress)

	var details map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(entry.Details), &details))
	assert.EqualValues(t, 3, details["campaign_id"])
}

func TestLogActionNilDetailsBecomesEmptyObject(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	require.NoError(t, svc.LogAction(context.Background(), nil, nil, "SOS_CREATED", nil, "", "success"))
	require.Len(t, repo.entries, 1)
	assert.JSONEq(t, `{}`, repo.entries[0].Details)
}

func TestGetActivityLogsComputesTotalPages(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	for i := 0; i < 25; i++ {
		require.NoError(t, svc.LogAction(context.Background(), nil, nil, "POST_CREATED", nil, "", "success"))
	}

	result, err := svc.GetActivityLogs(context.Background(), ActivityLogFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(25), result.Total)
	assert.Equal(t, 3, result.TotalPages)
	assert.Len(t, result.Data, 10)
}

func TestGetActivityLogsClampsNonPositiveLimit(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	for i := 0; i < 25; i++ {
		require.NoError(t, svc.LogAction(context.Background(), nil, nil, "POST_CREATED", nil, "", "success"))
	}

	for _, limit := range []int{0, -5} {
		result, err := svc.GetActivityLogs(context.Background(), ActivityLogFilter{Page: 0, Limit: limit})
		require.NoError(t, err)
		assert.Equal(t, 20, result.Limit, "limit %d must clamp to the default", limit)
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 2, result.TotalPages)
		assert.Len(t, result.Data, 20)
	}
}

func TestGetRecentClampsLimit(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	for i := 0; i < 30; i++ {
		require.NoError(t, svc.LogAction(context.Background(), nil, nil, "POST_CREATED", nil, "", "success"))
	}

	// Out-of-range limits fall back to the default of 20.
	for _, limit := range []int{0, -5, 500} {
		logs, err := svc.GetRecent(context.Background(), limit)
		require.NoError(t, err)
		assert.Len(t, logs, 20, "limit %d must clamp to the default", limit)
	}

	logs, err := svc.GetRecent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, logs, 5)
	assert.Equal(t, uint(30), logs[0].ID, "most recent entry first")
}
