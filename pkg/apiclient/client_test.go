package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportInjectsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok-123")

	var out map[string]bool
	require.NoError(t, c.Get(context.Background(), "/ping", &out))
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.True(t, out["ok"])
}

func TestTransportOmitsHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.Get(context.Background(), "/ping", nil))
	assert.Empty(t, gotAuth)
}

func TestErrorSurfacesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"status is required"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Patch(context.Background(), "/admin/organizations/1", map[string]string{}, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "status is required")
}

func TestErrorGenericWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Get(context.Background(), "/x", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Empty(t, apiErr.Message)
}

func TestSeqFetcherDiscardsStaleResponse(t *testing.T) {
	f := NewSeqFetcher[string]()

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	var mu sync.Mutex
	var applied []string

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ok, err := f.Fetch(context.Background(), func(ctx context.Context) (string, error) {
			close(firstStarted)
			<-releaseFirst
			return "stale", nil
		}, func(v string) {
			mu.Lock()
			applied = append(applied, v)
			mu.Unlock()
		})
		assert.NoError(t, err)
		assert.False(t, ok, "slow first response must be discarded")
	}()

	<-firstStarted

	// A second fetch issued while the first is in flight wins.
	ok, err := f.Fetch(context.Background(), func(ctx context.Context) (string, error) {
		return "fresh", nil
	}, func(v string) {
		mu.Lock()
		applied = append(applied, v)
		mu.Unlock()
	})
	require.NoError(t, err)
	assert.True(t, ok)

	close(releaseFirst)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"fresh"}, applied)
}

func TestSeqFetcherAppliesLatestInOrder(t *testing.T) {
	f := NewSeqFetcher[int]()

	var applied []int
	for i := 1; i <= 3; i++ {
		v := i
		ok, err := f.Fetch(context.Background(), func(ctx context.Context) (int, error) {
			return v, nil
		}, func(got int) { applied = append(applied, got) })
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.Equal(t, []int{1, 2, 3}, applied)
}

func TestDebouncerCoalescesBurst(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	defer d.Stop()

	var mu sync.Mutex
	var calls []string

	record := func(v string) {
		mu.Lock()
		calls = append(calls, v)
		mu.Unlock()
	}

	for _, v := range []string{"h", "he", "hel", "hell", "hello"} {
		d.Submit(v, record)
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(calls) == 1 && calls[0] == "hello"
	}, time.Second, 10*time.Millisecond, "a keystroke burst must yield exactly one call with the final value")

	// And no further calls afterwards.
	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, calls, 1)
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var mu sync.Mutex
	called := false
	d.Submit("x", func(string) {
		mu.Lock()
		called = true
		mu.Unlock()
	})
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.False(t, called)
}
