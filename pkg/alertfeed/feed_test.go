package alertfeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDisabledWithoutToken(t *testing.T) {
	var statuses []ConnStatus
	feed := New(Config{
		URL:      "ws://example.invalid/ws",
		Token:    "",
		OnStatus: func(s ConnStatus) { statuses = append(statuses, s) },
	})

	done := make(chan struct{})
	go func() {
		feed.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run must return immediately without a token")
	}
	assert.Empty(t, statuses, "disabled feed must not report status changes")
	assert.Equal(t, StatusDisconnected, feed.Status())
}

func TestBackoffGrowsAndCaps(t *testing.T) {
	feed := New(Config{
		URL:            "ws://example.invalid/ws",
		Token:          "tok",
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     time.Second,
	})

	prevBase := time.Duration(0)
	for attempt := 0; attempt < 8; attempt++ {
		d := feed.backoff(attempt)

		base := 100 * time.Millisecond
		for i := 0; i < attempt && base < time.Second; i++ {
			base *= 2
		}
		if base > time.Second {
			base = time.Second
		}

		assert.GreaterOrEqual(t, d, base, "attempt %d below its base", attempt)
		assert.LessOrEqual(t, d, base+base/4, "attempt %d exceeds base plus jitter", attempt)
		assert.GreaterOrEqual(t, base, prevBase, "base must be non-decreasing")
		prevBase = base
	}

	capped := feed.backoff(50)
	assert.LessOrEqual(t, capped, time.Second+time.Second/4)
}

func TestFeedReceivesAlertsAndReconnects(t *testing.T) {
	upgrader := websocket.Upgrader{}

	var mu sync.Mutex
	var tokens []string
	conns := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		tokens = append(tokens, r.URL.Query().Get("token"))
		conns++
		n := conns
		mu.Unlock()

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		// First connection delivers one alert then drops; the supervisor must
		// dial again.
		_ = conn.WriteJSON(map[string]interface{}{
			"event": "sos_alert",
			"data":  map[string]interface{}{"request_id": n, "message": "help"},
		})
		if n == 1 {
			return
		}
		// Keep the second connection open until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	alerts := make(chan Alert, 4)
	statusCh := make(chan ConnStatus, 16)

	feed := New(Config{
		URL:            wsURL,
		Token:          "secret-token",
		OnAlert:        func(a Alert) { alerts <- a },
		OnStatus:       func(s ConnStatus) { statusCh <- s },
		InitialBackoff: 10 * time.Millisecond,
		MaxBackoff:     50 * time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go feed.Run(ctx)

	var got []Alert
	for len(got) < 2 {
		select {
		case a := <-alerts:
			got = append(got, a)
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for alerts, got %d", len(got))
		}
	}

	assert.Equal(t, uint(1), got[0].RequestID)
	assert.Equal(t, uint(2), got[1].RequestID, "second alert must arrive on the reconnected session")

	mu.Lock()
	require.GreaterOrEqual(t, conns, 2, "supervisor must reconnect after the server drop")
	for _, tok := range tokens {
		assert.Equal(t, "secret-token", tok, "every dial must carry the token")
	}
	mu.Unlock()

	cancel()

	// Status transitions must have reported a connected phase.
	seenConnected := false
	deadline := time.After(time.Second)
drain:
	for {
		select {
		case s := <-statusCh:
			if s == StatusConnected {
				seenConnected = true
			}
		case <-deadline:
			break drain
		default:
			break drain
		}
	}
	assert.True(t, seenConnected)
}
