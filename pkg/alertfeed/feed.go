// Package alertfeed maintains a supervised WebSocket subscription to the SOS
// alert channel. The connection is kept alive across failures with
// exponential backoff, and every inbound alert triggers a full re-fetch of
// the open request list rather than an incremental merge, so the dashboard
// always shows the backend's authoritative state.
package alertfeed

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ConnStatus describes the state of the supervised connection.
type ConnStatus string

const (
	StatusDisconnected ConnStatus = "disconnected"
	StatusConnecting   ConnStatus = "connecting"
	StatusConnected    ConnStatus = "connected"
)

// Alert is the sos_alert payload delivered to the feed.
type Alert struct {
	RequestID   uint            `json:"request_id"`
	Beneficiary json.RawMessage `json:"beneficiary"`
	Message     string          `json:"message"`
	CreatedAt   time.Time       `json:"created_at"`
}

type wsMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Config wires the feed's callbacks and reconnect policy.
type Config struct {
	// URL of the alert WebSocket endpoint (ws:// or wss://).
	URL string
	// Token is the bearer credential. Empty token disables the feed: Run
	// returns immediately and no connection is attempted.
	Token string

	// OnAlert is invoked for every sos_alert event, after which the caller is
	// expected to re-fetch the open request list.
	OnAlert func(Alert)
	// OnStatus is invoked on every connection state change.
	OnStatus func(ConnStatus)

	// Reconnect policy. Zero values fall back to the defaults below.
	InitialBackoff time.Duration
	MaxBackoff     time.Duration

	Logger *zap.Logger
}

const (
	defaultInitialBackoff = time.Second
	defaultMaxBackoff     = 30 * time.Second
)

// Feed is a supervised alert subscription.
type Feed struct {
	cfg  Config
	rand *rand.Rand

	mu     sync.Mutex
	status ConnStatus
}

func New(cfg Config) *Feed {
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = defaultInitialBackoff
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = defaultMaxBackoff
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Feed{
		cfg:    cfg,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		status: StatusDisconnected,
	}
}

// Status returns the current connection state.
func (f *Feed) Status() ConnStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Run supervises the connection until ctx is cancelled. Without a token the
// feed is silently disabled and Run returns immediately.
func (f *Feed) Run(ctx context.Context) {
	if f.cfg.Token == "" {
		f.cfg.Logger.Debug("alert feed disabled: no token")
		return
	}

	attempt := 0
	for {
		if ctx.Err() != nil {
			f.setStatus(StatusDisconnected)
			return
		}

		f.setStatus(StatusConnecting)
		err := f.connectAndRead(ctx)
		f.setStatus(StatusDisconnected)

		if ctx.Err() != nil {
			return
		}
		if err != nil {
			f.cfg.Logger.Warn("alert feed connection lost", zap.Error(err), zap.Int("attempt", attempt))
		}

		delay := f.backoff(attempt)
		attempt++
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

// backoff returns the delay before the given retry attempt: exponential
// growth capped at MaxBackoff, with up to 25% random jitter added so a fleet
// of consoles does not reconnect in lockstep.
func (f *Feed) backoff(attempt int) time.Duration {
	d := f.cfg.InitialBackoff
	for i := 0; i < attempt && d < f.cfg.MaxBackoff; i++ {
		d *= 2
	}
	if d > f.cfg.MaxBackoff {
		d = f.cfg.MaxBackoff
	}
	jitter := time.Duration(f.rand.Int63n(int64(d)/4 + 1))
	return d + jitter
}

func (f *Feed) connectAndRead(ctx context.Context) error {
	u, err := url.Parse(f.cfg.URL)
	if err != nil {
		return err
	}
	q := u.Query()
	q.Set("token", f.cfg.Token)
	u.RawQuery = q.Encode()

	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	conn, _, err := websocket.DefaultDialer.DialContext(dialCtx, u.String(), nil)
	cancel()
	if err != nil {
		return err
	}
	defer conn.Close()

	f.setStatus(StatusConnected)

	conn.SetPingHandler(func(appData string) error {
		return conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(5*time.Second))
	})

	// Close the socket when ctx is cancelled so the read below unblocks.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return err
		}
		if msg.Event != "sos_alert" {
			continue
		}
		var alert Alert
		if err := json.Unmarshal(msg.Data, &alert); err != nil {
			f.cfg.Logger.Warn("dropping malformed alert", zap.Error(err))
			continue
		}
		if f.cfg.OnAlert != nil {
			f.cfg.OnAlert(alert)
		}
	}
}

func (f *Feed) setStatus(s ConnStatus) {
	f.mu.Lock()
	changed := f.status != s
	f.status = s
	f.mu.Unlock()
	if changed && f.cfg.OnStatus != nil {
		f.cfg.OnStatus(s)
	}
}
