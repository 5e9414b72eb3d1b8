package realtime

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

const (
	// PingInterval and PongWait are used for heartbeat.
	PingInterval = 30
	PongWait     = 60
)

// EventSOSAlert is pushed to every connected admin when an SOS request is created.
const EventSOSAlert = "sos_alert"

// Hub maintains the set of connected admin consoles and broadcasts alert
// events to them. Uses Redis pub/sub for horizontal scaling: local broadcast
// plus publish to Redis so other instances deliver to their own clients.
type Hub struct {
	clients map[string]*Client
	mu      sync.RWMutex
	logger  *zap.Logger
	pub     Publisher
	sub     Subscriber
	cancel  func()
}

// Publisher publishes alert events to Redis for cross-instance broadcast.
type Publisher interface {
	PublishAlert(event string, payload []byte) error
}

// Subscriber subscribes to the alert channel and invokes handler for incoming events.
type Subscriber interface {
	SubscribeAlerts(handler func(event string, payload []byte)) (cancel func(), err error)
}

func NewHub(logger *zap.Logger, pub Publisher, sub Subscriber) *Hub {
	h := &Hub{
		clients: make(map[string]*Client),
		logger:  logger,
		pub:     pub,
		sub:     sub,
	}
	if sub != nil {
		cancel, err := sub.SubscribeAlerts(func(event string, payload []byte) {
			h.broadcastLocal(event, json.RawMessage(payload))
		})
		if err == nil {
			h.cancel = cancel
		} else {
			logger.Warn("alert channel subscription failed, running single-instance", zap.Error(err))
		}
	}
	return h
}

// Close cancels the Redis subscription and disconnects all clients.
func (h *Hub) Close() {
	if h.cancel != nil {
		h.cancel()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.clients {
		close(c.send)
		delete(h.clients, id)
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c.ID] = c
	count := len(h.clients)
	h.mu.Unlock()
	h.logger.Debug("admin console connected", zap.String("client_id", c.ID), zap.Int("connected", count))
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c.ID]; ok {
		delete(h.clients, c.ID)
		close(c.send)
	}
	count := len(h.clients)
	h.mu.Unlock()
	h.logger.Debug("admin console disconnected", zap.String("client_id", c.ID), zap.Int("connected", count))
}

// Broadcast delivers an event to every connected console. With Redis wired
// the event goes through the channel only, so the subscriber callback
// performs the broadcast exactly once per instance (including this one) and
// local clients never see duplicates.
func (h *Hub) Broadcast(event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Warn("failed to marshal broadcast payload", zap.String("event", event), zap.Error(err))
		return
	}
	if h.pub != nil && h.cancel != nil {
		if err := h.pub.PublishAlert(event, data); err == nil {
			return
		}
		// Redis down: deliver locally so this instance's consoles still see it.
	}
	h.broadcastLocal(event, json.RawMessage(data))
}

func (h *Hub) broadcastLocal(event string, data json.RawMessage) {
	msg := WSMessage{Event: event, Data: data}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		select {
		case c.send <- msg:
		default:
			// buffer full, skip
		}
	}
}

// ClientCount returns the number of connected consoles.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
