package activitylog

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/trongdat-dev/volunteer-hub-backend/utils"
)

type Service interface {
	LogAction(ctx context.Context, userID *uint, organizationID *uint, action string, details map[string]interface{}, ip string, status string) error
	GetActivityLogs(ctx context.Context, filter ActivityLogFilter) (*PaginatedActivityLogs, error)
	GetRecent(ctx context.Context, limit int) ([]ActivityLogResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// logEvent is the wire shape published to the activity topic.
type logEvent struct {
	UserID         *uint                  `json:"user_id"`
	OrganizationID *uint                  `json:"organization_id"`
	Action         string                 `json:"action"`
	Details        map[string]interface{} `json:"details"`
	IPAddress      string                 `json:"ip_address"`
	Status         string                 `json:"status"`
	OccurredAt     time.Time              `json:"occurred_at"`
}

// LogAction records an activity entry. With Kafka configured the event goes
// through the activity topic and is persisted by the consumer; otherwise it is
// written straight to the database.
func (s *service) LogAction(ctx context.Context, userID *uint, organizationID *uint, action string, details map[string]interface{}, ip string, status string) error {
	if details == nil {
		details = make(map[string]interface{})
	}

	if utils.ActivityWriter != nil {
		payload, err := json.Marshal(logEvent{
			UserID:         userID,
			OrganizationID: organizationID,
			Action:         action,
			Details:        details,
			IPAddress:      ip,
			Status:         status,
			OccurredAt:     time.Now(),
		})
		if err == nil {
			if err := utils.ActivityWriter.WriteMessages(ctx, kafka.Message{
				Key:   []byte(action),
				Value: payload,
			}); err == nil {
				return nil
			}
			// Broker unavailable: fall through to the direct write.
		}
	}

	return s.persist(ctx, userID, organizationID, action, details, ip, status)
}

func (s *service) persist(ctx context.Context, userID *uint, organizationID *uint, action string, details map[string]interface{}, ip string, status string) error {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		detailsJSON = []byte("{}")
	}

	entry := &ActivityLog{
		UserID:         userID,
		OrganizationID: organizationID,
		Action:         action,
		Details:        string(detailsJSON),
		IPAddress:      ip,
		Status:         status,
	}

	return s.repo.Create(ctx, entry)
}

// GetActivityLogs retrieves paginated activity logs with filters. The limit
// and page are clamped here, before both the query and the envelope, so the
// response always describes the rows actually returned.
func (s *service) GetActivityLogs(ctx context.Context, filter ActivityLogFilter) (*PaginatedActivityLogs, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	logs, total, err := s.repo.GetByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return &PaginatedActivityLogs{
		Data:       logs,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *service) GetRecent(ctx context.Context, limit int) ([]ActivityLogResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.GetRecent(ctx, limit)
}

// StartKafkaConsumer drains the activity topic and persists each event.
// No-op when Kafka is not configured.
func StartKafkaConsumer(cfg KafkaConsumerConfig, svc Service) {
	reader := utils.NewKafkaReader(cfg.Topic, cfg.GroupID)
	if reader == nil {
		return
	}

	go func() {
		defer reader.Close()
		for {
			msg, err := reader.ReadMessage(context.Background())
			if err != nil {
				log.Printf("⚠️ activity log consumer stopped: %v", err)
				return
			}

			var ev logEvent
			if err := json.Unmarshal(msg.Value, &ev); err != nil {
				log.Printf("⚠️ dropping malformed activity event: %v", err)
				continue
			}

			impl, ok := svc.(*service)
			if !ok {
				continue
			}
			if err := impl.persist(context.Background(), ev.UserID, ev.OrganizationID, ev.Action, ev.Details, ev.IPAddress, ev.Status); err != nil {
				log.Printf("❌ failed to persist activity event %s: %v", ev.Action, err)
			}
		}
	}()
}

// KafkaConsumerConfig identifies the topic and consumer group to drain.
type KafkaConsumerConfig struct {
	Topic   string
	GroupID string
}
