package utils

import (
	"log"
	"strings"

	"github.com/segmentio/kafka-go"

	"github.com/trongdat-dev/volunteer-hub-backend/config"
)

// Kafka writers shared by the activity log and emergency modules.
var (
	ActivityWriter *kafka.Writer
	SOSWriter      *kafka.Writer

	kafkaBrokers []string
)

// InitializeKafka sets up the topic writers. Kafka is optional: with no brokers
// configured the writers stay nil and producers fall back to direct writes.
func InitializeKafka(cfg *config.Config) {
	if cfg.KafkaBrokers == "" {
		log.Println("⚠️ KAFKA_BROKERS not set, event pipeline disabled")
		return
	}

	kafkaBrokers = strings.Split(cfg.KafkaBrokers, ",")

	ActivityWriter = &kafka.Writer{
		Addr:     kafka.TCP(kafkaBrokers...),
		Topic:    cfg.KafkaActivityTopic,
		Balancer: &kafka.LeastBytes{},
	}
	SOSWriter = &kafka.Writer{
		Addr:     kafka.TCP(kafkaBrokers...),
		Topic:    cfg.KafkaSOSTopic,
		Balancer: &kafka.LeastBytes{},
	}

	log.Printf("✅ Kafka writers initialized (brokers: %s)", cfg.KafkaBrokers)
}

// NewKafkaReader creates a consumer for a topic within the shared broker set.
func NewKafkaReader(topic, groupID string) *kafka.Reader {
	if len(kafkaBrokers) == 0 {
		return nil
	}
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  kafkaBrokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}
