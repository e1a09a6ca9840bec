// Package notify records checkout hand-offs on a message topic. This is
// an audit of "a link was prepared", not a delivery channel: whether the
// visitor ever opened the link, or the order arrived, stays unobservable.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// OrderPrepared is published when a checkout link has been built and
// handed to the client.
type OrderPrepared struct {
	Reference  string    `json:"reference"`
	SessionID  string    `json:"session_id"`
	ItemCount  int       `json:"item_count"`
	Total      string    `json:"total"`
	Currency   string    `json:"currency"`
	PreparedAt time.Time `json:"prepared_at"`
}

// Publisher is the boundary the API layer talks to. The default wiring is
// the no-op; Kafka is only attached when brokers are configured.
type Publisher interface {
	PublishOrderPrepared(ctx context.Context, rec OrderPrepared) error
	Close() error
}

// KafkaPublisher writes hand-off records to a Kafka topic.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) PublishOrderPrepared(ctx context.Context, rec OrderPrepared) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(rec.Reference),
		Value: data,
		Time:  time.Now(),
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops everything. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderPrepared(context.Context, OrderPrepared) error { return nil }
func (NopPublisher) Close() error                                              { return nil }
