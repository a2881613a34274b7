package order

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/twmb/franz-go/pkg/kgo"
)

type CreatedEvent struct {
	OrderID       string          `json:"order_id"`
	BuyerID       string          `json:"buyer_id"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transaction_id"`
	CreatedAt     time.Time       `json:"created_at"`
}

type Publisher interface {
	OrderCreated(ctx context.Context, ev CreatedEvent) error
}

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) OrderCreated(context.Context, CreatedEvent) error { return nil }

type KafkaPublisher struct {
	client *kgo.Client
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	cl, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.AllowAutoTopicCreation(),
		kgo.RecordRetries(3),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka client: %w", err)
	}
	return &KafkaPublisher{client: cl}, nil
}

// OrderCreated is keyed by order id so one order's events stay on one partition.
func (p *KafkaPublisher) OrderCreated(ctx context.Context, ev CreatedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	rec := &kgo.Record{Key: []byte(ev.OrderID), Value: body}
	return p.client.ProduceSync(ctx, rec).FirstErr()
}

func (p *KafkaPublisher) Close() { p.client.Close() }
