package order

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNopPublisher(t *testing.T) {
	if err := (NopPublisher{}).OrderCreated(context.Background(), CreatedEvent{OrderID: "o1"}); err != nil {
		t.Fatalf("nop publisher failed: %v", err)
	}
}

// Nothing listens on the broker address, so the produce must give up with the context.
func TestKafkaPublisher_UnreachableBroker(t *testing.T) {
	p, err := NewKafkaPublisher([]string{"127.0.0.1:1"}, "order.created")
	if err != nil {
		t.Fatalf("new publisher: %v", err)
	}
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	err = p.OrderCreated(ctx, CreatedEvent{OrderID: "o1", Amount: decimal.NewFromInt(5)})
	if err == nil {
		t.Fatalf("expected an error from an unreachable broker")
	}
}
