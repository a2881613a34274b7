package order

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MikeMC777/shop-ecom/internal/logx"
	"github.com/MikeMC777/shop-ecom/internal/payment"
)

// PersistError means the card was charged but the order row was not written.
type PersistError struct {
	TransactionID string
	Err           error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("order for transaction %s not recorded: %v", e.TransactionID, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

type Checkout struct {
	gateway payment.Gateway
	repo    Repository
	events  Publisher
}

func NewCheckout(g payment.Gateway, repo Repository, events Publisher) *Checkout {
	if events == nil {
		events = NopPublisher{}
	}
	return &Checkout{gateway: g, repo: repo, events: events}
}

func (c *Checkout) ClientToken(ctx context.Context) (string, error) {
	return c.gateway.ClientToken(ctx)
}

// Pay charges the cart total and records the order.
//
// Errors: *CartError before any charge, *payment.Error when the gateway
// declines, *PersistError when the charge succeeded but the insert failed.
func (c *Checkout) Pay(ctx context.Context, buyerID, nonce string, rawCart json.RawMessage) (*Order, error) {
	if strings.TrimSpace(nonce) == "" {
		return nil, &CartError{msg: "nonce is required"}
	}
	cart, err := ParseCart(rawCart)
	if err != nil {
		return nil, err
	}
	total := cart.Total()

	res, err := c.gateway.Sale(ctx, payment.SaleRequest{
		Amount:              total,
		Nonce:               nonce,
		SubmitForSettlement: true,
		Metadata:            map[string]string{"buyer_id": buyerID},
	})
	if err != nil {
		return nil, err
	}

	paymentJSON := res.Raw
	if len(paymentJSON) == 0 {
		if paymentJSON, err = json.Marshal(res); err != nil {
			return nil, &PersistError{TransactionID: res.TransactionID, Err: err}
		}
	}

	o := &Order{
		ID:       uuid.NewString(),
		Products: cart.Raw,
		Payment:  paymentJSON,
		BuyerID:  buyerID,
		Status:   StatusNotProcessed,
	}
	// money has moved; a client hanging up must not abort the insert
	persistCtx := context.WithoutCancel(ctx)
	if err := c.repo.Create(persistCtx, o); err != nil {
		logx.Error().Err(err).
			Str("transaction_id", res.TransactionID).
			Str("buyer_id", buyerID).
			Str("amount", total.String()).
			Msg("charged but order insert failed")
		return nil, &PersistError{TransactionID: res.TransactionID, Err: err}
	}

	pubCtx, cancel := context.WithTimeout(persistCtx, 3*time.Second)
	defer cancel()
	if err := c.events.OrderCreated(pubCtx, CreatedEvent{
		OrderID:       o.ID,
		BuyerID:       buyerID,
		Amount:        total,
		TransactionID: res.TransactionID,
		CreatedAt:     o.CreatedAt,
	}); err != nil {
		logx.Warn().Err(err).Str("order_id", o.ID).Msg("order.created not published")
	}
	return o, nil
}
