// Package payment talks to the card gateway. Build one Gateway at startup and share it.
package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

type Gateway interface {
	// ClientToken is handed to the browser untouched so it can tokenize a card.
	ClientToken(ctx context.Context) (string, error)
	// Sale charges Amount against the tokenized instrument in Nonce.
	// A declined charge comes back as *Error.
	Sale(ctx context.Context, req SaleRequest) (*Result, error)
}

type SaleRequest struct {
	Amount              decimal.Decimal
	Nonce               string
	SubmitForSettlement bool
	// Metadata is attached to the transaction as-is.
	Metadata map[string]string
}

// Result is what a successful sale returned. Raw is the gateway's own JSON for the transaction.
type Result struct {
	TransactionID string          `json:"transaction_id"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Raw           json.RawMessage `json:"-"`
}

// Error is a gateway rejection, serialized verbatim to the client.
type Error struct {
	Code          string `json:"code,omitempty"`
	Message       string `json:"message"`
	Type          string `json:"type,omitempty"`
	DeclineCode   string `json:"decline_code,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
	Status        string `json:"status,omitempty"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("payment gateway: %s: %s", e.Code, e.Message)
	}
	return "payment gateway: " + e.Message
}
