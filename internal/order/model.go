package order

import (
	"encoding/json"
	"time"
)

// StatusNotProcessed is the only status an order is created with.
const StatusNotProcessed = "Not Process"

type Order struct {
	ID string `json:"id"`
	// Products is the cart exactly as the buyer sent it.
	Products json.RawMessage `json:"products"`
	// Payment is the gateway's transaction object.
	Payment   json.RawMessage `json:"payment"`
	BuyerID   string          `json:"buyer"`
	BuyerName string          `json:"buyer_name,omitempty"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}
