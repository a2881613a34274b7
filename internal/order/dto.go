package order

import "encoding/json"

// PaymentRequest body of POST /payment.
// swagger:model PaymentRequest
type PaymentRequest struct {
	Nonce string `json:"nonce" example:"pm_card_visa"`
	// Cart is kept as raw JSON so the stored snapshot is byte-for-byte what was sent.
	Cart json.RawMessage `json:"cart" swaggertype:"array,object"`
}

// TokenResponse body of GET /payment/token.
// swagger:model TokenResponse
type TokenResponse struct {
	ClientToken string `json:"clientToken" example:"seti_1Nx_secret_abc"`
}
