package order

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrEmptyCart = errors.New("cart is empty")

// CartError is a malformed checkout request; nothing was charged.
type CartError struct {
	msg string
	err error
}

func (e *CartError) Error() string { return e.msg }

func (e *CartError) Unwrap() error { return e.err }

func emptyCart() *CartError { return &CartError{msg: ErrEmptyCart.Error(), err: ErrEmptyCart} }

// Cart is a client-supplied list of line items. Only price is read;
// every other field is opaque and survives in Raw.
type Cart struct {
	Raw    json.RawMessage
	Prices []decimal.Decimal
}

func ParseCart(raw json.RawMessage) (Cart, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return Cart{}, emptyCart()
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return Cart{}, &CartError{msg: "cart must be a list of items"}
	}
	if len(items) == 0 {
		return Cart{}, emptyCart()
	}
	prices := make([]decimal.Decimal, 0, len(items))
	for i, it := range items {
		var line struct {
			Price *decimal.Decimal `json:"price"`
		}
		if err := json.Unmarshal(it, &line); err != nil || line.Price == nil {
			return Cart{}, &CartError{msg: fmt.Sprintf("cart item %d has no valid price", i)}
		}
		prices = append(prices, *line.Price)
	}
	return Cart{Raw: raw, Prices: prices}, nil
}

// Total is the plain sum of line prices. Quantity is not applied.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, p := range c.Prices {
		total = total.Add(p)
	}
	return total
}
