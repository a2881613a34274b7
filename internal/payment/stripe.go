package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

type StripeConfig struct {
	SecretKey string
	Currency  string
	// BaseURL overrides the API host, e.g. for stripe-mock.
	BaseURL string
}

type StripeGateway struct {
	api      *client.API
	currency string
}

func NewStripeGateway(cfg StripeConfig) *StripeGateway {
	var backends *stripe.Backends
	if cfg.BaseURL != "" {
		b := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
			URL:               stripe.String(cfg.BaseURL),
			MaxNetworkRetries: stripe.Int64(0),
			LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
		})
		backends = &stripe.Backends{API: b, Connect: b, Uploads: b}
	}
	return &StripeGateway{
		api:      client.New(cfg.SecretKey, backends),
		currency: strings.ToLower(cfg.Currency),
	}
}

// ClientToken returns the client secret of a card SetupIntent.
func (g *StripeGateway) ClientToken(ctx context.Context) (string, error) {
	params := &stripe.SetupIntentParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	si, err := g.api.SetupIntents.New(params)
	if err != nil {
		return "", toError(err)
	}
	return si.ClientSecret, nil
}

// Sale confirms a PaymentIntent in one call. SubmitForSettlement maps to automatic capture.
func (g *StripeGateway) Sale(ctx context.Context, req SaleRequest) (*Result, error) {
	amount, err := MinorUnits(req.Amount, g.currency)
	if err != nil {
		return nil, err
	}
	capture := stripe.PaymentIntentCaptureMethodManual
	if req.SubmitForSettlement {
		capture = stripe.PaymentIntentCaptureMethodAutomatic
	}
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(g.currency),
		PaymentMethod:      stripe.String(req.Nonce),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		CaptureMethod:      stripe.String(string(capture)),
		Confirm:            stripe.Bool(true),
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, toError(err)
	}

	want := stripe.PaymentIntentStatusSucceeded
	if !req.SubmitForSettlement {
		want = stripe.PaymentIntentStatusRequiresCapture
	}
	if pi.Status != want {
		return nil, &Error{
			Code:          "payment_intent_" + string(pi.Status),
			Message:       "transaction was not completed",
			TransactionID: pi.ID,
			Status:        string(pi.Status),
		}
	}

	var raw json.RawMessage
	if pi.LastResponse != nil && len(pi.LastResponse.RawJSON) > 0 {
		raw = json.RawMessage(pi.LastResponse.RawJSON)
	} else if raw, err = json.Marshal(pi); err != nil {
		return nil, fmt.Errorf("encode payment intent: %w", err)
	}
	return &Result{
		TransactionID: pi.ID,
		Status:        string(pi.Status),
		Amount:        decimal.New(pi.Amount, -exponent(g.currency)),
		Currency:      string(pi.Currency),
		Raw:           raw,
	}, nil
}

func toError(err error) error {
	var se *stripe.Error
	if !errors.As(err, &se) {
		return fmt.Errorf("payment gateway: %w", err)
	}
	out := &Error{
		Code:        string(se.Code),
		Message:     se.Msg,
		Type:        string(se.Type),
		DeclineCode: string(se.DeclineCode),
	}
	if se.PaymentIntent != nil {
		out.TransactionID = se.PaymentIntent.ID
		out.Status = string(se.PaymentIntent.Status)
	}
	return out
}

// currencies charged in whole units
var zeroDecimal = map[string]bool{
	"bif": true, "clp": true, "djf": true, "gnf": true, "jpy": true, "kmf": true,
	"krw": true, "mga": true, "pyg": true, "rwf": true, "ugx": true, "vnd": true,
	"vuv": true, "xaf": true, "xof": true, "xpf": true,
}

func exponent(currency string) int32 {
	if zeroDecimal[strings.ToLower(currency)] {
		return 0
	}
	return 2
}

// MinorUnits converts an amount to the integer the gateway expects (cents for usd).
func MinorUnits(amount decimal.Decimal, currency string) (int64, error) {
	if !amount.IsPositive() {
		return 0, &Error{Code: "invalid_amount", Message: "amount must be greater than zero"}
	}
	units := amount.Shift(exponent(currency))
	if !units.Equal(units.Truncate(0)) {
		return 0, &Error{Code: "invalid_amount", Message: fmt.Sprintf("amount %s has too many decimals for %s", amount, currency)}
	}
	// IntPart keeps only the low 64 bits of a larger value
	if !units.BigInt().IsInt64() {
		return 0, &Error{Code: "invalid_amount", Message: fmt.Sprintf("amount %s is too large for %s", amount, currency)}
	}
	return units.IntPart(), nil
}
