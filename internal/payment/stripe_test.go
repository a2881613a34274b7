package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
)

// fakeStripe answers the two endpoints the gateway uses.
func fakeStripe(t *testing.T, decline bool, form *url.Values) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/setup_intents", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"seti_1","object":"setup_intent","client_secret":"seti_1_secret_abc","status":"requires_payment_method"}`))
	})
	mux.HandleFunc("/v1/payment_intents", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if form != nil {
			*form = r.PostForm
		}
		w.Header().Set("Content-Type", "application/json")
		if decline {
			w.WriteHeader(http.StatusPaymentRequired)
			_, _ = w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","decline_code":"generic_decline","message":"Your card was declined.","payment_intent":{"id":"pi_bad","status":"requires_payment_method"}}}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","amount":3500,"currency":"usd","status":"succeeded"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestStripeGateway_ClientToken(t *testing.T) {
	srv := fakeStripe(t, false, nil)
	g := NewStripeGateway(StripeConfig{SecretKey: "sk_test_x", Currency: "USD", BaseURL: srv.URL})

	tok, err := g.ClientToken(context.Background())
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if tok != "seti_1_secret_abc" {
		t.Fatalf("token=%q", tok)
	}
}

func TestStripeGateway_SaleSettles(t *testing.T) {
	var form url.Values
	srv := fakeStripe(t, false, &form)
	g := NewStripeGateway(StripeConfig{SecretKey: "sk_test_x", Currency: "usd", BaseURL: srv.URL})

	res, err := g.Sale(context.Background(), SaleRequest{
		Amount:              decimal.NewFromInt(35),
		Nonce:               "pm_card_visa",
		SubmitForSettlement: true,
		Metadata:            map[string]string{"buyer_id": "u1"},
	})
	if err != nil {
		t.Fatalf("sale: %v", err)
	}
	if res.TransactionID != "pi_123" || res.Status != "succeeded" || !res.Amount.Equal(decimal.NewFromInt(35)) {
		t.Fatalf("result=%+v", res)
	}
	var raw map[string]any
	if err := json.Unmarshal(res.Raw, &raw); err != nil || raw["id"] != "pi_123" {
		t.Fatalf("raw=%s err=%v", res.Raw, err)
	}

	checks := map[string]string{
		"amount":             "3500",
		"currency":           "usd",
		"payment_method":     "pm_card_visa",
		"confirm":            "true",
		"capture_method":     "automatic",
		"metadata[buyer_id]": "u1",
	}
	for k, want := range checks {
		if got := form.Get(k); got != want {
			t.Errorf("form[%s]=%q want %q", k, got, want)
		}
	}
}

func TestStripeGateway_SaleDeclined(t *testing.T) {
	srv := fakeStripe(t, true, nil)
	g := NewStripeGateway(StripeConfig{SecretKey: "sk_test_x", Currency: "usd", BaseURL: srv.URL})

	_, err := g.Sale(context.Background(), SaleRequest{Amount: decimal.NewFromInt(10), Nonce: "pm_card_chargeDeclined", SubmitForSettlement: true})
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("expected *Error, got %T %v", err, err)
	}
	if pe.Code != "card_declined" || pe.DeclineCode != "generic_decline" || pe.TransactionID != "pi_bad" {
		t.Fatalf("error=%+v", pe)
	}
}

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     int64
		wantErr  bool
	}{
		{"35", "usd", 3500, false},
		{"19.99", "usd", 1999, false},
		{"0.1", "eur", 10, false},
		{"1500", "jpy", 1500, false},
		{"1.5", "jpy", 0, true},
		{"0.001", "usd", 0, true},
		{"0", "usd", 0, true},
		{"-5", "usd", 0, true},
		{"92233720368547758.07", "usd", 9223372036854775807, false},
		{"92233720368547758.08", "usd", 0, true},
		{"184467440737095516.17", "usd", 0, true},
		{"9223372036854775808", "jpy", 0, true},
	}
	for _, tt := range tests {
		got, err := MinorUnits(decimal.RequireFromString(tt.amount), tt.currency)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("MinorUnits(%s,%s)=%d,%v want %d wantErr=%v", tt.amount, tt.currency, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestStripeGateway_SaleRejectsOversizedAmount(t *testing.T) {
	var form url.Values
	srv := fakeStripe(t, false, &form)
	g := NewStripeGateway(StripeConfig{SecretKey: "sk_test_x", Currency: "usd", BaseURL: srv.URL})

	_, err := g.Sale(context.Background(), SaleRequest{
		Amount:              decimal.RequireFromString("184467440737095516.17"),
		Nonce:               "pm_card_visa",
		SubmitForSettlement: true,
	})
	var pe *Error
	if !errors.As(err, &pe) || pe.Code != "invalid_amount" {
		t.Fatalf("expected invalid_amount, got %v", err)
	}
	if form != nil {
		t.Fatalf("gateway was called with amount=%q", form.Get("amount"))
	}
}
