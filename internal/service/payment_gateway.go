package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"styledecor/config"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// PaymentIntent is the processor-side handle for a pending card payment. The
// client secret goes to the browser; the intent id becomes the transaction
// reference once the charge succeeds.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// PaymentGateway creates payment intents with the external card processor.
// Authorization and capture happen entirely on the processor's side; this
// service only ever creates intents and later records confirmed outcomes.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount decimal.Decimal, bookingID string) (*PaymentIntent, error)
}

type stripeGateway struct {
	httpClient *http.Client
	cfg        config.StripeConfig
	log        *logrus.Logger
}

func NewStripeGateway(cfg config.StripeConfig, log *logrus.Logger) PaymentGateway {
	return &stripeGateway{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cfg:        cfg,
		log:        log,
	}
}

// CreateIntent calls the Stripe payment-intents endpoint. Amounts are sent in
// the currency's minor unit.
func (g *stripeGateway) CreateIntent(ctx context.Context, amount decimal.Decimal, bookingID string) (*PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", amount.Mul(decimal.NewFromInt(100)).Round(0).String())
	form.Set("currency", g.cfg.Currency)
	form.Set("metadata[booking_id]", bookingID)

	endpoint := strings.TrimRight(g.cfg.BaseURL, "/") + "/v1/payment_intents"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.SecretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.log.Warnf("Payment intent request failed for booking %s: %+v", bookingID, err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		g.log.Warnf("Payment processor returned %d for booking %s: %s", resp.StatusCode, bookingID, string(body))
		return nil, fmt.Errorf("payment processor returned status %d", resp.StatusCode)
	}

	var intent PaymentIntent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, err
	}
	if intent.ClientSecret == "" {
		return nil, fmt.Errorf("payment processor returned no client secret")
	}

	return &intent, nil
}
