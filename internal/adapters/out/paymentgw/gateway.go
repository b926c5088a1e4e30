// Package paymentgw talks to the external payment provider over HTTP.
package paymentgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/ports"
	"printmarket/internal/pkg/errs"
)

const defaultRequestTimeout = 10 * time.Second

// HTTPPaymentGateway implements ports.PaymentGateway against the provider's
// REST API. Provider failures surface as downstream failure errors so the
// transport layer can map them to 502 responses.
type HTTPPaymentGateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPPaymentGateway creates a gateway for the provider at baseURL.
func NewHTTPPaymentGateway(baseURL string, apiKey string) (*HTTPPaymentGateway, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &HTTPPaymentGateway{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: defaultRequestTimeout},
	}, nil
}

type paymentLinkRequest struct {
	OrderID string  `json:"order_id"`
	Amount  float64 `json:"amount"`
}

type paymentLinkResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type refundRequest struct {
	OrderID string  `json:"order_id"`
	Amount  float64 `json:"amount"`
}

// CreatePaymentLink requests a checkout link for the order and amount.
func (g *HTTPPaymentGateway) CreatePaymentLink(
	ctx context.Context,
	orderID kernel.UUID,
	amount float64,
) (ports.PaymentLink, error) {
	var response paymentLinkResponse

	err := g.post(ctx, "/v1/payment-links", paymentLinkRequest{
		OrderID: orderID.String(),
		Amount:  amount,
	}, &response)
	if err != nil {
		return ports.PaymentLink{}, err
	}

	return ports.PaymentLink{
		URL:       response.URL,
		ExpiresAt: response.ExpiresAt,
	}, nil
}

// IssueRefund instructs the provider to return the amount to the customer.
func (g *HTTPPaymentGateway) IssueRefund(ctx context.Context, orderID kernel.UUID, amount float64) error {
	return g.post(ctx, "/v1/refunds", refundRequest{
		OrderID: orderID.String(),
		Amount:  amount,
	}, nil)
}

func (g *HTTPPaymentGateway) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return errs.NewDownstreamFailureError("payment provider", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.NewDownstreamFailureError(
			"payment provider",
			fmt.Errorf("unexpected status %d", resp.StatusCode),
		)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errs.NewDownstreamFailureError("payment provider", err)
		}
	}

	return nil
}
