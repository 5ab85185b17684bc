// Package paylink is the HTTP client for the hosted payment link gateway.
package paylink

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/somitihq/somiti-backend/internal/core/domain"
	portssvc "github.com/somitihq/somiti-backend/internal/core/ports/services"
)

type createLinkRequest struct {
	ReferenceID string `json:"reference_id"`
	TenantName  string `json:"tenant_name"`
	MemberID    string `json:"member_id"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Purpose     string `json:"purpose"`
}

type createLinkResponse struct {
	PaymentURL string `json:"payment_url"`
}

type client struct {
	http *resty.Client
}

// NewClient creates a PaymentLinkProvider talking to the gateway at baseURL.
// Requests are single-attempt: a failed link creation surfaces to the admin,
// who retries the approval.
func NewClient(baseURL, apiKey string) portssvc.PaymentLinkProvider {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(0).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("Content-Type", "application/json")
	return &client{http: httpClient}
}

var _ portssvc.PaymentLinkProvider = (*client)(nil)

func (c *client) CreatePaymentLink(ctx context.Context, payment domain.Payment, tenant domain.Tenant) (string, error) {
	var result createLinkResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(createLinkRequest{
			ReferenceID: payment.PaymentID,
			TenantName:  tenant.Name,
			MemberID:    payment.MemberID,
			Amount:      payment.Amount.StringFixed(2),
			Currency:    "BDT",
			Purpose:     payment.Purpose,
		}).
		SetResult(&result).
		Post("/v1/payment-links")
	if err != nil {
		return "", fmt.Errorf("payment link request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("payment link provider returned %s", resp.Status())
	}
	if result.PaymentURL == "" {
		return "", fmt.Errorf("payment link provider returned empty URL")
	}
	return result.PaymentURL, nil
}
