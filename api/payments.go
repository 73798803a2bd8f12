package api

import (
	"context"
	"net/http"
	"ticketing/entities"

	"github.com/shopspring/decimal"
)

// PaymentsClient treats payment references as opaque tokens; the payment
// collaborator owns the Stripe integration.
type PaymentsClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewPaymentsClient(baseURL string) *PaymentsClient {
	if baseURL == "" {
		panic("payment service URL is empty")
	}
	return &PaymentsClient{baseURL: baseURL, httpClient: newHTTPClient()}
}

type refundRequest struct {
	PaymentID string          `json:"paymentID"`
	Amount    decimal.Decimal `json:"amount"`
}

// Refund reverses a prior charge identified by paymentID.
func (c *PaymentsClient) Refund(ctx context.Context, refund entities.PaymentRefund) error {
	url := c.baseURL + "/payment/refund"

	env, status, err := doJSON(ctx, c.httpClient, "payment", http.MethodPost, url, refundRequest{
		PaymentID: refund.PaymentID,
		Amount:    refund.Amount,
	})
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return collaboratorError("payment", url, status, env)
	}

	return nil
}
