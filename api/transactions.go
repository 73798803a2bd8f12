package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"ticketing/entities"
)

// ErrDuplicateTransactionID is returned when the transaction store rejects a
// create because the caller-generated ID already exists. The caller must
// retry with a freshly generated ID; the store never overwrites.
var ErrDuplicateTransactionID = errors.New("transaction ID already exists")

type TransactionsClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTransactionsClient(baseURL string) *TransactionsClient {
	if baseURL == "" {
		panic("transaction service URL is empty")
	}
	return &TransactionsClient{baseURL: baseURL, httpClient: newHTTPClient()}
}

func (c *TransactionsClient) Create(ctx context.Context, transaction entities.Transaction) error {
	url := c.baseURL + "/transaction"

	env, status, err := doJSON(ctx, c.httpClient, "transaction", http.MethodPost, url, transaction)
	if err != nil {
		return err
	}
	switch status {
	case http.StatusCreated:
		return nil
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrDuplicateTransactionID, transaction.TransactionID)
	default:
		return collaboratorError("transaction", url, status, env)
	}
}
