package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypePurchase TransactionType = "purchase"
	TransactionTypeRefund   TransactionType = "refund"
)

// Transaction is one append-only ledger record. TransactionDate is assigned
// by the transaction store, not the caller.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	Type            TransactionType `json:"type"`
	UserID          string          `json:"userID"`
	TicketID        string          `json:"ticketID"`
	PaymentID       string          `json:"paymentID"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transactionDate,omitempty"`
}
