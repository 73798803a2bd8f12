package entities

import "github.com/shopspring/decimal"

// PaymentRefund reverses a prior charge. PaymentID is the opaque reference
// of the charge being reversed, not of the refund itself.
type PaymentRefund struct {
	PaymentID string          `json:"paymentID"`
	Amount    decimal.Decimal `json:"amount"`
}
