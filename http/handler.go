package http

import (
	"context"
	"ticketing/saga"

	"github.com/shopspring/decimal"
)

type Handler struct {
	resale         ResaleOrchestrator
	purchase       PurchaseOrchestrator
	checkIn        CheckInOrchestrator
	checkInBaseURL string
}

type ResaleOrchestrator interface {
	SellTicket(ctx context.Context, ticketID string, resalePrice decimal.Decimal) (saga.SellTicketResult, error)
	BuyResaleTicket(ctx context.Context, ticketID, buyerID, paymentID string) (saga.BuyResaleResult, error)
}

type PurchaseOrchestrator interface {
	BuyTicket(ctx context.Context, request saga.BuyTicketRequest) []saga.SeatResult
}

type CheckInOrchestrator interface {
	Status(ctx context.Context, ticketID string) bool
	Scan(ctx context.Context, ticketID string) (saga.ScanResult, error)
}
