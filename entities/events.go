package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventHeader struct {
	ID             string    `json:"id"`
	PublishedAt    time.Time `json:"published_at"`
	IdempotencyKey string    `json:"idempotency_key"`
}

func NewEventHeader() EventHeader {
	return EventHeader{
		ID:             uuid.NewString(),
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: uuid.NewString(),
	}
}

func NewEventHeaderWithIdempotencyKey(idempotencyKey string) EventHeader {
	return EventHeader{
		ID:             uuid.NewString(),
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: idempotencyKey,
	}
}

// Event is any message published to the ticketing topic exchange. Key is the
// routing key the email dispatcher binds its queues on.
type Event interface {
	Key() string
}

type TicketPurchased struct {
	Header EventHeader `json:"header"`

	UserID       string          `json:"user_id"`
	UserName     string          `json:"user_name"`
	UserEmail    string          `json:"user_email"`
	TicketID     string          `json:"ticket_id"`
	EventID      string          `json:"event_id"`
	EventName    string          `json:"event_name"`
	EventDate    time.Time       `json:"event_date"`
	SeatNo       int             `json:"seat_no"`
	SeatCategory string          `json:"seat_category"`
	Price        decimal.Decimal `json:"price"`
}

func (TicketPurchased) Key() string { return "ticket.purchased" }

type TicketResold struct {
	Header EventHeader `json:"header"`

	BuyerID      string          `json:"buyer_id"`
	BuyerName    string          `json:"buyer_name"`
	BuyerEmail   string          `json:"buyer_email"`
	SellerID     string          `json:"seller_id"`
	SellerName   string          `json:"seller_name"`
	SellerEmail  string          `json:"seller_email"`
	TicketID     string          `json:"ticket_id"`
	EventID      string          `json:"event_id"`
	EventName    string          `json:"event_name"`
	EventDate    time.Time       `json:"event_date"`
	SeatNo       int             `json:"seat_no"`
	SeatCategory string          `json:"seat_category"`
	Price        decimal.Decimal `json:"price"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
}

func (TicketResold) Key() string { return "ticket.resold" }

// WaitlistSeatAvailable is published once per waitlisted user when a ticket
// for their event is listed for resale.
type WaitlistSeatAvailable struct {
	Header EventHeader `json:"header"`

	UserID         string    `json:"user_id"`
	EventID        string    `json:"event_id"`
	EventName      string    `json:"event_name"`
	EventDate      time.Time `json:"event_date"`
	ExpirationTime time.Time `json:"expiration_time"`
}

func (WaitlistSeatAvailable) Key() string { return "waitlist.available" }

type TicketCheckedIn struct {
	Header EventHeader `json:"header"`

	UserID    string    `json:"user_id"`
	TicketID  string    `json:"ticket_id"`
	EventID   string    `json:"event_id"`
	EventName string    `json:"event_name"`
	EventDate time.Time `json:"event_date"`
}

func (TicketCheckedIn) Key() string { return "ticket.checkedin" }

// PaymentSucceeded is produced by the payment collaborator; this service
// only consumes it for the confirmation email.
type PaymentSucceeded struct {
	Header EventHeader `json:"header"`

	UserID    string          `json:"user_id"`
	UserEmail string          `json:"user_email"`
	PaymentID string          `json:"payment_id"`
	TicketID  string          `json:"ticket_id"`
	Amount    decimal.Decimal `json:"amount"`
}

func (PaymentSucceeded) Key() string { return "payment.successful" }
