package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type TicketStatus string

const (
	// TicketStatusAvailable means "listed for resale and purchasable",
	// not "never sold".
	TicketStatusAvailable TicketStatus = "available"
	TicketStatusPaid      TicketStatus = "paid"
	TicketStatusReserved  TicketStatus = "reserved"
)

type Ticket struct {
	TicketID      string           `json:"ticketID"`
	OwnerID       string           `json:"ownerID"`
	OwnerName     string           `json:"ownerName"`
	EventID       string           `json:"eventID"`
	EventName     string           `json:"eventName"`
	EventDateTime time.Time        `json:"eventDateTime"`
	SeatNo        int              `json:"seatNo"`
	SeatCategory  string           `json:"seatCategory"`
	Price         decimal.Decimal  `json:"price"`
	ResalePrice   *decimal.Decimal `json:"resalePrice"`
	Status        TicketStatus     `json:"status"`
	PaymentID     string           `json:"paymentID"`
	IsCheckedIn   bool             `json:"isCheckedIn"`
}

// ResaleAmount is the price a resale buyer pays: the listed resale price,
// or the original price when no resale price was ever set.
func (t Ticket) ResaleAmount() decimal.Decimal {
	if t.ResalePrice != nil {
		return *t.ResalePrice
	}
	return t.Price
}

// ValidateResalePrice enforces the ticket store's rule: a resale price may
// never exceed the original price nor any previously accepted resale price.
func (t Ticket) ValidateResalePrice(newPrice decimal.Decimal) error {
	if newPrice.GreaterThan(t.Price) {
		return fmt.Errorf("resale price %s exceeds original price %s", newPrice, t.Price)
	}
	if t.ResalePrice != nil && newPrice.GreaterThan(*t.ResalePrice) {
		return fmt.Errorf("resale price %s exceeds previous resale price %s", newPrice, t.ResalePrice)
	}
	return nil
}

// TicketUpdate is a partial update of a ticket; nil fields are left untouched
// by the ticket store.
type TicketUpdate struct {
	Status      *TicketStatus    `json:"status,omitempty"`
	ResalePrice *decimal.Decimal `json:"resalePrice,omitempty"`
	OwnerID     *string          `json:"ownerID,omitempty"`
	OwnerName   *string          `json:"ownerName,omitempty"`
	PaymentID   *string          `json:"paymentID,omitempty"`
	IsCheckedIn *bool            `json:"isCheckedIn,omitempty"`
}

// EventDetails is the ticket store's secondary (GraphQL) read of the event
// identity behind a ticket.
type EventDetails struct {
	EventID       string    `json:"eventID"`
	EventName     string    `json:"eventName"`
	EventDateTime time.Time `json:"eventDateTime"`
}
