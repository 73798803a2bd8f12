package saga

import (
	"context"
	"ticketing/entities"
	"time"
)

// Collaborator contracts the orchestrators depend on. The entity stores own
// their persistence and validation; these interfaces are the minimum surface
// the sagas call.

type TicketService interface {
	Get(ctx context.Context, ticketID string) (entities.Ticket, error)
	Update(ctx context.Context, ticketID string, update entities.TicketUpdate) error
	Create(ctx context.Context, ticket entities.Ticket) error
	EventDetails(ctx context.Context, ticketID string) (entities.EventDetails, error)
	IsCheckedIn(ctx context.Context, ticketID string) (bool, error)
}

type UserService interface {
	Get(ctx context.Context, userID string) (entities.User, error)
}

type TransactionService interface {
	Create(ctx context.Context, transaction entities.Transaction) error
}

type PaymentService interface {
	Refund(ctx context.Context, refund entities.PaymentRefund) error
}

type EventService interface {
	GetDate(ctx context.Context, eventID string, eventDateTime time.Time) (entities.EventDate, error)
	UpdateAvailableSeats(ctx context.Context, eventID string, eventDateTime time.Time, availableSeats int) error
}

type WaitlistService interface {
	Get(ctx context.Context, eventID string, eventDateTime time.Time) ([]entities.WaitlistEntry, error)
}

// Notifier hands an event to the notification outbox. Delivery is
// fire-and-forget from the saga's point of view: a Notify error must never
// fail the operation that triggered it.
type Notifier interface {
	Notify(ctx context.Context, event entities.Event) error
}
