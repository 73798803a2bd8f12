package saga

import (
	"context"
	"ticketing/entities"
	"ticketing/monitoring"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultWaitlistHold is how long a notified waitlist user is told the
// resale listing is held open for them.
const DefaultWaitlistHold = 24 * time.Hour

// Resale drives a ticket from "listed for resale" to "sold again": the
// sell-ticket listing saga and the buy-resale-ticket purchase saga. There is
// no shared transaction manager; consistency is procedural, with the
// compensations and accepted gaps documented on each step.
type Resale struct {
	tickets      TicketService
	users        UserService
	transactions TransactionService
	payments     PaymentService
	waitlist     WaitlistService
	notifier     Notifier
	steps        StepLog

	transactionAttempts int
	waitlistHold        time.Duration
}

func NewResale(
	tickets TicketService,
	users UserService,
	transactions TransactionService,
	payments PaymentService,
	waitlist WaitlistService,
	notifier Notifier,
	steps StepLog,
) *Resale {
	if tickets == nil {
		panic("tickets service is nil")
	}
	if users == nil {
		panic("users service is nil")
	}
	if transactions == nil {
		panic("transactions service is nil")
	}
	if payments == nil {
		panic("payments service is nil")
	}
	if waitlist == nil {
		panic("waitlist service is nil")
	}
	if notifier == nil {
		panic("notifier is nil")
	}
	if steps == nil {
		steps = NopStepLog{}
	}

	return &Resale{
		tickets:             tickets,
		users:               users,
		transactions:        transactions,
		payments:            payments,
		waitlist:            waitlist,
		notifier:            notifier,
		steps:               steps,
		transactionAttempts: DefaultTransactionAttempts,
		waitlistHold:        DefaultWaitlistHold,
	}
}

type SellTicketResult struct {
	TicketID      string
	ResalePrice   decimal.Decimal
	NotifiedUsers int
	Message       string
}

// SellTicket lists a ticket for resale and fans out notifications to every
// user waitlisted for the ticket's event showing.
//
// A failure after the listing update has been written does NOT roll the
// listing back; the ticket stays listed and the error is reported.
func (s *Resale) SellTicket(ctx context.Context, ticketID string, resalePrice decimal.Decimal) (result SellTicketResult, err error) {
	defer func() { monitoring.RecordSaga("sell_ticket", outcomeLabel(err)) }()

	run := stepRunner{log: s.steps, saga: "sell_ticket", sagaID: uuid.NewString()}

	var ticket entities.Ticket
	if stepErr := run.run(ctx, "fetch-ticket", func() error {
		ticket, err = s.tickets.Get(ctx, ticketID)
		return err
	}); stepErr != nil {
		return SellTicketResult{}, propagateStatus(stepErr, "could not fetch ticket "+ticketID)
	}

	// A price update to an active listing is rejected, not merged.
	if ticket.Status == entities.TicketStatusAvailable {
		return SellTicketResult{}, Conflict("ticket %s is already listed for resale", ticketID)
	}

	if stepErr := run.run(ctx, "list-ticket", func() error {
		status := entities.TicketStatusAvailable
		return s.tickets.Update(ctx, ticketID, entities.TicketUpdate{
			Status:      &status,
			ResalePrice: &resalePrice,
		})
	}); stepErr != nil {
		// The ticket store re-validates the resale price cap itself; its
		// 400 goes through verbatim.
		return SellTicketResult{}, propagateBadRequest(stepErr, "could not list ticket "+ticketID+" for resale")
	}

	var details entities.EventDetails
	if stepErr := run.run(ctx, "event-details", func() error {
		details, err = s.tickets.EventDetails(ctx, ticketID)
		return err
	}); stepErr != nil {
		return SellTicketResult{}, Internal("could not resolve event details for ticket "+ticketID, stepErr)
	}

	var entries []entities.WaitlistEntry
	if stepErr := run.run(ctx, "fetch-waitlist", func() error {
		entries, err = s.waitlist.Get(ctx, details.EventID, details.EventDateTime)
		return err
	}); stepErr != nil {
		// Accepted inconsistency: the ticket is already listed and stays
		// listed; only the fan-out is lost.
		return SellTicketResult{}, Internal("ticket listed but waitlist could not be read for event "+details.EventID, stepErr)
	}

	result = SellTicketResult{TicketID: ticketID, ResalePrice: resalePrice}

	if len(entries) == 0 {
		result.Message = "no users on waitlist"
		return result, nil
	}

	expiration := time.Now().UTC().Add(s.waitlistHold)
	for _, entry := range entries {
		notify(ctx, s.notifier, entities.WaitlistSeatAvailable{
			Header:         entities.NewEventHeader(),
			UserID:         entry.UserID,
			EventID:        details.EventID,
			EventName:      details.EventName,
			EventDate:      details.EventDateTime,
			ExpirationTime: expiration,
		})
	}

	log.FromContext(ctx).
		WithField("ticket_id", ticketID).
		WithField("waitlist_size", len(entries)).
		Info("Notified waitlist about resale listing")

	result.NotifiedUsers = len(entries)
	result.Message = "users on waitlist notified"

	return result, nil
}
