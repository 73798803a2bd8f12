package saga

import (
	"context"
	"ticketing/entities"
	"ticketing/monitoring"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

// CheckIn is the one-way check-in saga: not-checked-in -> checked-in,
// terminal. Reads are conservative so a flaky store never shows a ticket as
// checked in when it might not be.
type CheckIn struct {
	tickets  TicketService
	notifier Notifier
}

func NewCheckIn(tickets TicketService, notifier Notifier) *CheckIn {
	if tickets == nil {
		panic("tickets service is nil")
	}
	if notifier == nil {
		panic("notifier is nil")
	}
	return &CheckIn{tickets: tickets, notifier: notifier}
}

// Status reports whether the ticket is checked in. Any read failure is
// treated as "not checked in" so clients can retry.
func (c *CheckIn) Status(ctx context.Context, ticketID string) bool {
	checkedIn, err := c.tickets.IsCheckedIn(ctx, ticketID)
	if err != nil {
		log.FromContext(ctx).
			WithError(err).
			WithField("ticket_id", ticketID).
			Warn("could not read check-in status, treating as not checked in")
		return false
	}
	return checkedIn
}

type ScanResult struct {
	TicketID         string
	AlreadyCheckedIn bool
}

// Scan flips the ticket to checked-in. Scanning an already-checked-in
// ticket is an idempotent no-op: no second write is issued.
func (c *CheckIn) Scan(ctx context.Context, ticketID string) (result ScanResult, err error) {
	defer func() { monitoring.RecordSaga("check_in_ticket", outcomeLabel(err)) }()

	if c.Status(ctx, ticketID) {
		return ScanResult{TicketID: ticketID, AlreadyCheckedIn: true}, nil
	}

	checkedIn := true
	if err := c.tickets.Update(ctx, ticketID, entities.TicketUpdate{IsCheckedIn: &checkedIn}); err != nil {
		return ScanResult{}, Internal("could not check in ticket "+ticketID, err)
	}

	c.notifyCheckedIn(ctx, ticketID)

	return ScanResult{TicketID: ticketID}, nil
}

// notifyCheckedIn publishes the check-in notification. The write already
// succeeded; nothing here may fail the scan.
func (c *CheckIn) notifyCheckedIn(ctx context.Context, ticketID string) {
	ticket, err := c.tickets.Get(ctx, ticketID)
	if err != nil {
		log.FromContext(ctx).
			WithError(err).
			WithField("ticket_id", ticketID).
			Warn("checked in but could not load ticket for notification")
		return
	}

	notify(ctx, c.notifier, entities.TicketCheckedIn{
		Header:    entities.NewEventHeader(),
		UserID:    ticket.OwnerID,
		TicketID:  ticket.TicketID,
		EventID:   ticket.EventID,
		EventName: ticket.EventName,
		EventDate: ticket.EventDateTime,
	})
}
