package saga_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"ticketing/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paidTicket(t *testing.T) entities.Ticket {
	return entities.Ticket{
		TicketID:      "TKT-SELL1",
		OwnerID:       "user-1",
		OwnerName:     "Ana",
		EventID:       "event-1",
		EventName:     "Hamilton",
		EventDateTime: showingAt(t, "2026-10-01T20:00:00Z"),
		SeatNo:        12,
		SeatCategory:  "VIP",
		Price:         dec(100),
		Status:        entities.TicketStatusPaid,
		PaymentID:     "pay-original",
	}
}

func TestSellTicketNotifiesWaitlist(t *testing.T) {
	f := newResaleFixture()
	ticket := paidTicket(t)
	f.tickets.Tickets[ticket.TicketID] = ticket
	f.waitlist.Add(ticket.EventID, ticket.EventDateTime,
		entities.WaitlistEntry{UserID: "user-7"},
		entities.WaitlistEntry{UserID: "user-8"},
	)

	result, err := f.saga.SellTicket(context.Background(), ticket.TicketID, dec(80))
	require.NoError(t, err)

	assert.Equal(t, ticket.TicketID, result.TicketID)
	assert.Equal(t, 2, result.NotifiedUsers)
	assert.Equal(t, "users on waitlist notified", result.Message)

	listed := f.tickets.Tickets[ticket.TicketID]
	assert.Equal(t, entities.TicketStatusAvailable, listed.Status)
	require.NotNil(t, listed.ResalePrice)
	assert.True(t, listed.ResalePrice.Equal(dec(80)))

	events := f.notifier.Events()
	require.Len(t, events, 2)
	notified := []string{}
	for _, e := range events {
		available, ok := e.(entities.WaitlistSeatAvailable)
		require.True(t, ok)
		assert.Equal(t, ticket.EventID, available.EventID)
		assert.Equal(t, ticket.EventName, available.EventName)
		notified = append(notified, available.UserID)
	}
	assert.ElementsMatch(t, []string{"user-7", "user-8"}, notified)
}

func TestSellTicketEmptyWaitlist(t *testing.T) {
	f := newResaleFixture()
	ticket := paidTicket(t)
	f.tickets.Tickets[ticket.TicketID] = ticket

	result, err := f.saga.SellTicket(context.Background(), ticket.TicketID, dec(80))
	require.NoError(t, err)

	assert.Equal(t, 0, result.NotifiedUsers)
	assert.Equal(t, "no users on waitlist", result.Message)
	assert.Empty(t, f.notifier.Events())

	listed := f.tickets.Tickets[ticket.TicketID]
	assert.Equal(t, entities.TicketStatusAvailable, listed.Status)
}

func TestSellTicketAlreadyListed(t *testing.T) {
	f := newResaleFixture()
	ticket := paidTicket(t)
	ticket.Status = entities.TicketStatusAvailable
	ticket.ResalePrice = decPtr(90)
	f.tickets.Tickets[ticket.TicketID] = ticket

	_, err := f.saga.SellTicket(context.Background(), ticket.TicketID, dec(70))
	requireSagaError(t, err, http.StatusConflict)

	// A conflict is a rejection, not a merge: nothing was written.
	assert.Empty(t, f.tickets.Updates)
	assert.Empty(t, f.notifier.Events())
	unchanged := f.tickets.Tickets[ticket.TicketID]
	assert.True(t, unchanged.ResalePrice.Equal(dec(90)))
}

func TestSellTicketPriceAboveOriginal(t *testing.T) {
	f := newResaleFixture()
	ticket := paidTicket(t)
	f.tickets.Tickets[ticket.TicketID] = ticket

	_, err := f.saga.SellTicket(context.Background(), ticket.TicketID, dec(150))
	sagaErr := requireSagaError(t, err, http.StatusBadRequest)
	assert.Contains(t, sagaErr.Message, "exceeds original price")

	unchanged := f.tickets.Tickets[ticket.TicketID]
	assert.Equal(t, entities.TicketStatusPaid, unchanged.Status)
	assert.Nil(t, unchanged.ResalePrice)
}

func TestSellTicketPriceAbovePreviousListing(t *testing.T) {
	f := newResaleFixture()
	ticket := paidTicket(t)
	// Sold once through resale at 60; any new listing must not exceed it.
	ticket.ResalePrice = decPtr(60)
	f.tickets.Tickets[ticket.TicketID] = ticket

	_, err := f.saga.SellTicket(context.Background(), ticket.TicketID, dec(70))
	sagaErr := requireSagaError(t, err, http.StatusBadRequest)
	assert.Contains(t, sagaErr.Message, "exceeds previous resale price")
}

func TestSellTicketMissingTicket(t *testing.T) {
	f := newResaleFixture()

	_, err := f.saga.SellTicket(context.Background(), "TKT-NOPE", dec(10))
	requireSagaError(t, err, http.StatusNotFound)
}

func TestSellTicketWaitlistFailureKeepsListing(t *testing.T) {
	f := newResaleFixture()
	ticket := paidTicket(t)
	f.tickets.Tickets[ticket.TicketID] = ticket
	f.waitlist.GetErr = errors.New("waitlist store down")

	_, err := f.saga.SellTicket(context.Background(), ticket.TicketID, dec(80))
	requireSagaError(t, err, http.StatusInternalServerError)

	// The listing is not rolled back when only the fan-out failed.
	listed := f.tickets.Tickets[ticket.TicketID]
	assert.Equal(t, entities.TicketStatusAvailable, listed.Status)
	assert.Empty(t, f.notifier.Events())
}
