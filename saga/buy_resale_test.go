package saga_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"ticketing/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listedTicket(t *testing.T) entities.Ticket {
	return entities.Ticket{
		TicketID:      "TKT-RESALE",
		OwnerID:       "seller-1",
		OwnerName:     "Sam",
		EventID:       "event-1",
		EventName:     "Hamilton",
		EventDateTime: showingAt(t, "2026-10-01T20:00:00Z"),
		SeatNo:        12,
		SeatCategory:  "VIP",
		Price:         dec(100),
		ResalePrice:   decPtr(80),
		Status:        entities.TicketStatusAvailable,
		PaymentID:     "pay-seller",
	}
}

func resaleParties() (seller, buyer entities.User) {
	seller = entities.User{UserID: "seller-1", Name: "Sam", Email: "sam@example.com"}
	buyer = entities.User{UserID: "buyer-1", Name: "Billie", Email: "billie@example.com"}
	return seller, buyer
}

func TestBuyResaleTicketSuccess(t *testing.T) {
	seller, buyer := resaleParties()
	f := newResaleFixture(seller, buyer)
	ticket := listedTicket(t)
	f.tickets.Tickets[ticket.TicketID] = ticket

	result, err := f.saga.BuyResaleTicket(context.Background(), ticket.TicketID, buyer.UserID, "pay-buyer")
	require.NoError(t, err)

	assert.Equal(t, ticket.TicketID, result.TicketID)
	assert.True(t, strings.HasPrefix(result.TransactionID, "TXN-"))

	transferred := f.tickets.Tickets[ticket.TicketID]
	assert.Equal(t, entities.TicketStatusPaid, transferred.Status)
	assert.Equal(t, buyer.UserID, transferred.OwnerID)
	assert.Equal(t, buyer.Name, transferred.OwnerName)
	assert.Equal(t, "pay-buyer", transferred.PaymentID)
	assert.False(t, transferred.IsCheckedIn)

	require.Len(t, f.payments.Refunds, 1)
	assert.Equal(t, "pay-seller", f.payments.Refunds[0].PaymentID)
	assert.True(t, f.payments.Refunds[0].Amount.Equal(dec(80)))

	require.Len(t, f.transactions.Created, 2)
	purchase, refund := f.transactions.Created[0], f.transactions.Created[1]
	assert.Equal(t, entities.TransactionTypePurchase, purchase.Type)
	assert.Equal(t, buyer.UserID, purchase.UserID)
	assert.Equal(t, result.TransactionID, purchase.TransactionID)
	assert.Equal(t, entities.TransactionTypeRefund, refund.Type)
	assert.Equal(t, seller.UserID, refund.UserID)
	assert.NotEqual(t, purchase.TransactionID, refund.TransactionID)

	events := f.notifier.Events()
	require.Len(t, events, 1)
	resold, ok := events[0].(entities.TicketResold)
	require.True(t, ok)
	assert.Equal(t, buyer.Email, resold.BuyerEmail)
	assert.Equal(t, seller.Email, resold.SellerEmail)
	assert.True(t, resold.Price.Equal(dec(80)))
}

func TestBuyResaleTicketNotListed(t *testing.T) {
	seller, buyer := resaleParties()
	f := newResaleFixture(seller, buyer)
	ticket := listedTicket(t)
	ticket.Status = entities.TicketStatusPaid
	f.tickets.Tickets[ticket.TicketID] = ticket

	_, err := f.saga.BuyResaleTicket(context.Background(), ticket.TicketID, buyer.UserID, "pay-buyer")
	sagaErr := requireSagaError(t, err, http.StatusConflict)
	assert.Contains(t, sagaErr.Message, "not listed for resale")

	assert.Empty(t, f.tickets.Updates)
	assert.Empty(t, f.payments.Refunds)
	assert.Empty(t, f.transactions.Created)
	assert.Empty(t, f.notifier.Events())
}

func TestBuyResaleTicketCheckedIn(t *testing.T) {
	seller, buyer := resaleParties()
	f := newResaleFixture(seller, buyer)
	ticket := listedTicket(t)
	ticket.IsCheckedIn = true
	f.tickets.Tickets[ticket.TicketID] = ticket

	_, err := f.saga.BuyResaleTicket(context.Background(), ticket.TicketID, buyer.UserID, "pay-buyer")
	sagaErr := requireSagaError(t, err, http.StatusConflict)
	assert.Contains(t, sagaErr.Message, "already checked in")

	assert.Empty(t, f.tickets.Updates)
	assert.Empty(t, f.payments.Refunds)
}

func TestBuyResaleTicketMissingTicket(t *testing.T) {
	_, buyer := resaleParties()
	f := newResaleFixture(buyer)

	_, err := f.saga.BuyResaleTicket(context.Background(), "TKT-NOPE", buyer.UserID, "pay-buyer")
	requireSagaError(t, err, http.StatusNotFound)
}

func TestBuyResaleTicketTransferFailure(t *testing.T) {
	seller, buyer := resaleParties()
	f := newResaleFixture(seller, buyer)
	ticket := listedTicket(t)
	f.tickets.Tickets[ticket.TicketID] = ticket
	f.tickets.UpdateErr = errors.New("ticket store down")

	_, err := f.saga.BuyResaleTicket(context.Background(), ticket.TicketID, buyer.UserID, "pay-buyer")
	requireSagaError(t, err, http.StatusInternalServerError)

	assert.Empty(t, f.payments.Refunds)
	assert.Empty(t, f.transactions.Created)
	assert.Empty(t, f.notifier.Events())
}

func TestBuyResaleTicketRefundFailureNotCompensated(t *testing.T) {
	seller, buyer := resaleParties()
	f := newResaleFixture(seller, buyer)
	ticket := listedTicket(t)
	f.tickets.Tickets[ticket.TicketID] = ticket
	f.payments.RefundErr = errors.New("payment collaborator down")

	_, err := f.saga.BuyResaleTicket(context.Background(), ticket.TicketID, buyer.UserID, "pay-buyer")
	requireSagaError(t, err, http.StatusInternalServerError)

	// Ownership already moved and is not reversed; the missing refund is
	// visible as the absence of ledger records.
	transferred := f.tickets.Tickets[ticket.TicketID]
	assert.Equal(t, buyer.UserID, transferred.OwnerID)
	assert.Empty(t, f.transactions.Created)
}

func TestBuyResaleTicketCollisionRetry(t *testing.T) {
	seller, buyer := resaleParties()
	f := newResaleFixture(seller, buyer)
	ticket := listedTicket(t)
	f.tickets.Tickets[ticket.TicketID] = ticket
	f.transactions.RejectFirst = 2

	result, err := f.saga.BuyResaleTicket(context.Background(), ticket.TicketID, buyer.UserID, "pay-buyer")
	require.NoError(t, err)
	require.Len(t, f.transactions.Created, 2)

	// Two collisions on the purchase record, then success, then the refund
	// record on the first try.
	assert.Equal(t, 4, f.transactions.Attempts())
	assert.NotEmpty(t, result.TransactionID)
}

func TestBuyResaleTicketCollisionRetryExhausted(t *testing.T) {
	seller, buyer := resaleParties()
	f := newResaleFixture(seller, buyer)
	ticket := listedTicket(t)
	f.tickets.Tickets[ticket.TicketID] = ticket
	f.transactions.RejectFirst = 100

	_, err := f.saga.BuyResaleTicket(context.Background(), ticket.TicketID, buyer.UserID, "pay-buyer")
	requireSagaError(t, err, http.StatusInternalServerError)

	// The retry loop is bounded, it does not spin until the store yields.
	assert.Equal(t, 5, f.transactions.Attempts())
	assert.Empty(t, f.transactions.Created)
}
