package saga

import (
	"context"
	"ticketing/entities"
	"ticketing/monitoring"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/google/uuid"
)

type BuyResaleResult struct {
	TicketID      string
	TransactionID string
}

// BuyResaleTicket completes a resale purchase: reassigns ownership, refunds
// the seller's original payment, writes a purchase and a refund record to
// the ledger, and notifies both parties.
//
// The order of steps is deliberate. Ownership transfer is the only step with
// a compensating action; a refund failure after the transfer is surfaced but
// not compensated, and the ledger is the reconciliation source for callers.
func (s *Resale) BuyResaleTicket(ctx context.Context, ticketID, buyerID, paymentID string) (result BuyResaleResult, err error) {
	defer func() { monitoring.RecordSaga("buy_resale_ticket", outcomeLabel(err)) }()

	run := stepRunner{log: s.steps, saga: "buy_resale_ticket", sagaID: uuid.NewString()}

	var buyer entities.User
	if stepErr := run.run(ctx, "resolve-buyer", func() error {
		buyer, err = s.users.Get(ctx, buyerID)
		return err
	}); stepErr != nil {
		return BuyResaleResult{}, Internal("could not resolve buyer "+buyerID, stepErr)
	}

	var ticket entities.Ticket
	if stepErr := run.run(ctx, "fetch-ticket", func() error {
		ticket, err = s.tickets.Get(ctx, ticketID)
		return err
	}); stepErr != nil {
		return BuyResaleResult{}, propagateStatus(stepErr, "could not fetch ticket "+ticketID)
	}

	if conflict := resalePreconditions(ticket); conflict != nil {
		return BuyResaleResult{}, conflict
	}

	sellerID := ticket.OwnerID
	originalPaymentID := ticket.PaymentID
	amount := ticket.ResaleAmount()

	var seller entities.User
	if stepErr := run.run(ctx, "resolve-seller", func() error {
		seller, err = s.users.Get(ctx, sellerID)
		return err
	}); stepErr != nil {
		return BuyResaleResult{}, Internal("could not resolve seller "+sellerID, stepErr)
	}

	// Re-verify the preconditions right before the write; a concurrent
	// purchase or check-in may have landed since the first read.
	if stepErr := run.run(ctx, "recheck-ticket", func() error {
		ticket, err = s.tickets.Get(ctx, ticketID)
		return err
	}); stepErr != nil {
		return BuyResaleResult{}, propagateStatus(stepErr, "could not re-check ticket "+ticketID)
	}
	if conflict := resalePreconditions(ticket); conflict != nil {
		return BuyResaleResult{}, conflict
	}

	if stepErr := run.run(ctx, "transfer-ownership", func() error {
		status := entities.TicketStatusPaid
		checkedIn := false
		return s.tickets.Update(ctx, ticketID, entities.TicketUpdate{
			Status:      &status,
			OwnerID:     &buyer.UserID,
			OwnerName:   &buyer.Name,
			PaymentID:   &paymentID,
			IsCheckedIn: &checkedIn,
		})
	}); stepErr != nil {
		s.revertListing(ctx, ticketID)
		return BuyResaleResult{}, Internal("could not transfer ownership of ticket "+ticketID, stepErr)
	}

	if stepErr := run.run(ctx, "refund-seller", func() error {
		return s.payments.Refund(ctx, entities.PaymentRefund{
			PaymentID: originalPaymentID,
			Amount:    amount,
		})
	}); stepErr != nil {
		// Ownership has already moved; there is no automatic reversal
		// here. The ledger below never records the failed refund.
		return BuyResaleResult{}, Internal("could not refund payment "+originalPaymentID, stepErr)
	}

	var purchaseID string
	if stepErr := run.run(ctx, "record-purchase", func() error {
		purchaseID, err = createLedgerRecord(ctx, s.transactions, s.transactionAttempts, entities.Transaction{
			Type:      entities.TransactionTypePurchase,
			UserID:    buyer.UserID,
			TicketID:  ticketID,
			PaymentID: paymentID,
			Amount:    amount,
		})
		return err
	}); stepErr != nil {
		return BuyResaleResult{}, Internal("could not record purchase transaction", stepErr)
	}

	if stepErr := run.run(ctx, "record-refund", func() error {
		_, err = createLedgerRecord(ctx, s.transactions, s.transactionAttempts, entities.Transaction{
			Type:      entities.TransactionTypeRefund,
			UserID:    sellerID,
			TicketID:  ticketID,
			PaymentID: originalPaymentID,
			Amount:    amount,
		})
		return err
	}); stepErr != nil {
		return BuyResaleResult{}, Internal("could not record refund transaction", stepErr)
	}

	notify(ctx, s.notifier, entities.TicketResold{
		Header:       entities.NewEventHeader(),
		BuyerID:      buyer.UserID,
		BuyerName:    buyer.Name,
		BuyerEmail:   buyer.Email,
		SellerID:     sellerID,
		SellerName:   seller.Name,
		SellerEmail:  seller.Email,
		TicketID:     ticketID,
		EventID:      ticket.EventID,
		EventName:    ticket.EventName,
		EventDate:    ticket.EventDateTime,
		SeatNo:       ticket.SeatNo,
		SeatCategory: ticket.SeatCategory,
		Price:        amount,
		RefundAmount: amount,
	})

	return BuyResaleResult{TicketID: ticketID, TransactionID: purchaseID}, nil
}

func resalePreconditions(ticket entities.Ticket) *Error {
	if ticket.IsCheckedIn {
		return Conflict("ticket %s is already checked in", ticket.TicketID)
	}
	if ticket.Status != entities.TicketStatusAvailable {
		return Conflict("ticket %s is not listed for resale", ticket.TicketID)
	}
	return nil
}

// revertListing is the best-effort compensation for a failed ownership
// transfer: put the ticket back on the resale listing. Its own failure is
// logged, never surfaced over the original error.
func (s *Resale) revertListing(ctx context.Context, ticketID string) {
	status := entities.TicketStatusAvailable
	if err := s.tickets.Update(ctx, ticketID, entities.TicketUpdate{Status: &status}); err != nil {
		log.FromContext(ctx).
			WithError(err).
			WithField("ticket_id", ticketID).
			Error("compensating update failed, ticket may be left in an inconsistent state")
	}
}
