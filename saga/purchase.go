package saga

import (
	"context"
	"errors"
	"net/http"
	"ticketing/entities"
	"ticketing/monitoring"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultTicketAttempts bounds how many freshly generated ticket IDs the
// primary purchase tries before failing the seat permanently.
const DefaultTicketAttempts = 5

// Purchase is the primary-purchase orchestrator: one new ticket per seat,
// event capacity decremented per ticket sold.
type Purchase struct {
	events       EventService
	users        UserService
	tickets      TicketService
	transactions TransactionService
	notifier     Notifier
	steps        StepLog

	ticketAttempts      int
	transactionAttempts int
}

func NewPurchase(
	events EventService,
	users UserService,
	tickets TicketService,
	transactions TransactionService,
	notifier Notifier,
	steps StepLog,
) *Purchase {
	if events == nil {
		panic("events service is nil")
	}
	if users == nil {
		panic("users service is nil")
	}
	if tickets == nil {
		panic("tickets service is nil")
	}
	if transactions == nil {
		panic("transactions service is nil")
	}
	if notifier == nil {
		panic("notifier is nil")
	}
	if steps == nil {
		steps = NopStepLog{}
	}

	return &Purchase{
		events:              events,
		users:               users,
		tickets:             tickets,
		transactions:        transactions,
		notifier:            notifier,
		steps:               steps,
		ticketAttempts:      DefaultTicketAttempts,
		transactionAttempts: DefaultTransactionAttempts,
	}
}

type BuyTicketRequest struct {
	UserID        string
	EventID       string
	EventName     string
	EventDateTime time.Time
	Seats         []SeatRequest
}

type SeatRequest struct {
	SeatNo       int
	SeatCategory string
	Price        decimal.Decimal
	PaymentID    string
}

// SeatResult is one per-seat outcome of a batch purchase. Code mirrors the
// HTTP status the seat would have answered with on its own.
type SeatResult struct {
	SeatNo        int    `json:"seatNo"`
	Code          int    `json:"code"`
	TicketID      string `json:"ticketID,omitempty"`
	TransactionID string `json:"transactionID,omitempty"`
	Message       string `json:"message,omitempty"`
}

// BuyTicket processes every seat in the request independently: a failed seat
// reports its error in its own result and does not abort the rest. There is
// no atomicity across seats.
func (p *Purchase) BuyTicket(ctx context.Context, request BuyTicketRequest) []SeatResult {
	results := make([]SeatResult, 0, len(request.Seats))

	for _, seat := range request.Seats {
		ticketID, transactionID, err := p.buySeat(ctx, request, seat)
		if err != nil {
			monitoring.RecordSaga("buy_ticket", outcomeLabel(err))

			code := http.StatusInternalServerError
			var sagaErr *Error
			if errors.As(err, &sagaErr) {
				code = sagaErr.Status
			}
			results = append(results, SeatResult{
				SeatNo:  seat.SeatNo,
				Code:    code,
				Message: err.Error(),
			})
			continue
		}

		monitoring.RecordSaga("buy_ticket", "success")
		results = append(results, SeatResult{
			SeatNo:        seat.SeatNo,
			Code:          http.StatusCreated,
			TicketID:      ticketID,
			TransactionID: transactionID,
		})
	}

	return results
}

func (p *Purchase) buySeat(ctx context.Context, request BuyTicketRequest, seat SeatRequest) (ticketID, transactionID string, err error) {
	run := stepRunner{log: p.steps, saga: "buy_ticket", sagaID: uuid.NewString()}

	var date entities.EventDate
	if stepErr := run.run(ctx, "fetch-event-date", func() error {
		date, err = p.events.GetDate(ctx, request.EventID, request.EventDateTime)
		return err
	}); stepErr != nil {
		return "", "", Internal("could not read event date for "+request.EventID, stepErr)
	}

	// No availableSeats >= 1 check here: the event store rejects a
	// negative count and that rejection fails the seat.
	if stepErr := run.run(ctx, "decrement-seats", func() error {
		return p.events.UpdateAvailableSeats(ctx, request.EventID, request.EventDateTime, date.AvailableSeats-1)
	}); stepErr != nil {
		return "", "", Internal("could not decrement available seats for "+request.EventID, stepErr)
	}

	var buyer entities.User
	if stepErr := run.run(ctx, "resolve-buyer", func() error {
		buyer, err = p.users.Get(ctx, request.UserID)
		return err
	}); stepErr != nil {
		return "", "", Internal("could not resolve buyer "+request.UserID, stepErr)
	}

	if stepErr := run.run(ctx, "create-ticket", func() error {
		ticketID, err = p.createTicket(ctx, request, seat, buyer)
		return err
	}); stepErr != nil {
		return "", "", Internal("could not create ticket", stepErr)
	}

	if stepErr := run.run(ctx, "record-purchase", func() error {
		transactionID, err = createLedgerRecord(ctx, p.transactions, p.transactionAttempts, entities.Transaction{
			Type:      entities.TransactionTypePurchase,
			UserID:    buyer.UserID,
			TicketID:  ticketID,
			PaymentID: seat.PaymentID,
			Amount:    seat.Price,
		})
		return err
	}); stepErr != nil {
		return "", "", Internal("could not record purchase transaction", stepErr)
	}

	notify(ctx, p.notifier, entities.TicketPurchased{
		Header:       entities.NewEventHeader(),
		UserID:       buyer.UserID,
		UserName:     buyer.Name,
		UserEmail:    buyer.Email,
		TicketID:     ticketID,
		EventID:      request.EventID,
		EventName:    request.EventName,
		EventDate:    request.EventDateTime,
		SeatNo:       seat.SeatNo,
		SeatCategory: seat.SeatCategory,
		Price:        seat.Price,
	})

	return ticketID, transactionID, nil
}

// createTicket retries with a fresh ID on every failure, up to the attempt
// bound. The ticket store treats the ID as caller-supplied, so a collision
// with an existing ticket is indistinguishable from any other rejection.
func (p *Purchase) createTicket(ctx context.Context, request BuyTicketRequest, seat SeatRequest, buyer entities.User) (string, error) {
	attempts := p.ticketAttempts
	if attempts <= 0 {
		attempts = DefaultTicketAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		ticketID := newTicketID()

		lastErr = p.tickets.Create(ctx, entities.Ticket{
			TicketID:      ticketID,
			OwnerID:       buyer.UserID,
			OwnerName:     buyer.Name,
			EventID:       request.EventID,
			EventName:     request.EventName,
			EventDateTime: request.EventDateTime,
			SeatNo:        seat.SeatNo,
			SeatCategory:  seat.SeatCategory,
			Price:         seat.Price,
			Status:        entities.TicketStatusPaid,
			PaymentID:     seat.PaymentID,
			IsCheckedIn:   false,
		})
		if lastErr == nil {
			return ticketID, nil
		}

		log.FromContext(ctx).
			WithError(lastErr).
			WithField("ticket_id", ticketID).
			WithField("attempt", attempt).
			Warn("ticket creation rejected, retrying with a new ID")
	}

	return "", lastErr
}
