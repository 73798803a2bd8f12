package api

import (
	"context"
	"net/http"
	"sync"
	"ticketing/entities"
)

// TicketsMock models the ticket store's own rules (monotone resale price,
// checked-in immutability) so saga tests exercise the real conflict paths.
type TicketsMock struct {
	lock sync.Mutex

	Tickets map[string]entities.Ticket
	Updates []entities.TicketUpdate

	GetErr    error
	UpdateErr error

	// CreateFailures makes the first N Create calls fail with a 500.
	CreateFailures int
	CreateAttempts int
}

func NewTicketsMock() *TicketsMock {
	return &TicketsMock{Tickets: map[string]entities.Ticket{}}
}

func (m *TicketsMock) Get(ctx context.Context, ticketID string) (entities.Ticket, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.GetErr != nil {
		return entities.Ticket{}, m.GetErr
	}
	ticket, ok := m.Tickets[ticketID]
	if !ok {
		return entities.Ticket{}, &CollaboratorError{
			Service: "ticket", URL: "/ticket/" + ticketID,
			StatusCode: http.StatusNotFound, Message: "Ticket not found.",
		}
	}
	return ticket, nil
}

func (m *TicketsMock) Update(ctx context.Context, ticketID string, update entities.TicketUpdate) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.UpdateErr != nil {
		return m.UpdateErr
	}

	ticket, ok := m.Tickets[ticketID]
	if !ok {
		return &CollaboratorError{
			Service: "ticket", URL: "/ticket/" + ticketID,
			StatusCode: http.StatusNotFound, Message: "Ticket not found.",
		}
	}
	if ticket.IsCheckedIn && update.IsCheckedIn == nil {
		return &CollaboratorError{
			Service: "ticket", URL: "/ticket/" + ticketID,
			StatusCode: http.StatusConflict,
			Message:    "Ticket is already checked in and cannot be modified.",
		}
	}
	if update.ResalePrice != nil {
		if err := ticket.ValidateResalePrice(*update.ResalePrice); err != nil {
			return &CollaboratorError{
				Service: "ticket", URL: "/ticket/" + ticketID,
				StatusCode: http.StatusBadRequest, Message: err.Error(),
			}
		}
		ticket.ResalePrice = update.ResalePrice
	}
	if update.Status != nil {
		ticket.Status = *update.Status
	}
	if update.OwnerID != nil {
		ticket.OwnerID = *update.OwnerID
	}
	if update.OwnerName != nil {
		ticket.OwnerName = *update.OwnerName
	}
	if update.PaymentID != nil {
		ticket.PaymentID = *update.PaymentID
	}
	if update.IsCheckedIn != nil {
		ticket.IsCheckedIn = *update.IsCheckedIn
	}

	m.Tickets[ticketID] = ticket
	m.Updates = append(m.Updates, update)

	return nil
}

func (m *TicketsMock) Create(ctx context.Context, ticket entities.Ticket) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.CreateAttempts++
	if m.CreateAttempts <= m.CreateFailures {
		return &CollaboratorError{
			Service: "ticket", URL: "/ticket/" + ticket.TicketID,
			StatusCode: http.StatusInternalServerError, Message: "store unavailable",
		}
	}
	if _, ok := m.Tickets[ticket.TicketID]; ok {
		return ErrTicketExists
	}
	m.Tickets[ticket.TicketID] = ticket

	return nil
}

func (m *TicketsMock) EventDetails(ctx context.Context, ticketID string) (entities.EventDetails, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	ticket, ok := m.Tickets[ticketID]
	if !ok {
		return entities.EventDetails{}, &CollaboratorError{
			Service: "ticket", URL: "/graphql", StatusCode: http.StatusOK,
			Message: "eventDetails query returned no event for ticket " + ticketID,
		}
	}
	return entities.EventDetails{
		EventID:       ticket.EventID,
		EventName:     ticket.EventName,
		EventDateTime: ticket.EventDateTime,
	}, nil
}

func (m *TicketsMock) IsCheckedIn(ctx context.Context, ticketID string) (bool, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	ticket, ok := m.Tickets[ticketID]
	if !ok {
		return false, &CollaboratorError{
			Service: "ticket", URL: "/graphql", StatusCode: http.StatusOK,
			Message: "isCheckedIn query returned no result for ticket " + ticketID,
		}
	}
	return ticket.IsCheckedIn, nil
}
