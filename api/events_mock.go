package api

import (
	"context"
	"net/http"
	"sync"
	"ticketing/entities"
	"time"
)

// EventsMock enforces the store-side guard against negative seat counts,
// which the purchase saga deliberately relies on.
type EventsMock struct {
	lock sync.Mutex

	Dates map[string]entities.EventDate

	GetErr    error
	UpdateErr error
}

func NewEventsMock(dates ...entities.EventDate) *EventsMock {
	m := &EventsMock{Dates: map[string]entities.EventDate{}}
	for _, date := range dates {
		m.Dates[eventDateKey(date.EventID, date.EventDateTime)] = date
	}
	return m
}

func eventDateKey(eventID string, eventDateTime time.Time) string {
	return eventID + "|" + eventDateTime.UTC().Format(time.RFC3339)
}

func (m *EventsMock) GetDate(ctx context.Context, eventID string, eventDateTime time.Time) (entities.EventDate, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.GetErr != nil {
		return entities.EventDate{}, m.GetErr
	}
	date, ok := m.Dates[eventDateKey(eventID, eventDateTime)]
	if !ok {
		return entities.EventDate{}, &CollaboratorError{
			Service: "event", URL: "/event/" + eventID,
			StatusCode: http.StatusNotFound, Message: "Event date not found.",
		}
	}
	return date, nil
}

func (m *EventsMock) UpdateAvailableSeats(ctx context.Context, eventID string, eventDateTime time.Time, availableSeats int) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	if availableSeats < 0 {
		return &CollaboratorError{
			Service: "event", URL: "/event/" + eventID,
			StatusCode: http.StatusBadRequest,
			Message:    "Available seats must be a non-negative integer.",
		}
	}

	key := eventDateKey(eventID, eventDateTime)
	date, ok := m.Dates[key]
	if !ok {
		return &CollaboratorError{
			Service: "event", URL: "/event/" + eventID,
			StatusCode: http.StatusNotFound, Message: "Event date not found.",
		}
	}
	date.AvailableSeats = availableSeats
	m.Dates[key] = date

	return nil
}
