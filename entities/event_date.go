package entities

import "time"

// EventDate is one showing of an event, with its own seat capacity.
type EventDate struct {
	EventID        string    `json:"eventID"`
	EventName      string    `json:"name"`
	Venue          string    `json:"venue"`
	EventDateTime  time.Time `json:"eventDateTime"`
	TotalSeats     int       `json:"totalSeats"`
	AvailableSeats int       `json:"availableSeats"`
}
