package entities

import "time"

// WaitlistEntry is one user waitlisted for an (eventID, eventDateTime) pair.
// Entries are read, never removed, when a resale listing appears.
type WaitlistEntry struct {
	UserID       string    `json:"userID"`
	WaitlistDate time.Time `json:"waitlistDate"`
}
