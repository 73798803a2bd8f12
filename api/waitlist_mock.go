package api

import (
	"context"
	"sync"
	"ticketing/entities"
	"time"
)

type WaitlistMock struct {
	lock sync.Mutex

	Entries map[string][]entities.WaitlistEntry
	GetErr  error
}

func NewWaitlistMock() *WaitlistMock {
	return &WaitlistMock{Entries: map[string][]entities.WaitlistEntry{}}
}

func (m *WaitlistMock) Add(eventID string, eventDateTime time.Time, entries ...entities.WaitlistEntry) {
	m.lock.Lock()
	defer m.lock.Unlock()

	key := eventDateKey(eventID, eventDateTime)
	m.Entries[key] = append(m.Entries[key], entries...)
}

func (m *WaitlistMock) Get(ctx context.Context, eventID string, eventDateTime time.Time) ([]entities.WaitlistEntry, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.Entries[eventDateKey(eventID, eventDateTime)], nil
}
