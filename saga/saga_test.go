package saga_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"ticketing/api"
	"ticketing/entities"
	"ticketing/saga"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type notifierMock struct {
	lock sync.Mutex

	NotifyErr error
	events    []entities.Event
}

func (m *notifierMock) Notify(ctx context.Context, event entities.Event) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.NotifyErr != nil {
		return m.NotifyErr
	}
	m.events = append(m.events, event)
	return nil
}

func (m *notifierMock) Events() []entities.Event {
	m.lock.Lock()
	defer m.lock.Unlock()

	out := make([]entities.Event, len(m.events))
	copy(out, m.events)
	return out
}

type resaleFixture struct {
	tickets      *api.TicketsMock
	users        *api.UsersMock
	transactions *api.TransactionsMock
	payments     *api.PaymentsMock
	waitlist     *api.WaitlistMock
	notifier     *notifierMock

	saga *saga.Resale
}

func newResaleFixture(users ...entities.User) *resaleFixture {
	f := &resaleFixture{
		tickets:      api.NewTicketsMock(),
		users:        api.NewUsersMock(users...),
		transactions: &api.TransactionsMock{},
		payments:     &api.PaymentsMock{},
		waitlist:     api.NewWaitlistMock(),
		notifier:     &notifierMock{},
	}
	f.saga = saga.NewResale(f.tickets, f.users, f.transactions, f.payments, f.waitlist, f.notifier, nil)
	return f
}

func dec(value int64) decimal.Decimal {
	return decimal.NewFromInt(value)
}

func decPtr(value int64) *decimal.Decimal {
	d := decimal.NewFromInt(value)
	return &d
}

func showingAt(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func requireSagaError(t *testing.T, err error, status int) *saga.Error {
	t.Helper()
	require.Error(t, err)
	sagaErr, ok := err.(*saga.Error)
	require.Truef(t, ok, "expected *saga.Error, got %T: %v", err, err)
	require.Equal(t, status, sagaErr.Status)
	return sagaErr
}
