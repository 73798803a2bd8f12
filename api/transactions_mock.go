package api

import (
	"context"
	"fmt"
	"sync"
	"ticketing/entities"
)

type TransactionsMock struct {
	lock sync.Mutex

	Created []entities.Transaction

	// RejectFirst makes the first N creates fail as ID collisions,
	// regardless of the ID sent.
	RejectFirst int
	attempts    int

	CreateErr error
}

func (m *TransactionsMock) Create(ctx context.Context, transaction entities.Transaction) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.CreateErr != nil {
		return m.CreateErr
	}

	m.attempts++
	if m.attempts <= m.RejectFirst {
		return fmt.Errorf("%w: %s", ErrDuplicateTransactionID, transaction.TransactionID)
	}
	for _, created := range m.Created {
		if created.TransactionID == transaction.TransactionID {
			return fmt.Errorf("%w: %s", ErrDuplicateTransactionID, transaction.TransactionID)
		}
	}

	m.Created = append(m.Created, transaction)

	return nil
}

func (m *TransactionsMock) Attempts() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.attempts
}
