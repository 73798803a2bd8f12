package api

import (
	"context"
	"sync"
	"ticketing/entities"
)

type PaymentsMock struct {
	lock sync.Mutex

	Refunds   []entities.PaymentRefund
	RefundErr error
}

func (m *PaymentsMock) Refund(ctx context.Context, refund entities.PaymentRefund) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.RefundErr != nil {
		return m.RefundErr
	}
	m.Refunds = append(m.Refunds, refund)

	return nil
}
