package db

import (
	"context"
)

// SagaLogRepository persists one row per saga step transition so a partially
// completed saga can be reconstructed after the fact.
type SagaLogRepository struct {
	db DB
}

func NewSagaLogRepository(db DB) SagaLogRepository {
	return SagaLogRepository{db: db}
}

func (r SagaLogRepository) StepStarted(ctx context.Context, sagaID, saga, step string) error {
	_, err := r.db.Conn.ExecContext(ctx, `
		INSERT INTO saga_log (saga_id, saga, step, status)
		VALUES ($1, $2, $3, 'started')`,
		sagaID, saga, step)
	return err
}

func (r SagaLogRepository) StepFinished(ctx context.Context, sagaID, saga, step string, stepErr error) error {
	status := "ok"
	detail := ""
	if stepErr != nil {
		status = "failed"
		detail = stepErr.Error()
	}

	_, err := r.db.Conn.ExecContext(ctx, `
		INSERT INTO saga_log (saga_id, saga, step, status, detail)
		VALUES ($1, $2, $3, $4, $5)`,
		sagaID, saga, step, status, detail)
	return err
}
