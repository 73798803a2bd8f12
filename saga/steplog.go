package saga

import (
	"context"
	"ticketing/entities"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

// StepLog records each external call a saga makes, before and after it runs.
// The log is the forensic record for partially completed sagas; writes to it
// are best-effort and never fail the saga itself.
type StepLog interface {
	StepStarted(ctx context.Context, sagaID, saga, step string) error
	StepFinished(ctx context.Context, sagaID, saga, step string, stepErr error) error
}

type NopStepLog struct{}

func (NopStepLog) StepStarted(ctx context.Context, sagaID, saga, step string) error {
	return nil
}

func (NopStepLog) StepFinished(ctx context.Context, sagaID, saga, step string, stepErr error) error {
	return nil
}

type stepRunner struct {
	log    StepLog
	saga   string
	sagaID string
}

func (r stepRunner) run(ctx context.Context, step string, fn func() error) error {
	if err := r.log.StepStarted(ctx, r.sagaID, r.saga, step); err != nil {
		log.FromContext(ctx).WithError(err).Warn("could not record saga step start")
	}

	stepErr := fn()

	if err := r.log.StepFinished(ctx, r.sagaID, r.saga, step, stepErr); err != nil {
		log.FromContext(ctx).WithError(err).Warn("could not record saga step outcome")
	}

	return stepErr
}

// notify publishes through the outbox and swallows failures: notification
// delivery must never fail the saga step that produced it.
func notify(ctx context.Context, notifier Notifier, event entities.Event) {
	if err := notifier.Notify(ctx, event); err != nil {
		log.FromContext(ctx).
			WithError(err).
			WithField("routing_key", event.Key()).
			Error("could not publish notification")
	}
}
