package db

import (
	"context"
	"errors"
	"fmt"
	"ticketing/entities"
	"ticketing/message/event"
	"ticketing/message/outbox"
)

// NotificationOutbox stores notifications in Postgres inside a transaction;
// the forwarder moves them to the broker asynchronously. A stored notification
// survives broker downtime.
type NotificationOutbox struct {
	db DB
}

func NewNotificationOutbox(db DB) NotificationOutbox {
	return NotificationOutbox{db: db}
}

func (o NotificationOutbox) Notify(ctx context.Context, notification entities.Event) (err error) {
	tx, err := o.db.Conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			rollbackErr := tx.Rollback()
			err = errors.Join(err, rollbackErr)
			return
		}
		err = tx.Commit()
	}()

	publisher, err := outbox.NewPublisherForDb(ctx, tx)
	if err != nil {
		return fmt.Errorf("could not create outbox publisher: %w", err)
	}

	if err := event.NewBus(publisher).Publish(ctx, notification); err != nil {
		return fmt.Errorf("could not store notification: %w", err)
	}

	return nil
}
