package event

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"ticketing/entities"
	"ticketing/monitoring"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/sirupsen/logrus"
)

type UserDirectory interface {
	Get(ctx context.Context, userID string) (entities.User, error)
}

type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

const (
	dedupCacheSize = 1024
	dedupCacheTTL  = time.Hour
)

type Handler struct {
	users  UserDirectory
	mailer Mailer
	seen   *seenCache
}

func NewHandler(users UserDirectory, mailer Mailer) Handler {
	if users == nil {
		panic("missing users directory")
	}
	if mailer == nil {
		panic("missing mailer")
	}
	return Handler{
		users:  users,
		mailer: mailer,
		seen:   newSeenCache(dedupCacheSize, dedupCacheTTL),
	}
}

// resolveEmail returns the recipient address, falling back to the user store
// when the event did not carry one. An empty result means the notification has
// no deliverable recipient and must be dropped, not retried.
func (h Handler) resolveEmail(ctx context.Context, userID, email string) string {
	if email != "" {
		return email
	}
	if userID == "" {
		return ""
	}

	user, err := h.users.Get(ctx, userID)
	if err != nil {
		log.FromContext(ctx).
			WithError(err).
			WithField("user_id", userID).
			Error("could not resolve notification recipient")
		return ""
	}
	return user.Email
}

// deliver renders and sends one email. Messages without a recipient are
// dropped permanently; send failures are returned so the message is retried.
// Each (event, recipient) pair is sent at most once within the dedup window.
func (h Handler) deliver(ctx context.Context, kind, eventID, to, subject string, tmpl *template.Template, data any) error {
	logger := log.FromContext(ctx).WithFields(logrus.Fields{
		"kind":     kind,
		"event_id": eventID,
	})

	if to == "" {
		logger.Error("Dropping notification with no deliverable recipient")
		monitoring.RecordEmail(kind, "dropped")
		return nil
	}

	dedupKey := eventID + "|" + to
	if h.seen.Seen(dedupKey) {
		logger.Info("Skipping already delivered notification")
		return nil
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		monitoring.RecordEmail(kind, "failed")
		return fmt.Errorf("could not render %s email: %w", kind, err)
	}

	if err := h.mailer.Send(ctx, to, subject, body.String()); err != nil {
		monitoring.RecordEmail(kind, "failed")
		return fmt.Errorf("could not send %s email: %w", kind, err)
	}

	h.seen.Mark(dedupKey)
	monitoring.RecordEmail(kind, "sent")
	logger.Info("Notification email sent")

	return nil
}
