package event

import (
	"context"
	"fmt"
	"ticketing/entities"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

func (h Handler) SendWaitlistEmail(ctx context.Context, event *entities.WaitlistSeatAvailable) error {
	log.FromContext(ctx).WithField("event_id", event.EventID).Info("Sending waitlist notification")

	to := h.resolveEmail(ctx, event.UserID, "")
	subject := fmt.Sprintf("Tickets Now Available for %s", event.EventName)

	return h.deliver(ctx, "waitlist.available", event.Header.ID, to, subject, waitlistTemplate, event)
}
