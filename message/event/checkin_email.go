package event

import (
	"context"
	"fmt"
	"ticketing/entities"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

func (h Handler) SendCheckInEmail(ctx context.Context, event *entities.TicketCheckedIn) error {
	log.FromContext(ctx).WithField("ticket_id", event.TicketID).Info("Sending check-in confirmation")

	to := h.resolveEmail(ctx, event.UserID, "")
	subject := fmt.Sprintf("Check-in Confirmation for %s", event.EventName)

	return h.deliver(ctx, "ticket.checkedin", event.Header.ID, to, subject, checkInTemplate, event)
}
