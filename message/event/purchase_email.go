package event

import (
	"context"
	"fmt"
	"ticketing/entities"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

func (h Handler) SendPurchaseEmail(ctx context.Context, event *entities.TicketPurchased) error {
	log.FromContext(ctx).WithField("ticket_id", event.TicketID).Info("Sending purchase confirmation")

	to := h.resolveEmail(ctx, event.UserID, event.UserEmail)
	subject := fmt.Sprintf("Your Ticket for %s", event.EventName)

	return h.deliver(ctx, "ticket.purchased", event.Header.ID, to, subject, purchaseTemplate, event)
}
