package event

import (
	"context"
	"fmt"
	"ticketing/entities"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

// SendResaleEmails notifies both sides of a resale. Each side is deduplicated
// separately, so a retry after a partial failure only re-sends the missing one.
func (h Handler) SendResaleEmails(ctx context.Context, event *entities.TicketResold) error {
	log.FromContext(ctx).WithField("ticket_id", event.TicketID).Info("Sending resale confirmations")

	buyerTo := h.resolveEmail(ctx, event.BuyerID, event.BuyerEmail)
	buyerSubject := fmt.Sprintf("Your Resale Ticket Purchase for %s", event.EventName)
	if err := h.deliver(ctx, "ticket.resold", event.Header.ID, buyerTo, buyerSubject, resaleBuyerTemplate, event); err != nil {
		return err
	}

	sellerTo := h.resolveEmail(ctx, event.SellerID, event.SellerEmail)
	sellerSubject := fmt.Sprintf("Your Ticket for %s Has Been Resold", event.EventName)
	return h.deliver(ctx, "ticket.resold", event.Header.ID, sellerTo, sellerSubject, resaleSellerTemplate, event)
}
