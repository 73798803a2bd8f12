package event

import (
	"context"
	"ticketing/entities"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

func (h Handler) SendPaymentEmail(ctx context.Context, event *entities.PaymentSucceeded) error {
	log.FromContext(ctx).WithField("payment_id", event.PaymentID).Info("Sending payment confirmation")

	to := h.resolveEmail(ctx, event.UserID, event.UserEmail)

	return h.deliver(ctx, "payment.successful", event.Header.ID, to, "Payment Confirmation", paymentTemplate, event)
}
