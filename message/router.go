package message

import (
	"ticketing/message/event"
	"ticketing/message/outbox"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
)

func NewWatermillRouter(
	pgSubscriber message.Subscriber,
	publisher message.Publisher,
	eventProcessorConfig cqrs.EventProcessorConfig,
	eventHandler event.Handler,
	watermillLogger watermill.LoggerAdapter) *message.Router {
	router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		panic(err)
	}

	useMiddlewares(router, watermillLogger)

	_, err = outbox.NewForwarder(pgSubscriber, publisher, watermillLogger, router)
	if err != nil {
		panic(err)
	}

	eventProcessor, err := cqrs.NewEventProcessorWithConfig(router, eventProcessorConfig)
	if err != nil {
		panic(err)
	}

	err = eventProcessor.AddHandlers(
		cqrs.NewEventHandler(
			"SendPurchaseEmail",
			eventHandler.SendPurchaseEmail,
		),
		cqrs.NewEventHandler(
			"SendResaleEmails",
			eventHandler.SendResaleEmails,
		),
		cqrs.NewEventHandler(
			"SendWaitlistEmail",
			eventHandler.SendWaitlistEmail,
		),
		cqrs.NewEventHandler(
			"SendCheckInEmail",
			eventHandler.SendCheckInEmail,
		),
		cqrs.NewEventHandler(
			"SendPaymentEmail",
			eventHandler.SendPaymentEmail,
		),
	)
	if err != nil {
		panic(err)
	}

	return router
}
