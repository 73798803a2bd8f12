package service

import (
	"context"
	"ticketing/db"
	ticketingHttp "ticketing/http"
	"ticketing/message"
	"ticketing/message/event"
	"ticketing/message/outbox"
	"ticketing/saga"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	watermillMessage "github.com/ThreeDotsLabs/watermill/message"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func init() {
	log.Init(logrus.InfoLevel)
}

type Service struct {
	watermillRouter *watermillMessage.Router
	echoRouter      *echo.Echo
}

func New(
	redisClient *redis.Client,
	conn db.DB,
	tickets saga.TicketService,
	users saga.UserService,
	transactions saga.TransactionService,
	payments saga.PaymentService,
	events saga.EventService,
	waitlist saga.WaitlistService,
	userDirectory event.UserDirectory,
	mailer event.Mailer,
	checkInBaseURL string,
) (Service, error) {
	watermillLogger := log.NewWatermill(log.FromContext(context.Background()))

	redisPublisher := message.NewRedisPublisher(redisClient, watermillLogger)

	conn.MigrateSchema()

	notifier := db.NewNotificationOutbox(conn)
	stepLog := db.NewSagaLogRepository(conn)

	resaleSaga := saga.NewResale(tickets, users, transactions, payments, waitlist, notifier, stepLog)
	purchaseSaga := saga.NewPurchase(events, users, tickets, transactions, notifier, stepLog)
	checkInSaga := saga.NewCheckIn(tickets, notifier)

	eventsHandler := event.NewHandler(userDirectory, mailer)
	eventProcessorConfig := event.NewProcessorConfig(redisClient, watermillLogger)

	pgSubscriber, err := outbox.NewPostgresSubscriber(conn.Conn, watermillLogger)
	if err != nil {
		return Service{}, err
	}

	watermillRouter := message.NewWatermillRouter(
		pgSubscriber,
		redisPublisher,
		eventProcessorConfig,
		eventsHandler,
		watermillLogger,
	)

	echoRouter := ticketingHttp.NewHttpRouter(
		resaleSaga,
		purchaseSaga,
		checkInSaga,
		checkInBaseURL,
	)

	return Service{
		watermillRouter: watermillRouter,
		echoRouter:      echoRouter,
	}, nil
}

func (s Service) Run(ctx context.Context) error {
	errgrp, ctx := errgroup.WithContext(ctx)

	errgrp.Go(func() error {
		return s.watermillRouter.Run(ctx)
	})

	errgrp.Go(func() error {
		// The HTTP server must not report healthy before the router runs.
		<-s.watermillRouter.Running()

		return s.echoRouter.Start(":8080")
	})

	errgrp.Go(func() error {
		<-ctx.Done()
		return s.echoRouter.Shutdown(context.Background())
	})

	return errgrp.Wait()
}
