package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"

	"ticketing/api"
	"ticketing/db"
	"ticketing/mail"
	"ticketing/message"
	"ticketing/service"
	observability "ticketing/trace"

	"github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	tp := observability.ConfigureTraceProvider()
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logrus.WithError(err).Warn("could not shut down trace provider")
		}
	}()

	conn, err := db.NewDBConn(os.Getenv("POSTGRES_URL"))
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to postgres")
	}
	defer conn.Close()

	smtpPort, err := strconv.Atoi(envOr("SMTP_PORT", "587"))
	if err != nil {
		logrus.WithError(err).Fatal("invalid SMTP_PORT")
	}
	mailer, err := mail.NewClient(mail.Config{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     smtpPort,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		Sender:   os.Getenv("SMTP_SENDER"),
	})
	if err != nil {
		logrus.WithError(err).Fatal("could not create smtp client")
	}

	usersClient := api.NewUsersClient(os.Getenv("USER_SERVICE_URL"))

	svc, err := service.New(
		message.NewRedisClient(os.Getenv("REDIS_ADDR")),
		conn,
		api.NewTicketsClient(os.Getenv("TICKET_SERVICE_URL")),
		usersClient,
		api.NewTransactionsClient(os.Getenv("TRANSACTION_SERVICE_URL")),
		api.NewPaymentsClient(os.Getenv("PAYMENT_SERVICE_URL")),
		api.NewEventsClient(os.Getenv("EVENT_SERVICE_URL")),
		api.NewWaitlistClient(os.Getenv("WAITLIST_SERVICE_URL")),
		usersClient,
		mailer,
		envOr("CHECKIN_BASE_URL", "http://localhost:8080"),
	)
	if err != nil {
		logrus.WithError(err).Fatal("could not build service")
	}

	logrus.Info("Server starting...")

	if err := svc.Run(ctx); err != nil {
		logrus.WithError(err).Fatal("service stopped")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
