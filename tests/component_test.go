package tests

import (
	"context"
	"net/http"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"ticketing/api"
	"ticketing/db"
	"ticketing/entities"
	"ticketing/mail"
	"ticketing/message"
	"ticketing/service"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent(t *testing.T) {
	if os.Getenv("REDIS_ADDR") == "" || os.Getenv("POSTGRES_URL") == "" {
		t.Skip("REDIS_ADDR and POSTGRES_URL are not set")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
	})
	defer rdb.Close()

	conn, err := db.NewDBConn(os.Getenv("POSTGRES_URL"))
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	showingAt := time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC)

	events := api.NewEventsMock(entities.EventDate{
		EventID:        "event-1",
		EventName:      "Hamilton",
		EventDateTime:  showingAt,
		TotalSeats:     10,
		AvailableSeats: 10,
	})
	users := api.NewUsersMock(entities.User{
		UserID: "buyer-1",
		Name:   "Alice",
		Email:  "alice@example.com",
	})
	tickets := api.NewTicketsMock()
	transactions := &api.TransactionsMock{}
	payments := &api.PaymentsMock{}
	waitlist := api.NewWaitlistMock()
	mailer := &mail.SenderMock{}

	go func() {
		svc, err := service.New(
			rdb,
			conn,
			tickets,
			users,
			transactions,
			payments,
			events,
			waitlist,
			users,
			mailer,
			"http://localhost:8080",
		)
		assert.NoError(t, err)
		assert.NoError(t, svc.Run(ctx))
	}()
	waitForHttpServer(t)

	published := watchTopic(t, ctx, rdb, "ticketing.ticket.purchased")

	seats := sendBuyTicket(t, BuyTicketRequest{
		UserID:        "buyer-1",
		EventID:       "event-1",
		EventName:     "Hamilton",
		EventDateTime: showingAt.Format(time.RFC3339),
		Seats: []SeatRequest{
			{SeatNo: 1, SeatCategory: "VIP", Price: 100, PaymentID: "pay-1"},
		},
	})
	require.Len(t, seats, 1)
	require.Equal(t, http.StatusCreated, seats[0].Code)
	ticketID := seats[0].TicketID

	assertPurchaseEmailSent(t, mailer, "alice@example.com", ticketID)
	assertEventPublished(t, published, ticketID)
}

func assertPurchaseEmailSent(t *testing.T, mailer *mail.SenderMock, to, ticketID string) {
	assert.EventuallyWithT(
		t,
		func(t *assert.CollectT) {
			var found bool
			for _, sent := range mailer.Sent() {
				if sent.To == to && strings.Contains(sent.Body, ticketID) {
					found = true
					break
				}
			}
			assert.True(t, found, "purchase email for ticket %s not sent", ticketID)
		},
		10*time.Second,
		100*time.Millisecond,
	)
}

// watchTopic drains a broker topic into a slice so assertions can poll it.
func watchTopic(t *testing.T, ctx context.Context, rdb *redis.Client, topic string) func() []string {
	t.Helper()

	watermillLogger := log.NewWatermill(log.FromContext(ctx))
	subscriber := message.NewRedisSubscriber(rdb, watermillLogger)

	messages, err := subscriber.Subscribe(ctx, topic)
	require.NoError(t, err)

	var lock sync.Mutex
	var payloads []string

	go func() {
		for msg := range messages {
			lock.Lock()
			payloads = append(payloads, string(msg.Payload))
			lock.Unlock()
			msg.Ack()
		}
	}()

	return func() []string {
		lock.Lock()
		defer lock.Unlock()

		out := make([]string, len(payloads))
		copy(out, payloads)
		return out
	}
}

func assertEventPublished(t *testing.T, published func() []string, ticketID string) {
	assert.EventuallyWithT(
		t,
		func(t *assert.CollectT) {
			var found bool
			for _, payload := range published() {
				if strings.Contains(payload, ticketID) {
					found = true
					break
				}
			}
			assert.True(t, found, "no purchase event published for ticket %s", ticketID)
		},
		10*time.Second,
		100*time.Millisecond,
	)
}

func waitForHttpServer(t *testing.T) {
	t.Helper()

	require.EventuallyWithT(
		t,
		func(t *assert.CollectT) {
			resp, err := http.Get("http://localhost:8080/health")
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()

			assert.Less(t, resp.StatusCode, 300, "API not ready, http status: %d", resp.StatusCode)
		},
		time.Second*10,
		time.Millisecond*50,
	)
}
