package entities

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResalePrice(t *testing.T) {
	prev := decimal.NewFromInt(60)
	ticket := Ticket{
		Price:       decimal.NewFromInt(100),
		ResalePrice: &prev,
	}

	assert.NoError(t, ticket.ValidateResalePrice(decimal.NewFromInt(60)))
	assert.NoError(t, ticket.ValidateResalePrice(decimal.NewFromInt(40)))
	assert.Error(t, ticket.ValidateResalePrice(decimal.NewFromInt(70)), "above previous resale price")
	assert.Error(t, ticket.ValidateResalePrice(decimal.NewFromInt(110)), "above original price")

	fresh := Ticket{Price: decimal.NewFromInt(100)}
	assert.NoError(t, fresh.ValidateResalePrice(decimal.NewFromInt(100)))
	assert.Error(t, fresh.ValidateResalePrice(decimal.NewFromInt(101)))
}

func TestResaleAmount(t *testing.T) {
	listed := decimal.NewFromInt(80)
	ticket := Ticket{Price: decimal.NewFromInt(100), ResalePrice: &listed}
	assert.True(t, ticket.ResaleAmount().Equal(listed))

	neverListed := Ticket{Price: decimal.NewFromInt(100)}
	assert.True(t, neverListed.ResaleAmount().Equal(decimal.NewFromInt(100)))
}

func TestPricesMarshalAsNumbers(t *testing.T) {
	ticket := Ticket{
		TicketID: "TKT-1",
		Price:    decimal.RequireFromString("99.50"),
		Status:   TicketStatusPaid,
	}

	raw, err := json.Marshal(ticket)
	require.NoError(t, err)

	// The entity stores expect JSON numbers, not strings.
	assert.Contains(t, string(raw), `"price":99.5`)
	assert.NotContains(t, string(raw), `"price":"`)
}

func TestEventRoutingKeys(t *testing.T) {
	cases := map[Event]string{
		TicketPurchased{}:       "ticket.purchased",
		TicketResold{}:          "ticket.resold",
		WaitlistSeatAvailable{}: "waitlist.available",
		TicketCheckedIn{}:       "ticket.checkedin",
		PaymentSucceeded{}:      "payment.successful",
	}
	for event, key := range cases {
		assert.Equal(t, key, event.Key())
	}
}
