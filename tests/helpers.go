package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	_ "github.com/lib/pq"
	"github.com/lithammer/shortuuid/v3"
	"github.com/stretchr/testify/require"
)

type BuyTicketRequest struct {
	UserID        string        `json:"userID"`
	EventID       string        `json:"eventID"`
	EventName     string        `json:"eventName"`
	EventDateTime string        `json:"eventDateTime"`
	Seats         []SeatRequest `json:"seats"`
}

type SeatRequest struct {
	SeatNo       int     `json:"seatNo"`
	SeatCategory string  `json:"seatCategory"`
	Price        float64 `json:"price"`
	PaymentID    string  `json:"paymentID"`
}

type SeatResult struct {
	SeatNo        int    `json:"seatNo"`
	Code          int    `json:"code"`
	TicketID      string `json:"ticketID"`
	TransactionID string `json:"transactionID"`
	Message       string `json:"message"`
}

func sendBuyTicket(t *testing.T, req BuyTicketRequest) []SeatResult {
	t.Helper()

	payload, err := json.Marshal(req)
	require.NoError(t, err)

	httpReq, err := http.NewRequest(
		http.MethodPost,
		"http://localhost:8080/buyticket",
		bytes.NewBuffer(payload),
	)
	require.NoError(t, err)

	httpReq.Header.Set("Correlation-ID", shortuuid.New())
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(httpReq)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			Seats []SeatResult `json:"seats"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.Data.Seats
}
