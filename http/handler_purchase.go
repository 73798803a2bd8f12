package http

import (
	"net/http"
	"time"
	"ticketing/saga"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type buyTicketRequest struct {
	UserID        string        `json:"userID"`
	EventID       string        `json:"eventID"`
	EventName     string        `json:"eventName"`
	EventDateTime time.Time     `json:"eventDateTime"`
	Seats         []seatRequest `json:"seats"`
}

type seatRequest struct {
	SeatNo       int             `json:"seatNo"`
	SeatCategory string          `json:"seatCategory"`
	Price        decimal.Decimal `json:"price"`
	PaymentID    string          `json:"paymentID"`
}

func (h Handler) PostBuyTicket(c echo.Context) error {
	var request buyTicketRequest
	if err := c.Bind(&request); err != nil {
		return respondMessage(c, http.StatusBadRequest, "invalid request body", nil)
	}

	if request.UserID == "" || request.EventID == "" {
		return respondMessage(c, http.StatusBadRequest, "userID and eventID are required", nil)
	}
	if len(request.Seats) == 0 {
		return respondMessage(c, http.StatusBadRequest, "at least one seat is required", nil)
	}

	sagaRequest := saga.BuyTicketRequest{
		UserID:        request.UserID,
		EventID:       request.EventID,
		EventName:     request.EventName,
		EventDateTime: request.EventDateTime,
	}
	for _, seat := range request.Seats {
		sagaRequest.Seats = append(sagaRequest.Seats, saga.SeatRequest{
			SeatNo:       seat.SeatNo,
			SeatCategory: seat.SeatCategory,
			Price:        seat.Price,
			PaymentID:    seat.PaymentID,
		})
	}

	results := h.purchase.BuyTicket(c.Request().Context(), sagaRequest)

	// Per-seat outcomes: the batch answers 200 even when individual seats
	// failed, each seat carries its own code.
	return respondData(c, http.StatusOK, map[string]any{"seats": results})
}
