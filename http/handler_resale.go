package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type sellTicketRequest struct {
	ResalePrice decimal.Decimal `json:"resalePrice"`
}

func (h Handler) PostSellTicket(c echo.Context) error {
	ticketID := c.Param("ticket_id")
	if ticketID == "" {
		return respondMessage(c, http.StatusBadRequest, "ticket id is required", nil)
	}

	var request sellTicketRequest
	if err := c.Bind(&request); err != nil {
		return respondMessage(c, http.StatusBadRequest, "invalid request body", nil)
	}
	if !request.ResalePrice.IsPositive() {
		return respondMessage(c, http.StatusBadRequest, "resalePrice must be greater than zero", nil)
	}

	result, err := h.resale.SellTicket(c.Request().Context(), ticketID, request.ResalePrice)
	if err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, http.StatusCreated, result.Message, map[string]any{
		"ticketID":      result.TicketID,
		"resalePrice":   result.ResalePrice,
		"notifiedUsers": result.NotifiedUsers,
	})
}

type buyResaleTicketRequest struct {
	UserID    string `json:"userID"`
	PaymentID string `json:"paymentID"`
}

func (h Handler) PostBuyResaleTicket(c echo.Context) error {
	ticketID := c.Param("ticket_id")
	if ticketID == "" {
		return respondMessage(c, http.StatusBadRequest, "ticket id is required", nil)
	}

	var request buyResaleTicketRequest
	if err := c.Bind(&request); err != nil {
		return respondMessage(c, http.StatusBadRequest, "invalid request body", nil)
	}
	if request.UserID == "" || request.PaymentID == "" {
		return respondMessage(c, http.StatusBadRequest, "userID and paymentID are required", nil)
	}

	result, err := h.resale.BuyResaleTicket(c.Request().Context(), ticketID, request.UserID, request.PaymentID)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, http.StatusCreated, map[string]any{
		"ticketID":      result.TicketID,
		"transactionID": result.TransactionID,
	})
}
