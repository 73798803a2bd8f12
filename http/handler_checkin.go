package http

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yeqown/go-qrcode"
)

type ticketPage struct {
	TicketID string
}

func (h Handler) scanURL(ticketID string) string {
	return fmt.Sprintf("%s/scanqr/%s", h.checkInBaseURL, ticketID)
}

// GetGenerateQR renders the QR image whose payload is this ticket's scan URL.
func (h Handler) GetGenerateQR(c echo.Context) error {
	ticketID := c.Param("ticket_id")
	if ticketID == "" {
		return respondMessage(c, http.StatusBadRequest, "ticket id is required", nil)
	}

	qrc, err := qrcode.New(h.scanURL(ticketID))
	if err != nil {
		return respondError(c, fmt.Errorf("could not generate QR code: %w", err))
	}

	c.Response().Header().Set(echo.HeaderContentType, "image/jpeg")
	c.Response().WriteHeader(http.StatusOK)
	return qrc.SaveTo(c.Response())
}

// GetDisplayQR renders the ticket page with the embedded QR code, or an
// "already checked in" page without changing any state.
func (h Handler) GetDisplayQR(c echo.Context) error {
	ticketID := c.Param("ticket_id")
	if ticketID == "" {
		return respondMessage(c, http.StatusBadRequest, "ticket id is required", nil)
	}

	page := displayQRPage
	if h.checkIn.Status(c.Request().Context(), ticketID) {
		page = alreadyCheckedInPage
	}

	return renderPage(c, http.StatusOK, page, ticketPage{TicketID: ticketID})
}

// GetScanQR is the endpoint behind the QR payload: it flips the ticket to
// checked in. Re-scanning renders the "already checked in" page.
func (h Handler) GetScanQR(c echo.Context) error {
	ticketID := c.Param("ticket_id")
	if ticketID == "" {
		return respondMessage(c, http.StatusBadRequest, "ticket id is required", nil)
	}

	result, err := h.checkIn.Scan(c.Request().Context(), ticketID)
	if err != nil {
		return renderPage(c, http.StatusInternalServerError, checkInFailedPage, ticketPage{TicketID: ticketID})
	}
	if result.AlreadyCheckedIn {
		return renderPage(c, http.StatusOK, alreadyCheckedInPage, ticketPage{TicketID: ticketID})
	}

	return renderPage(c, http.StatusOK, checkInSuccessPage, ticketPage{TicketID: ticketID})
}

func (h Handler) GetCheckStatus(c echo.Context) error {
	ticketID := c.Param("ticket_id")
	if ticketID == "" {
		return respondMessage(c, http.StatusBadRequest, "ticket id is required", nil)
	}

	status := "not_yet"
	if h.checkIn.Status(c.Request().Context(), ticketID) {
		status = "checked_in"
	}

	return respondData(c, http.StatusOK, map[string]string{"status": status})
}

func renderPage(c echo.Context, status int, page *template.Template, data ticketPage) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return page.Execute(c.Response(), data)
}
