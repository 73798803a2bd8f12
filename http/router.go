package http

import (
	"net/http"

	libHttp "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

func NewHttpRouter(
	resale ResaleOrchestrator,
	purchase PurchaseOrchestrator,
	checkIn CheckInOrchestrator,
	checkInBaseURL string,
) *echo.Echo {
	e := libHttp.NewEcho()
	e.Use(otelecho.Middleware("ticketing"))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handler := Handler{
		resale:         resale,
		purchase:       purchase,
		checkIn:        checkIn,
		checkInBaseURL: checkInBaseURL,
	}

	e.POST("/sellticket/:ticket_id", handler.PostSellTicket)
	e.POST("/buyresaleticket/:ticket_id", handler.PostBuyResaleTicket)
	e.POST("/buyticket", handler.PostBuyTicket)
	e.GET("/generateqr/:ticket_id", handler.GetGenerateQR)
	e.GET("/displayqr/:ticket_id", handler.GetDisplayQR)
	e.GET("/scanqr/:ticket_id", handler.GetScanQR)
	e.GET("/checkstatus/:ticket_id", handler.GetCheckStatus)

	return e
}
