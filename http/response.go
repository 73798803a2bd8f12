package http

import (
	"errors"
	"net/http"
	"ticketing/saga"

	"github.com/labstack/echo/v4"
)

// envelope is the wire format shared with the entity stores.
type envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respondData(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{Code: status, Data: data})
}

func respondMessage(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope{Code: status, Message: message, Data: data})
}

func respondError(c echo.Context, err error) error {
	var sagaErr *saga.Error
	if errors.As(err, &sagaErr) {
		return c.JSON(sagaErr.Status, envelope{Code: sagaErr.Status, Message: sagaErr.Message})
	}

	return c.JSON(http.StatusInternalServerError, envelope{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	})
}
