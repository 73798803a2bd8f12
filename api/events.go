package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"ticketing/entities"
	"time"
)

type EventsClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewEventsClient(baseURL string) *EventsClient {
	if baseURL == "" {
		panic("event service URL is empty")
	}
	return &EventsClient{baseURL: baseURL, httpClient: newHTTPClient()}
}

func (c *EventsClient) GetDate(ctx context.Context, eventID string, eventDateTime time.Time) (entities.EventDate, error) {
	reqURL := c.dateURL(eventID, eventDateTime)

	env, status, err := doJSON(ctx, c.httpClient, "event", http.MethodGet, reqURL, nil)
	if err != nil {
		return entities.EventDate{}, err
	}
	if status != http.StatusOK {
		return entities.EventDate{}, collaboratorError("event", reqURL, status, env)
	}

	var date entities.EventDate
	if err := json.Unmarshal(env.Data, &date); err != nil {
		return entities.EventDate{}, &CollaboratorError{
			Service: "event", URL: reqURL, StatusCode: status,
			Message: "malformed event date payload", Body: string(env.Data),
		}
	}

	// availableSeats is the one field the purchase saga cannot proceed
	// without; a payload omitting it decodes to a zero EventDate.
	if date.EventID == "" {
		return entities.EventDate{}, &CollaboratorError{
			Service: "event", URL: reqURL, StatusCode: status,
			Message: "event date payload missing eventID", Body: string(env.Data),
		}
	}

	return date, nil
}

type updateSeatsRequest struct {
	AvailableSeats int `json:"availableSeats"`
}

// UpdateAvailableSeats writes the new seat count back. The store rejects
// negative values with a 400; the saga deliberately relies on that guard.
func (c *EventsClient) UpdateAvailableSeats(ctx context.Context, eventID string, eventDateTime time.Time, availableSeats int) error {
	reqURL := c.dateURL(eventID, eventDateTime)

	env, status, err := doJSON(ctx, c.httpClient, "event", http.MethodPut, reqURL, updateSeatsRequest{
		AvailableSeats: availableSeats,
	})
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return collaboratorError("event", reqURL, status, env)
	}

	return nil
}

func (c *EventsClient) dateURL(eventID string, eventDateTime time.Time) string {
	return fmt.Sprintf(
		"%s/event/%s/%s",
		c.baseURL,
		url.PathEscape(eventID),
		url.PathEscape(eventDateTime.UTC().Format(time.RFC3339)),
	)
}
