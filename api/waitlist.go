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

type WaitlistClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewWaitlistClient(baseURL string) *WaitlistClient {
	if baseURL == "" {
		panic("waitlist service URL is empty")
	}
	return &WaitlistClient{baseURL: baseURL, httpClient: newHTTPClient()}
}

// Get returns every user waitlisted for the given event showing. An empty
// waitlist is a valid, empty result, not an error.
func (c *WaitlistClient) Get(ctx context.Context, eventID string, eventDateTime time.Time) ([]entities.WaitlistEntry, error) {
	reqURL := fmt.Sprintf(
		"%s/waitlist/%s/%s",
		c.baseURL,
		url.PathEscape(eventID),
		url.PathEscape(eventDateTime.UTC().Format(time.RFC3339)),
	)

	env, status, err := doJSON(ctx, c.httpClient, "waitlist", http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, collaboratorError("waitlist", reqURL, status, env)
	}

	var data struct {
		Waitlist []entities.WaitlistEntry `json:"waitlist"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, &CollaboratorError{
			Service: "waitlist", URL: reqURL, StatusCode: status,
			Message: "malformed waitlist payload", Body: string(env.Data),
		}
	}

	return data.Waitlist, nil
}
