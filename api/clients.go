package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// CollaboratorError is any non-2xx or malformed response from an entity
// store. It carries enough context (service, URL, status, body) to diagnose
// the failing call without re-running it.
type CollaboratorError struct {
	Service    string
	URL        string
	StatusCode int
	Message    string
	Body       string
}

func (e *CollaboratorError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s service returned %d for %s: %s", e.Service, e.StatusCode, e.URL, e.Message)
	}
	return fmt.Sprintf("%s service returned %d for %s: %s", e.Service, e.StatusCode, e.URL, e.Body)
}

func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout:   10 * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// envelope is the {code, message, data} body every entity store responds with.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// doJSON performs the request and decodes the store's response envelope. The
// returned envelope is valid even for non-2xx statuses so callers can read
// the store's message; a nil body sends no payload.
func doJSON(ctx context.Context, client *http.Client, service, method, url string, body any) (envelope, int, error) {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return envelope{}, 0, fmt.Errorf("could not marshal %s request: %w", service, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return envelope{}, 0, fmt.Errorf("could not build %s request: %w", service, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return envelope{}, 0, fmt.Errorf("%s service unreachable at %s: %w", service, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return envelope{}, resp.StatusCode, fmt.Errorf("could not read %s response: %w", service, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return envelope{}, resp.StatusCode, &CollaboratorError{
			Service:    service,
			URL:        url,
			StatusCode: resp.StatusCode,
			Message:    "malformed response body",
			Body:       string(raw),
		}
	}

	return env, resp.StatusCode, nil
}

func jsonReader(payload []byte) io.Reader {
	return bytes.NewReader(payload)
}

func collaboratorError(service, url string, status int, env envelope) *CollaboratorError {
	return &CollaboratorError{
		Service:    service,
		URL:        url,
		StatusCode: status,
		Message:    env.Message,
		Body:       string(env.Data),
	}
}
