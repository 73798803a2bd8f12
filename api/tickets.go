package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"ticketing/entities"
)

var ErrTicketExists = errors.New("ticket already exists")

// TicketsClient talks to the ticket store over its REST interface and its
// secondary GraphQL read interface.
type TicketsClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTicketsClient(baseURL string) *TicketsClient {
	if baseURL == "" {
		panic("ticket service URL is empty")
	}
	return &TicketsClient{baseURL: baseURL, httpClient: newHTTPClient()}
}

func (c *TicketsClient) Get(ctx context.Context, ticketID string) (entities.Ticket, error) {
	url := fmt.Sprintf("%s/ticket/%s", c.baseURL, ticketID)

	env, status, err := doJSON(ctx, c.httpClient, "ticket", http.MethodGet, url, nil)
	if err != nil {
		return entities.Ticket{}, err
	}
	if status != http.StatusOK {
		return entities.Ticket{}, collaboratorError("ticket", url, status, env)
	}

	var ticket entities.Ticket
	if err := json.Unmarshal(env.Data, &ticket); err != nil {
		return entities.Ticket{}, &CollaboratorError{
			Service: "ticket", URL: url, StatusCode: status,
			Message: "malformed ticket payload", Body: string(env.Data),
		}
	}
	if ticket.TicketID == "" || ticket.Status == "" {
		return entities.Ticket{}, &CollaboratorError{
			Service: "ticket", URL: url, StatusCode: status,
			Message: "ticket payload missing ticketID or status", Body: string(env.Data),
		}
	}

	return ticket, nil
}

func (c *TicketsClient) Update(ctx context.Context, ticketID string, update entities.TicketUpdate) error {
	url := fmt.Sprintf("%s/ticket/%s", c.baseURL, ticketID)

	env, status, err := doJSON(ctx, c.httpClient, "ticket", http.MethodPut, url, update)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return collaboratorError("ticket", url, status, env)
	}

	return nil
}

func (c *TicketsClient) Create(ctx context.Context, ticket entities.Ticket) error {
	url := fmt.Sprintf("%s/ticket/%s", c.baseURL, ticket.TicketID)

	env, status, err := doJSON(ctx, c.httpClient, "ticket", http.MethodPost, url, ticket)
	if err != nil {
		return err
	}
	switch status {
	case http.StatusCreated:
		return nil
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrTicketExists, ticket.TicketID)
	default:
		return collaboratorError("ticket", url, status, env)
	}
}

const eventDetailsQuery = `query EventDetails($ticketID: String!) {
	eventDetails(ticketID: $ticketID) {
		eventID
		eventName
		eventDateTime
	}
}`

const isCheckedInQuery = `query IsCheckedIn($ticketID: String!) {
	isCheckedIn(ticketID: $ticketID)
}`

type graphqlRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

// EventDetails resolves the event identity behind a ticket via GraphQL. A
// missing or partial result is a hard failure: without it there is no way to
// know which waitlist to notify.
func (c *TicketsClient) EventDetails(ctx context.Context, ticketID string) (entities.EventDetails, error) {
	var result struct {
		Data struct {
			EventDetails *entities.EventDetails `json:"eventDetails"`
		} `json:"data"`
	}
	if err := c.graphql(ctx, eventDetailsQuery, ticketID, &result); err != nil {
		return entities.EventDetails{}, err
	}

	details := result.Data.EventDetails
	if details == nil || details.EventID == "" || details.EventDateTime.IsZero() {
		return entities.EventDetails{}, &CollaboratorError{
			Service: "ticket", URL: c.baseURL + "/graphql", StatusCode: http.StatusOK,
			Message: fmt.Sprintf("eventDetails query returned no event for ticket %s", ticketID),
		}
	}

	return *details, nil
}

func (c *TicketsClient) IsCheckedIn(ctx context.Context, ticketID string) (bool, error) {
	var result struct {
		Data struct {
			IsCheckedIn *bool `json:"isCheckedIn"`
		} `json:"data"`
	}
	if err := c.graphql(ctx, isCheckedInQuery, ticketID, &result); err != nil {
		return false, err
	}
	if result.Data.IsCheckedIn == nil {
		return false, &CollaboratorError{
			Service: "ticket", URL: c.baseURL + "/graphql", StatusCode: http.StatusOK,
			Message: fmt.Sprintf("isCheckedIn query returned no result for ticket %s", ticketID),
		}
	}

	return *result.Data.IsCheckedIn, nil
}

func (c *TicketsClient) graphql(ctx context.Context, query, ticketID string, result any) error {
	url := c.baseURL + "/graphql"

	payload, err := json.Marshal(graphqlRequest{
		Query:     query,
		Variables: map[string]string{"ticketID": ticketID},
	})
	if err != nil {
		return fmt.Errorf("could not marshal graphql query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, jsonReader(payload))
	if err != nil {
		return fmt.Errorf("could not build graphql request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ticket graphql unreachable at %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &CollaboratorError{
			Service: "ticket", URL: url, StatusCode: resp.StatusCode,
			Message: "graphql query rejected",
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &CollaboratorError{
			Service: "ticket", URL: url, StatusCode: resp.StatusCode,
			Message: "malformed graphql response: " + err.Error(),
		}
	}

	return nil
}
