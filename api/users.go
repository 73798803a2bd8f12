package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"ticketing/entities"
)

type UsersClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewUsersClient(baseURL string) *UsersClient {
	if baseURL == "" {
		panic("user service URL is empty")
	}
	return &UsersClient{baseURL: baseURL, httpClient: newHTTPClient()}
}

func (c *UsersClient) Get(ctx context.Context, userID string) (entities.User, error) {
	url := fmt.Sprintf("%s/user/%s", c.baseURL, userID)

	env, status, err := doJSON(ctx, c.httpClient, "user", http.MethodGet, url, nil)
	if err != nil {
		return entities.User{}, err
	}
	if status != http.StatusOK {
		return entities.User{}, collaboratorError("user", url, status, env)
	}

	var user entities.User
	if err := json.Unmarshal(env.Data, &user); err != nil {
		return entities.User{}, &CollaboratorError{
			Service: "user", URL: url, StatusCode: status,
			Message: "malformed user payload", Body: string(env.Data),
		}
	}
	if user.Name == "" {
		return entities.User{}, &CollaboratorError{
			Service: "user", URL: url, StatusCode: status,
			Message: "user payload missing name", Body: string(env.Data),
		}
	}
	if user.UserID == "" {
		user.UserID = userID
	}

	return user, nil
}
