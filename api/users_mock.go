package api

import (
	"context"
	"net/http"
	"sync"
	"ticketing/entities"
)

type UsersMock struct {
	lock sync.Mutex

	Users  map[string]entities.User
	GetErr error
}

func NewUsersMock(users ...entities.User) *UsersMock {
	m := &UsersMock{Users: map[string]entities.User{}}
	for _, user := range users {
		m.Users[user.UserID] = user
	}
	return m
}

func (m *UsersMock) Get(ctx context.Context, userID string) (entities.User, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.GetErr != nil {
		return entities.User{}, m.GetErr
	}
	user, ok := m.Users[userID]
	if !ok {
		return entities.User{}, &CollaboratorError{
			Service: "user", URL: "/user/" + userID,
			StatusCode: http.StatusNotFound, Message: "User not found.",
		}
	}
	return user, nil
}
