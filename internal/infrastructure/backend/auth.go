package backend

import (
	"context"

	"github.com/driveease/web-portal/internal/core/domain"
)

// AuthClient implements ports.AuthAPI against /auth.
type AuthClient struct {
	c *Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

func (a *AuthClient) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var result domain.LoginResult
	if err := a.c.Do(ctx, "POST", "/auth/login", nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *AuthClient) Signup(ctx context.Context, user domain.User) (string, error) {
	var status string
	if err := a.c.Do(ctx, "POST", "/auth/signup", nil, user, &status); err != nil {
		return "", err
	}
	return status, nil
}

func (a *AuthClient) Agents(ctx context.Context) ([]domain.User, error) {
	var agents []domain.User
	if err := a.c.Do(ctx, "GET", "/auth/agents", nil, nil, &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

func (a *AuthClient) Users(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := a.c.Do(ctx, "GET", "/auth/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (a *AuthClient) UpdateUser(ctx context.Context, id string, user domain.User) (string, error) {
	var status string
	if err := a.c.Do(ctx, "PUT", "/auth/users/"+id, nil, user, &status); err != nil {
		return "", err
	}
	return status, nil
}

func (a *AuthClient) DeleteUser(ctx context.Context, id string) (string, error) {
	var status string
	if err := a.c.Do(ctx, "DELETE", "/auth/users/"+id, nil, nil, &status); err != nil {
		return "", err
	}
	return status, nil
}
