package backend

import (
	"context"

	"github.com/driveease/web-portal/internal/core/domain"
)

// ContactClient implements ports.ContactAPI against /contact.
type ContactClient struct {
	c *Client
}

func NewContactClient(c *Client) *ContactClient {
	return &ContactClient{c: c}
}

func (cc *ContactClient) Send(ctx context.Context, m domain.ContactMessage) (string, error) {
	var status string
	if err := cc.c.Do(ctx, "POST", "/contact/send", nil, m, &status); err != nil {
		return "", err
	}
	return status, nil
}

func (cc *ContactClient) All(ctx context.Context) ([]domain.ContactMessage, error) {
	var messages []domain.ContactMessage
	if err := cc.c.Do(ctx, "GET", "/contact/all", nil, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
