package backend

import (
	"context"
	"net/url"
	"strconv"

	"github.com/driveease/web-portal/internal/core/domain"
	"github.com/driveease/web-portal/internal/core/ports"
)

// BookingClient implements ports.BookingAPI against /bookings.
type BookingClient struct {
	c *Client
}

func NewBookingClient(c *Client) *BookingClient {
	return &BookingClient{c: c}
}

func (b *BookingClient) Search(ctx context.Context, q ports.SearchQuery) ([]domain.VehicleOffer, error) {
	params := url.Values{}
	params.Set("type", q.Type)
	params.Set("days", strconv.Itoa(q.Days))
	params.Set("count", strconv.Itoa(q.Count))

	var offers []domain.VehicleOffer
	if err := b.c.Do(ctx, "GET", "/bookings/search", params, nil, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

func (b *BookingClient) Create(ctx context.Context, p ports.CreateBookingPayload) (string, error) {
	var status string
	if err := b.c.Do(ctx, "POST", "/bookings/create", nil, p, &status); err != nil {
		return "", err
	}
	return status, nil
}

func (b *BookingClient) Request(ctx context.Context, p ports.BookingRequestPayload) (string, error) {
	var status string
	if err := b.c.Do(ctx, "POST", "/bookings/request", nil, p, &status); err != nil {
		return "", err
	}
	return status, nil
}

func (b *BookingClient) Confirm(ctx context.Context, p ports.ConfirmPayload) (string, error) {
	var status string
	if err := b.c.Do(ctx, "POST", "/bookings/confirm", nil, p, &status); err != nil {
		return "", err
	}
	return status, nil
}

func (b *BookingClient) RequestsByAgent(ctx context.Context, agentID string) ([]domain.BookingRequest, error) {
	var requests []domain.BookingRequest
	if err := b.c.Do(ctx, "GET", "/bookings/requests/agent/"+agentID, nil, nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (b *BookingClient) RequestsByCustomer(ctx context.Context, customerID string) ([]domain.BookingRequest, error) {
	var requests []domain.BookingRequest
	if err := b.c.Do(ctx, "GET", "/bookings/requests/customer/"+customerID, nil, nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (b *BookingClient) BookingsByAgent(ctx context.Context, agentID string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := b.c.Do(ctx, "GET", "/bookings/agent/"+agentID, nil, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (b *BookingClient) All(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := b.c.Do(ctx, "GET", "/bookings/all", nil, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (b *BookingClient) Update(ctx context.Context, id string, fields ports.BookingUpdate) (string, error) {
	var status string
	if err := b.c.Do(ctx, "PUT", "/bookings/"+id, nil, fields, &status); err != nil {
		return "", err
	}
	return status, nil
}

func (b *BookingClient) Delete(ctx context.Context, id string) (string, error) {
	var status string
	if err := b.c.Do(ctx, "DELETE", "/bookings/"+id, nil, nil, &status); err != nil {
		return "", err
	}
	return status, nil
}
