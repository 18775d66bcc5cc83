package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/driveease/web-portal/internal/api/middleware"
	"github.com/driveease/web-portal/internal/core/domain"
	"github.com/driveease/web-portal/internal/core/ports"
)

type stubCustomerService struct {
	sendFn func(ctx context.Context, p ports.BookingRequestPayload) (string, error)
}

func (s *stubCustomerService) SearchVehicles(_ context.Context, _ ports.SearchQuery) ([]domain.VehicleOffer, error) {
	return nil, nil
}

func (s *stubCustomerService) SendRequest(ctx context.Context, p ports.BookingRequestPayload) (string, error) {
	return s.sendFn(ctx, p)
}

func (s *stubCustomerService) MyRequests(_ context.Context, _ string) ([]domain.BookingRequest, error) {
	return nil, nil
}

func (s *stubCustomerService) SupportAgents(_ context.Context) ([]domain.User, error) {
	return nil, nil
}

type stubAgentService struct {
	confirmFn func(ctx context.Context, p ports.ConfirmPayload) (string, error)
}

func (s *stubAgentService) PendingRequests(_ context.Context, _ string) ([]domain.BookingRequest, error) {
	return nil, nil
}

func (s *stubAgentService) ConfirmBooking(ctx context.Context, p ports.ConfirmPayload) (string, error) {
	return s.confirmFn(ctx, p)
}

func (s *stubAgentService) RejectRequest(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (s *stubAgentService) CreateBooking(_ context.Context, _ ports.CreateBookingPayload) (string, error) {
	return "", nil
}

func (s *stubAgentService) Bookings(_ context.Context, _ string) ([]domain.Booking, error) {
	return nil, nil
}

func (s *stubAgentService) Inventory(_ context.Context, _ string) ([]domain.Contract, error) {
	return nil, nil
}

func (s *stubAgentService) UpdateBooking(_ context.Context, _ string, _ ports.BookingUpdate) (string, error) {
	return "", nil
}

func (s *stubAgentService) DeleteBooking(_ context.Context, _ string) (string, error) {
	return "", nil
}

// The customer id on a request always comes from the session, never from the
// request body — a browser cannot book on someone else's behalf.
func TestBookingHandler_SendRequest_UsesSessionCustomerID(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	var captured ports.BookingRequestPayload
	customers := &stubCustomerService{
		sendFn: func(_ context.Context, p ports.BookingRequestPayload) (string, error) {
			captured = p
			return "Request submitted", nil
		},
	}
	handler := NewBookingHandler(customers, &stubAgentService{})

	c, rec := newJSONContext(e, http.MethodPost, "/bookings/request",
		`{"agentId":"2","contractId":"3","vehicleType":"SUV","finalPrice":330,"customerId":"999"}`)
	c.Set(middleware.ContextKeySession, domain.Session{Role: domain.RoleCustomer, UserID: "7"})

	if err := handler.SendRequest(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.CustomerID != "7" {
		t.Fatalf("customer id must come from the session, got %q", captured.CustomerID)
	}
	if captured.AgentID != "2" || captured.ContractID != "3" {
		t.Fatalf("unexpected payload: %+v", captured)
	}
}

func TestBookingHandler_Confirm_UsesSessionAgentID(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	var captured ports.ConfirmPayload
	agents := &stubAgentService{
		confirmFn: func(_ context.Context, p ports.ConfirmPayload) (string, error) {
			captured = p
			return "Booking confirmed", nil
		},
	}
	handler := NewBookingHandler(&stubCustomerService{}, agents)

	c, rec := newJSONContext(e, http.MethodPost, "/bookings/confirm",
		`{"requestId":"10","customerId":"1","contractId":"3","rentalDays":2,"vehicleCount":1,"finalPrice":220}`)
	c.Set(middleware.ContextKeySession, domain.Session{Role: domain.RoleAgent, UserID: "8"})

	if err := handler.Confirm(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.AgentID != "8" {
		t.Fatalf("agent id must come from the session, got %q", captured.AgentID)
	}
}

// A handler reached without its guard has no session and must fail closed.
func TestBookingHandler_SendRequest_NoSessionFailsClosed(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	customers := &stubCustomerService{
		sendFn: func(_ context.Context, _ ports.BookingRequestPayload) (string, error) {
			t.Fatalf("service must not be called")
			return "", nil
		},
	}
	handler := NewBookingHandler(customers, &stubAgentService{})

	c, _ := newJSONContext(e, http.MethodPost, "/bookings/request",
		`{"agentId":"2","contractId":"3","vehicleType":"SUV","finalPrice":330}`)

	err := handler.SendRequest(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
