package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/driveease/web-portal/internal/core/domain"
	"github.com/driveease/web-portal/internal/core/ports"
)

// CustomerService covers the customer-facing catalogue: vehicle search,
// booking requests, and the customer's own request history.
type CustomerService struct {
	bookings ports.BookingAPI
	auth     ports.AuthAPI
	logger   zerolog.Logger
}

func NewCustomerService(bookings ports.BookingAPI, auth ports.AuthAPI, logger zerolog.Logger) *CustomerService {
	return &CustomerService{bookings: bookings, auth: auth, logger: logger}
}

// SearchVehicles fetches matching offers and annotates each with the
// displayed 10% service-fee share of its price. An empty type searches the
// whole fleet; days and count default to 1 so a blank form still works.
func (s *CustomerService) SearchVehicles(ctx context.Context, q ports.SearchQuery) ([]domain.VehicleOffer, error) {
	if q.Days < 1 {
		q.Days = 1
	}
	if q.Count < 1 {
		q.Count = 1
	}

	offers, err := s.bookings.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	for i := range offers {
		offers[i].Commission = domain.Commission(offers[i].BaseRate, q.Days, q.Count)
	}
	return offers, nil
}

func (s *CustomerService) SendRequest(ctx context.Context, p ports.BookingRequestPayload) (string, error) {
	if p.CustomerID == "" {
		return "", domain.MissingField("customerId")
	}
	if p.AgentID == "" {
		return "", domain.MissingField("agentId")
	}
	if p.ContractID == "" {
		return "", domain.MissingField("contractId")
	}

	status, err := s.bookings.Request(ctx, p)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("customer_id", p.CustomerID).Str("contract_id", p.ContractID).Msg("booking request sent")
	return status, nil
}

func (s *CustomerService) MyRequests(ctx context.Context, customerID string) ([]domain.BookingRequest, error) {
	if customerID == "" {
		return nil, domain.MissingField("customerId")
	}
	return s.bookings.RequestsByCustomer(ctx, customerID)
}

func (s *CustomerService) SupportAgents(ctx context.Context) ([]domain.User, error) {
	return s.auth.Agents(ctx)
}
