package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/driveease/web-portal/internal/core/domain"
	"github.com/driveease/web-portal/internal/core/ports"
)

// AgentService covers the support-agent catalogue: the pending-request inbox,
// approvals and rejections, direct bookings, and upkeep of confirmed records.
type AgentService struct {
	bookings ports.BookingAPI
	admin    ports.AdminAPI
	logger   zerolog.Logger
}

func NewAgentService(bookings ports.BookingAPI, admin ports.AdminAPI, logger zerolog.Logger) *AgentService {
	return &AgentService{bookings: bookings, admin: admin, logger: logger}
}

func (s *AgentService) PendingRequests(ctx context.Context, agentID string) ([]domain.BookingRequest, error) {
	if agentID == "" {
		return nil, domain.MissingField("agentId")
	}
	return s.bookings.RequestsByAgent(ctx, agentID)
}

func (s *AgentService) ConfirmBooking(ctx context.Context, p ports.ConfirmPayload) (string, error) {
	if p.RequestID == "" {
		return "", domain.MissingField("requestId")
	}
	if p.CustomerID == "" {
		return "", domain.MissingField("customerId")
	}
	if p.AgentID == "" {
		return "", domain.MissingField("agentId")
	}
	if p.ContractID == "" {
		return "", domain.MissingField("contractId")
	}

	status, err := s.bookings.Confirm(ctx, p)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("request_id", p.RequestID).Str("agent_id", p.AgentID).Msg("booking confirmed")
	return status, nil
}

func (s *AgentService) RejectRequest(ctx context.Context, requestID string) (string, error) {
	if requestID == "" {
		return "", domain.MissingField("requestId")
	}

	status, err := s.admin.RejectRequest(ctx, requestID)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("request_id", requestID).Msg("booking request rejected")
	return status, nil
}

func (s *AgentService) CreateBooking(ctx context.Context, p ports.CreateBookingPayload) (string, error) {
	if p.AgentID == "" {
		return "", domain.MissingField("agentId")
	}
	if p.ContractID == "" {
		return "", domain.MissingField("contractId")
	}

	status, err := s.bookings.Create(ctx, p)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("agent_id", p.AgentID).Str("contract_id", p.ContractID).Msg("booking created")
	return status, nil
}

func (s *AgentService) Bookings(ctx context.Context, agentID string) ([]domain.Booking, error) {
	if agentID == "" {
		return nil, domain.MissingField("agentId")
	}
	return s.bookings.BookingsByAgent(ctx, agentID)
}

func (s *AgentService) Inventory(ctx context.Context, agentID string) ([]domain.Contract, error) {
	if agentID == "" {
		return nil, domain.MissingField("agentId")
	}
	return s.admin.ContractsByAgent(ctx, agentID)
}

func (s *AgentService) UpdateBooking(ctx context.Context, id string, fields ports.BookingUpdate) (string, error) {
	if id == "" {
		return "", domain.MissingField("bookingId")
	}
	return s.bookings.Update(ctx, id, fields)
}

func (s *AgentService) DeleteBooking(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", domain.MissingField("bookingId")
	}

	status, err := s.bookings.Delete(ctx, id)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("booking_id", id).Msg("booking deleted")
	return status, nil
}
