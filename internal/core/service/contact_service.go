package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/driveease/web-portal/internal/core/domain"
	"github.com/driveease/web-portal/internal/core/ports"
)

// ContactService forwards contact-form inquiries and exposes the admin inbox.
type ContactService struct {
	api    ports.ContactAPI
	logger zerolog.Logger
}

func NewContactService(api ports.ContactAPI, logger zerolog.Logger) *ContactService {
	return &ContactService{api: api, logger: logger}
}

func (s *ContactService) Send(ctx context.Context, m domain.ContactMessage) (string, error) {
	if m.FirstName == "" {
		return "", domain.MissingField("firstName")
	}
	if m.Email == "" {
		return "", domain.MissingField("email")
	}
	if m.Message == "" {
		return "", domain.MissingField("message")
	}

	status, err := s.api.Send(ctx, m)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("email", m.Email).Str("subject", m.Subject).Msg("contact message forwarded")
	return status, nil
}

func (s *ContactService) Inbox(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.api.All(ctx)
}
