package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/driveease/web-portal/internal/core/domain"
	"github.com/driveease/web-portal/internal/core/ports"
)

// AdminService covers the administrator catalogue: the dashboard aggregate,
// analytics, and contract/provider/user management.
type AdminService struct {
	bookings ports.BookingAPI
	admin    ports.AdminAPI
	logger   zerolog.Logger
}

func NewAdminService(bookings ports.BookingAPI, admin ports.AdminAPI, logger zerolog.Logger) *AdminService {
	return &AdminService{bookings: bookings, admin: admin, logger: logger}
}

// Dashboard fetches the four dashboard lists concurrently. Any single failed
// fetch fails the whole aggregate; the dashboard re-fetches on next load
// rather than rendering partial data.
func (s *AdminService) Dashboard(ctx context.Context) (*ports.DashboardData, error) {
	var data ports.DashboardData

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.Bookings, err = s.bookings.All(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.Users, err = s.admin.Users(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.Contracts, err = s.admin.Contracts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.Providers, err = s.admin.Providers(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *AdminService) ReportSummary(ctx context.Context) (*domain.ReportSummary, error) {
	return s.admin.ReportSummary(ctx)
}

func (s *AdminService) UploadContract(ctx context.Context, c domain.Contract) (string, error) {
	if c.VehicleType == "" {
		return "", domain.MissingField("vehicleType")
	}

	status, err := s.admin.AddContract(ctx, c)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("vehicle_type", c.VehicleType).Msg("contract uploaded")
	return status, nil
}

func (s *AdminService) UpdateContract(ctx context.Context, id string, c domain.Contract) (string, error) {
	if id == "" {
		return "", domain.MissingField("contractId")
	}
	return s.admin.UpdateContract(ctx, id, c)
}

func (s *AdminService) ToggleContractStatus(ctx context.Context, id string, active bool) (string, error) {
	if id == "" {
		return "", domain.MissingField("contractId")
	}

	status, err := s.admin.ToggleContractStatus(ctx, id, active)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("contract_id", id).Bool("active", active).Msg("contract status toggled")
	return status, nil
}

func (s *AdminService) AddProvider(ctx context.Context, p domain.Provider) (string, error) {
	if p.ProviderName == "" {
		return "", domain.MissingField("providerName")
	}
	return s.admin.AddProvider(ctx, p)
}

func (s *AdminService) UpdateProvider(ctx context.Context, id string, p domain.Provider) (string, error) {
	if id == "" {
		return "", domain.MissingField("providerId")
	}
	return s.admin.UpdateProvider(ctx, id, p)
}

func (s *AdminService) DeleteProvider(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", domain.MissingField("providerId")
	}
	return s.admin.DeleteProvider(ctx, id)
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", domain.MissingField("userId")
	}

	status, err := s.admin.DeleteUser(ctx, id)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return status, nil
}

func (s *AdminService) UpdateUser(ctx context.Context, id string, user domain.User) (string, error) {
	if id == "" {
		return "", domain.MissingField("userId")
	}
	return s.admin.UpdateUser(ctx, id, user)
}

func (s *AdminService) Admins(ctx context.Context) ([]domain.User, error) {
	return s.admin.Admins(ctx)
}
