package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/driveease/web-portal/internal/core/domain"
)

func TestAdminService_Dashboard_AggregatesAllFourLists(t *testing.T) {
	bookings := &stubBookingAPI{bookings: []domain.Booking{{BookingID: 1}}}
	admin := &stubAdminAPI{
		users:     []domain.User{{UserID: 1}, {UserID: 2}},
		contracts: []domain.Contract{{ContractID: 3}},
		providers: []domain.Provider{{ProviderID: 4}},
	}
	svc := NewAdminService(bookings, admin, zerolog.Nop())

	data, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if len(data.Bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(data.Bookings))
	}
	if len(data.Users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(data.Users))
	}
	if len(data.Contracts) != 1 {
		t.Fatalf("expected 1 contract, got %d", len(data.Contracts))
	}
	if len(data.Providers) != 1 {
		t.Fatalf("expected 1 provider, got %d", len(data.Providers))
	}
}

func TestAdminService_Dashboard_SingleFailureFailsAggregate(t *testing.T) {
	bookings := &stubBookingAPI{err: &domain.TransportError{Op: "GET /bookings/all", Err: errors.New("refused")}}
	admin := &stubAdminAPI{}
	svc := NewAdminService(bookings, admin, zerolog.Nop())

	if _, err := svc.Dashboard(context.Background()); err == nil {
		t.Fatalf("expected aggregate failure")
	}
}

func TestAdminService_UploadContract_RequiresVehicleType(t *testing.T) {
	admin := &stubAdminAPI{}
	svc := NewAdminService(&stubBookingAPI{}, admin, zerolog.Nop())

	var ve *domain.ValidationError
	if _, err := svc.UploadContract(context.Background(), domain.Contract{}); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(admin.calls) != 0 {
		t.Fatalf("expected no backend calls, got %v", admin.calls)
	}
}

func TestAdminService_ToggleContractStatus(t *testing.T) {
	admin := &stubAdminAPI{status: "Status updated"}
	svc := NewAdminService(&stubBookingAPI{}, admin, zerolog.Nop())

	status, err := svc.ToggleContractStatus(context.Background(), "3", false)
	if err != nil {
		t.Fatalf("ToggleContractStatus: %v", err)
	}
	if status != "Status updated" {
		t.Fatalf("unexpected status: %q", status)
	}

	var ve *domain.ValidationError
	if _, err := svc.ToggleContractStatus(context.Background(), "", true); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for missing id, got %v", err)
	}
}

func TestAdminService_ProviderMutations_RequireID(t *testing.T) {
	admin := &stubAdminAPI{}
	svc := NewAdminService(&stubBookingAPI{}, admin, zerolog.Nop())

	var ve *domain.ValidationError
	if _, err := svc.UpdateProvider(context.Background(), "", domain.Provider{ProviderName: "x"}); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, err := svc.DeleteProvider(context.Background(), ""); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, err := svc.AddProvider(context.Background(), domain.Provider{}); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for unnamed provider, got %v", err)
	}
	if len(admin.calls) != 0 {
		t.Fatalf("expected no backend calls, got %v", admin.calls)
	}
}

func TestAdminService_DeleteUser_RequiresID(t *testing.T) {
	admin := &stubAdminAPI{}
	svc := NewAdminService(&stubBookingAPI{}, admin, zerolog.Nop())

	var ve *domain.ValidationError
	if _, err := svc.DeleteUser(context.Background(), ""); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(admin.calls) != 0 {
		t.Fatalf("expected no backend calls, got %v", admin.calls)
	}
}
