package service

import (
	"context"

	"github.com/driveease/web-portal/internal/core/domain"
	"github.com/driveease/web-portal/internal/core/ports"
)

// The stubs below record every call so tests can assert that fail-fast
// validation really prevents a backend round trip.

type stubBookingAPI struct {
	calls []string

	offers   []domain.VehicleOffer
	requests []domain.BookingRequest
	bookings []domain.Booking
	status   string
	err      error
}

func (s *stubBookingAPI) record(name string) { s.calls = append(s.calls, name) }

func (s *stubBookingAPI) Search(_ context.Context, _ ports.SearchQuery) ([]domain.VehicleOffer, error) {
	s.record("Search")
	return s.offers, s.err
}

func (s *stubBookingAPI) Create(_ context.Context, _ ports.CreateBookingPayload) (string, error) {
	s.record("Create")
	return s.status, s.err
}

func (s *stubBookingAPI) Request(_ context.Context, _ ports.BookingRequestPayload) (string, error) {
	s.record("Request")
	return s.status, s.err
}

func (s *stubBookingAPI) Confirm(_ context.Context, _ ports.ConfirmPayload) (string, error) {
	s.record("Confirm")
	return s.status, s.err
}

func (s *stubBookingAPI) RequestsByAgent(_ context.Context, _ string) ([]domain.BookingRequest, error) {
	s.record("RequestsByAgent")
	return s.requests, s.err
}

func (s *stubBookingAPI) RequestsByCustomer(_ context.Context, _ string) ([]domain.BookingRequest, error) {
	s.record("RequestsByCustomer")
	return s.requests, s.err
}

func (s *stubBookingAPI) BookingsByAgent(_ context.Context, _ string) ([]domain.Booking, error) {
	s.record("BookingsByAgent")
	return s.bookings, s.err
}

func (s *stubBookingAPI) All(_ context.Context) ([]domain.Booking, error) {
	s.record("All")
	return s.bookings, s.err
}

func (s *stubBookingAPI) Update(_ context.Context, _ string, _ ports.BookingUpdate) (string, error) {
	s.record("Update")
	return s.status, s.err
}

func (s *stubBookingAPI) Delete(_ context.Context, _ string) (string, error) {
	s.record("Delete")
	return s.status, s.err
}

type stubAuthAPI struct {
	calls []string

	loginResult *domain.LoginResult
	users       []domain.User
	status      string
	err         error
}

func (s *stubAuthAPI) record(name string) { s.calls = append(s.calls, name) }

func (s *stubAuthAPI) Login(_ context.Context, _, _ string) (*domain.LoginResult, error) {
	s.record("Login")
	return s.loginResult, s.err
}

func (s *stubAuthAPI) Signup(_ context.Context, _ domain.User) (string, error) {
	s.record("Signup")
	return s.status, s.err
}

func (s *stubAuthAPI) Agents(_ context.Context) ([]domain.User, error) {
	s.record("Agents")
	return s.users, s.err
}

func (s *stubAuthAPI) Users(_ context.Context) ([]domain.User, error) {
	s.record("Users")
	return s.users, s.err
}

func (s *stubAuthAPI) UpdateUser(_ context.Context, _ string, _ domain.User) (string, error) {
	s.record("UpdateUser")
	return s.status, s.err
}

func (s *stubAuthAPI) DeleteUser(_ context.Context, _ string) (string, error) {
	s.record("DeleteUser")
	return s.status, s.err
}

type stubAdminAPI struct {
	calls []string

	providers []domain.Provider
	contracts []domain.Contract
	users     []domain.User
	summary   *domain.ReportSummary
	status    string
	err       error
}

func (s *stubAdminAPI) record(name string) { s.calls = append(s.calls, name) }

func (s *stubAdminAPI) Providers(_ context.Context) ([]domain.Provider, error) {
	s.record("Providers")
	return s.providers, s.err
}

func (s *stubAdminAPI) AddProvider(_ context.Context, _ domain.Provider) (string, error) {
	s.record("AddProvider")
	return s.status, s.err
}

func (s *stubAdminAPI) UpdateProvider(_ context.Context, _ string, _ domain.Provider) (string, error) {
	s.record("UpdateProvider")
	return s.status, s.err
}

func (s *stubAdminAPI) DeleteProvider(_ context.Context, _ string) (string, error) {
	s.record("DeleteProvider")
	return s.status, s.err
}

func (s *stubAdminAPI) Contracts(_ context.Context) ([]domain.Contract, error) {
	s.record("Contracts")
	return s.contracts, s.err
}

func (s *stubAdminAPI) ContractsByAgent(_ context.Context, _ string) ([]domain.Contract, error) {
	s.record("ContractsByAgent")
	return s.contracts, s.err
}

func (s *stubAdminAPI) AddContract(_ context.Context, _ domain.Contract) (string, error) {
	s.record("AddContract")
	return s.status, s.err
}

func (s *stubAdminAPI) UpdateContract(_ context.Context, _ string, _ domain.Contract) (string, error) {
	s.record("UpdateContract")
	return s.status, s.err
}

func (s *stubAdminAPI) ToggleContractStatus(_ context.Context, _ string, _ bool) (string, error) {
	s.record("ToggleContractStatus")
	return s.status, s.err
}

func (s *stubAdminAPI) Users(_ context.Context) ([]domain.User, error) {
	s.record("Users")
	return s.users, s.err
}

func (s *stubAdminAPI) UpdateUser(_ context.Context, _ string, _ domain.User) (string, error) {
	s.record("UpdateUser")
	return s.status, s.err
}

func (s *stubAdminAPI) DeleteUser(_ context.Context, _ string) (string, error) {
	s.record("DeleteUser")
	return s.status, s.err
}

func (s *stubAdminAPI) Admins(_ context.Context) ([]domain.User, error) {
	s.record("Admins")
	return s.users, s.err
}

func (s *stubAdminAPI) RejectRequest(_ context.Context, _ string) (string, error) {
	s.record("RejectRequest")
	return s.status, s.err
}

func (s *stubAdminAPI) ReportSummary(_ context.Context) (*domain.ReportSummary, error) {
	s.record("ReportSummary")
	return s.summary, s.err
}

type stubContactAPI struct {
	calls []string

	messages []domain.ContactMessage
	status   string
	err      error
}

func (s *stubContactAPI) Send(_ context.Context, _ domain.ContactMessage) (string, error) {
	s.calls = append(s.calls, "Send")
	return s.status, s.err
}

func (s *stubContactAPI) All(_ context.Context) ([]domain.ContactMessage, error) {
	s.calls = append(s.calls, "All")
	return s.messages, s.err
}
