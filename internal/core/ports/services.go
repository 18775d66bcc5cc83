package ports

import (
	"context"

	"github.com/driveease/web-portal/internal/core/domain"
)

// Feature services are fixed catalogues of resource operations, one per
// backend domain. Each call validates its inputs fail-fast (a missing target
// id yields a ValidationError before any request is issued) and then performs
// a single stateless exchange with the backend.

type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.LoginResult, error)
	Signup(ctx context.Context, user domain.User) (string, error)
	Agents(ctx context.Context) ([]domain.User, error)
}

type CustomerService interface {
	SearchVehicles(ctx context.Context, q SearchQuery) ([]domain.VehicleOffer, error)
	SendRequest(ctx context.Context, p BookingRequestPayload) (string, error)
	MyRequests(ctx context.Context, customerID string) ([]domain.BookingRequest, error)
	SupportAgents(ctx context.Context) ([]domain.User, error)
}

type AgentService interface {
	PendingRequests(ctx context.Context, agentID string) ([]domain.BookingRequest, error)
	ConfirmBooking(ctx context.Context, p ConfirmPayload) (string, error)
	RejectRequest(ctx context.Context, requestID string) (string, error)
	CreateBooking(ctx context.Context, p CreateBookingPayload) (string, error)
	Bookings(ctx context.Context, agentID string) ([]domain.Booking, error)
	Inventory(ctx context.Context, agentID string) ([]domain.Contract, error)
	UpdateBooking(ctx context.Context, id string, fields BookingUpdate) (string, error)
	DeleteBooking(ctx context.Context, id string) (string, error)
}

// DashboardData is the admin landing-page aggregate, fetched concurrently.
type DashboardData struct {
	Bookings  []domain.Booking  `json:"bookings"`
	Users     []domain.User     `json:"users"`
	Contracts []domain.Contract `json:"contracts"`
	Providers []domain.Provider `json:"providers"`
}

type AdminService interface {
	Dashboard(ctx context.Context) (*DashboardData, error)
	ReportSummary(ctx context.Context) (*domain.ReportSummary, error)

	UploadContract(ctx context.Context, c domain.Contract) (string, error)
	UpdateContract(ctx context.Context, id string, c domain.Contract) (string, error)
	ToggleContractStatus(ctx context.Context, id string, active bool) (string, error)

	AddProvider(ctx context.Context, p domain.Provider) (string, error)
	UpdateProvider(ctx context.Context, id string, p domain.Provider) (string, error)
	DeleteProvider(ctx context.Context, id string) (string, error)

	DeleteUser(ctx context.Context, id string) (string, error)
	UpdateUser(ctx context.Context, id string, user domain.User) (string, error)
	Admins(ctx context.Context) ([]domain.User, error)
}

type ContactService interface {
	Send(ctx context.Context, m domain.ContactMessage) (string, error)
	Inbox(ctx context.Context) ([]domain.ContactMessage, error)
}
