package ports

import (
	"context"

	"github.com/driveease/web-portal/internal/core/domain"
)

// The rental backend is the sole authority for every resource. These ports
// map 1:1 to its REST routes; implementations live in infrastructure/backend.
// Identifiers travel as opaque strings — the portal never interprets them.

// SearchQuery carries the vehicle search parameters.
type SearchQuery struct {
	Type  string
	Days  int
	Count int
}

// CreateBookingPayload is an agent's direct booking.
type CreateBookingPayload struct {
	AgentID      string  `json:"agentId"`
	ContractID   string  `json:"contractId"`
	CustomerName string  `json:"customerName"`
	Requirements string  `json:"requirements"`
	PickupDate   string  `json:"pickupDate"`
	RentalDays   int     `json:"rentalDays"`
	VehicleCount int     `json:"vehicleCount"`
	FinalPrice   float64 `json:"finalPrice"`
}

// BookingRequestPayload is a customer's request for agent approval.
type BookingRequestPayload struct {
	CustomerID  string  `json:"customerId"`
	AgentID     string  `json:"agentId"`
	ContractID  string  `json:"contractId"`
	VehicleType string  `json:"vehicleType"`
	FinalPrice  float64 `json:"finalPrice"`
}

// ConfirmPayload approves a pending request and records the booking.
type ConfirmPayload struct {
	RequestID    string  `json:"requestId"`
	CustomerID   string  `json:"customerId"`
	AgentID      string  `json:"agentId"`
	ContractID   string  `json:"contractId"`
	RentalDays   int     `json:"rentalDays"`
	VehicleCount int     `json:"vehicleCount"`
	FinalPrice   float64 `json:"finalPrice"`
}

// BookingUpdate is a partial edit; zero-value fields are omitted from the
// request so the backend leaves them untouched.
type BookingUpdate struct {
	CustomerName string `json:"customerName,omitempty"`
	PickupDate   string `json:"pickupDate,omitempty"`
}

// AuthAPI covers the backend's /auth routes.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*domain.LoginResult, error)
	Signup(ctx context.Context, user domain.User) (string, error)
	Agents(ctx context.Context) ([]domain.User, error)
	Users(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id string, user domain.User) (string, error)
	DeleteUser(ctx context.Context, id string) (string, error)
}

// BookingAPI covers the backend's /bookings routes.
type BookingAPI interface {
	Search(ctx context.Context, q SearchQuery) ([]domain.VehicleOffer, error)
	Create(ctx context.Context, p CreateBookingPayload) (string, error)
	Request(ctx context.Context, p BookingRequestPayload) (string, error)
	Confirm(ctx context.Context, p ConfirmPayload) (string, error)
	RequestsByAgent(ctx context.Context, agentID string) ([]domain.BookingRequest, error)
	RequestsByCustomer(ctx context.Context, customerID string) ([]domain.BookingRequest, error)
	BookingsByAgent(ctx context.Context, agentID string) ([]domain.Booking, error)
	All(ctx context.Context) ([]domain.Booking, error)
	Update(ctx context.Context, id string, fields BookingUpdate) (string, error)
	Delete(ctx context.Context, id string) (string, error)
}

// AdminAPI covers the backend's /admin routes.
type AdminAPI interface {
	Providers(ctx context.Context) ([]domain.Provider, error)
	AddProvider(ctx context.Context, p domain.Provider) (string, error)
	UpdateProvider(ctx context.Context, id string, p domain.Provider) (string, error)
	DeleteProvider(ctx context.Context, id string) (string, error)

	Contracts(ctx context.Context) ([]domain.Contract, error)
	ContractsByAgent(ctx context.Context, agentID string) ([]domain.Contract, error)
	AddContract(ctx context.Context, c domain.Contract) (string, error)
	UpdateContract(ctx context.Context, id string, c domain.Contract) (string, error)
	ToggleContractStatus(ctx context.Context, id string, active bool) (string, error)

	Users(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id string, user domain.User) (string, error)
	DeleteUser(ctx context.Context, id string) (string, error)
	Admins(ctx context.Context) ([]domain.User, error)

	RejectRequest(ctx context.Context, requestID string) (string, error)
	ReportSummary(ctx context.Context) (*domain.ReportSummary, error)
}

// ContactAPI covers the backend's /contact routes.
type ContactAPI interface {
	Send(ctx context.Context, m domain.ContactMessage) (string, error)
	All(ctx context.Context) ([]domain.ContactMessage, error)
}
