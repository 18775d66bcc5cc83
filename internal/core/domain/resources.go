package domain

// Resource entities are owned and defined by the rental backend; the portal
// carries them as typed passthrough payloads and never persists them. Field
// names mirror the backend's JSON contract.

// User is any account: customer, support agent, or administrator.
type User struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// Provider is a fleet provider whose vehicles are contracted to the platform.
type Provider struct {
	ProviderID     int64  `json:"providerId"`
	ProviderName   string `json:"providerName"`
	ContactDetails string `json:"contactDetails"`
}

// Contract is a vehicle-supply contract in the rental inventory.
type Contract struct {
	ContractID         int64     `json:"contractId"`
	VehicleType        string    `json:"vehicleType"`
	BaseRatePerDay     float64   `json:"baseRatePerDay"`
	AllowedMileage     int       `json:"allowedMileage"`
	AvailabilityStatus bool      `json:"availabilityStatus"`
	Provider           *Provider `json:"provider,omitempty"`
	Agent              *User     `json:"agent,omitempty"`
}

// VehicleOffer is one row of a vehicle search result: a contract with its
// price computed for the requested duration and unit count.
type VehicleOffer struct {
	ContractID   int64   `json:"contractId"`
	VehicleType  string  `json:"vehicleType"`
	ProviderName string  `json:"providerName"`
	FinalPrice   float64 `json:"finalPrice"`
	BaseRate     float64 `json:"baseRate"`
	Availability string  `json:"availability"`
	ImageURL     string  `json:"imageUrl"`

	// Commission is the displayed service-fee share of FinalPrice; computed
	// portal-side, never sent to the backend.
	Commission float64 `json:"commission,omitempty"`
}

// Booking is a confirmed rental record.
type Booking struct {
	BookingID    int64     `json:"bookingId"`
	Contract     *Contract `json:"vehicleContract,omitempty"`
	Customer     *User     `json:"customer,omitempty"`
	Agent        *User     `json:"agent,omitempty"`
	CustomerName string    `json:"customerName,omitempty"`
	Requirements string    `json:"requirements,omitempty"`
	PickupDate   string    `json:"pickupDate,omitempty"`
	RentalDays   int       `json:"rentalDays"`
	VehicleCount int       `json:"vehicleCount"`
	FinalPrice   float64   `json:"finalPrice"`
	BookingDate  string    `json:"bookingDate,omitempty"`
}

// BookingRequest is a customer's pending request awaiting agent approval.
type BookingRequest struct {
	RequestID   int64     `json:"requestId"`
	Customer    *User     `json:"customer,omitempty"`
	Agent       *User     `json:"agent,omitempty"`
	Contract    *Contract `json:"vehicleContract,omitempty"`
	VehicleType string    `json:"vehicleType"`
	FinalPrice  float64   `json:"finalPrice"`
	Status      string    `json:"status"`
	RequestDate string    `json:"requestDate,omitempty"`
}

// ContactMessage is an inquiry submitted through the public contact form.
type ContactMessage struct {
	ID          int64  `json:"id,omitempty"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	SubmittedAt string `json:"submittedAt,omitempty"`
}

// ReportSummary is the admin analytics payload used for stat cards and charts.
type ReportSummary struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalBookings int64   `json:"totalBookings"`
	VehicleStats  []any   `json:"vehicleStats"`
}

// LoginResult is the backend's answer to a successful credential check.
type LoginResult struct {
	UserID      int64  `json:"userId"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	RedirectURL string `json:"redirectUrl"`
}
