package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// statusResponse wraps the backend's plain-text mutation acknowledgements.
type statusResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	UserID      int64  `json:"userId"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	RedirectURL string `json:"redirectUrl"`
}

type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Role     string `json:"role"     validate:"required,oneof=CUSTOMER AGENT ADMIN"`
}

// --- Bookings ---

type bookingRequestRequest struct {
	AgentID     string  `json:"agentId"     validate:"required"`
	ContractID  string  `json:"contractId"  validate:"required"`
	VehicleType string  `json:"vehicleType" validate:"required"`
	FinalPrice  float64 `json:"finalPrice"  validate:"required,gt=0"`
}

type createBookingRequest struct {
	ContractID   string  `json:"contractId"   validate:"required"`
	CustomerName string  `json:"customerName" validate:"required"`
	Requirements string  `json:"requirements"`
	PickupDate   string  `json:"pickupDate"   validate:"required"`
	RentalDays   int     `json:"rentalDays"   validate:"required,min=1"`
	VehicleCount int     `json:"vehicleCount" validate:"required,min=1"`
	FinalPrice   float64 `json:"finalPrice"   validate:"required,gt=0"`
}

type confirmBookingRequest struct {
	RequestID    string  `json:"requestId"    validate:"required"`
	CustomerID   string  `json:"customerId"   validate:"required"`
	ContractID   string  `json:"contractId"   validate:"required"`
	RentalDays   int     `json:"rentalDays"   validate:"required,min=1"`
	VehicleCount int     `json:"vehicleCount" validate:"required,min=1"`
	FinalPrice   float64 `json:"finalPrice"   validate:"required,gt=0"`
}

type updateBookingRequest struct {
	CustomerName string `json:"customerName"`
	PickupDate   string `json:"pickupDate"`
}

// --- Admin ---

type providerRequest struct {
	ProviderName   string `json:"providerName" validate:"required"`
	ContactDetails string `json:"contactDetails"`
}

type contractRequest struct {
	VehicleType        string  `json:"vehicleType"    validate:"required"`
	BaseRatePerDay     float64 `json:"baseRatePerDay" validate:"required,gt=0"`
	AllowedMileage     int     `json:"allowedMileage"`
	AvailabilityStatus bool    `json:"availabilityStatus"`
	ProviderID         int64   `json:"providerId"`
	AgentID            int64   `json:"agentId"`
}

type updateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Role     string `json:"role"     validate:"required,oneof=CUSTOMER AGENT ADMIN"`
}

// --- Contact ---

type contactRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"     validate:"required,email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"   validate:"required"`
}
