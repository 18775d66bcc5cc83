package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/driveease/web-portal/internal/core/ports"
)

// BookingHandler exposes the booking operations: public vehicle search,
// customer requests, and the agent's approve/reject/maintain catalogue.
type BookingHandler struct {
	customers ports.CustomerService
	agents    ports.AgentService
}

func NewBookingHandler(customers ports.CustomerService, agents ports.AgentService) *BookingHandler {
	return &BookingHandler{customers: customers, agents: agents}
}

// Search handles GET /bookings/search. Public: browsing the fleet needs no
// session.
//
// @Summary      Search available vehicles
// @Tags         bookings
// @Produce      json
// @Param        type   query  string  false  "Vehicle type, empty for all"
// @Param        days   query  int     false  "Rental days"    default(1)
// @Param        count  query  int     false  "Vehicle count"  default(1)
// @Success      200  {array}  domain.VehicleOffer
// @Failure      503  {object} errorResponse
// @Router       /bookings/search [get]
func (h *BookingHandler) Search(c echo.Context) error {
	days, _ := strconv.Atoi(c.QueryParam("days"))
	count, _ := strconv.Atoi(c.QueryParam("count"))

	offers, err := h.customers.SearchVehicles(c.Request().Context(), ports.SearchQuery{
		Type:  c.QueryParam("type"),
		Days:  days,
		Count: count,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offers)
}

// SendRequest handles POST /bookings/request for the logged-in customer. The
// customer id always comes from the session, never from the payload.
//
// @Summary      Submit a booking request
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      bookingRequestRequest  true  "Request"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  errorResponse
// @Router       /bookings/request [post]
func (h *BookingHandler) SendRequest(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req bookingRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status, err := h.customers.SendRequest(c.Request().Context(), ports.BookingRequestPayload{
		CustomerID:  sess.UserID,
		AgentID:     req.AgentID,
		ContractID:  req.ContractID,
		VehicleType: req.VehicleType,
		FinalPrice:  req.FinalPrice,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Message: status})
}

// Create handles POST /bookings/create: an agent books directly on behalf of
// a walk-in customer.
//
// @Summary      Create a booking directly
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      createBookingRequest  true  "Booking"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  errorResponse
// @Router       /bookings/create [post]
func (h *BookingHandler) Create(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status, err := h.agents.CreateBooking(c.Request().Context(), ports.CreateBookingPayload{
		AgentID:      sess.UserID,
		ContractID:   req.ContractID,
		CustomerName: req.CustomerName,
		Requirements: req.Requirements,
		PickupDate:   req.PickupDate,
		RentalDays:   req.RentalDays,
		VehicleCount: req.VehicleCount,
		FinalPrice:   req.FinalPrice,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Message: status})
}

// Confirm handles POST /bookings/confirm: the agent approves a pending
// request, which books it and notifies the customer backend-side.
//
// @Summary      Confirm a booking request
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      confirmBookingRequest  true  "Approval"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  errorResponse
// @Router       /bookings/confirm [post]
func (h *BookingHandler) Confirm(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req confirmBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status, err := h.agents.ConfirmBooking(c.Request().Context(), ports.ConfirmPayload{
		RequestID:    req.RequestID,
		CustomerID:   req.CustomerID,
		AgentID:      sess.UserID,
		ContractID:   req.ContractID,
		RentalDays:   req.RentalDays,
		VehicleCount: req.VehicleCount,
		FinalPrice:   req.FinalPrice,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Message: status})
}

// Reject handles DELETE /admin/bookings/requests/:id from the agent's
// request inbox.
//
// @Summary      Reject a booking request
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Request id"
// @Success      200  {object}  statusResponse
// @Failure      400  {object}  errorResponse
// @Router       /admin/bookings/requests/{id} [delete]
func (h *BookingHandler) Reject(c echo.Context) error {
	status, err := h.agents.RejectRequest(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Message: status})
}

// Update handles PUT /bookings/:id, a partial edit of a confirmed record.
//
// @Summary      Update a booking record
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Booking id"
// @Param        body  body      updateBookingRequest  true  "Fields to change"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  errorResponse
// @Router       /bookings/{id} [put]
func (h *BookingHandler) Update(c echo.Context) error {
	var req updateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	status, err := h.agents.UpdateBooking(c.Request().Context(), c.Param("id"), ports.BookingUpdate{
		CustomerName: req.CustomerName,
		PickupDate:   req.PickupDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Message: status})
}

// Delete handles DELETE /bookings/:id.
//
// @Summary      Delete a booking record
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  statusResponse
// @Failure      400  {object}  errorResponse
// @Router       /bookings/{id} [delete]
func (h *BookingHandler) Delete(c echo.Context) error {
	status, err := h.agents.DeleteBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Message: status})
}
