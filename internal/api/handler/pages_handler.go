package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/driveease/web-portal/internal/core/domain"
	"github.com/driveease/web-portal/internal/core/ports"
	"github.com/driveease/web-portal/internal/session"
)

// PagesHandler serves the per-page view models. Each guarded page has one
// endpoint returning everything the page renders, so a navigation costs a
// single portal round trip.
type PagesHandler struct {
	sessions  session.Store
	customers ports.CustomerService
	agents    ports.AgentService
}

func NewPagesHandler(sessions session.Store, customers ports.CustomerService, agents ports.AgentService) *PagesHandler {
	return &PagesHandler{sessions: sessions, customers: customers, agents: agents}
}

// sessionView is the navbar/shell view of the current session. The userId is
// omitted for anonymous visitors.
type sessionView struct {
	Authenticated bool   `json:"authenticated"`
	Role          string `json:"role,omitempty"`
	UserID        string `json:"userId,omitempty"`
	Home          string `json:"home"`
}

// myBookingsView backs the customer's bookings page: their requests plus the
// agent roster for the new-request form.
type myBookingsView struct {
	Requests []domain.BookingRequest `json:"requests"`
	Agents   []domain.User           `json:"agents"`
}

// Session handles GET /auth/session: the shell reads it on load to decide
// which navbar to draw. Always 200; an anonymous visitor is not an error.
//
// @Summary      Current session state
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionView
// @Router       /auth/session [get]
func (h *PagesHandler) Session(c echo.Context) error {
	sess, ok := h.sessions.Get(c)
	if !ok {
		return c.JSON(http.StatusOK, sessionView{Home: domain.HomeForRole("")})
	}
	return c.JSON(http.StatusOK, sessionView{
		Authenticated: true,
		Role:          sess.Role,
		UserID:        sess.UserID,
		Home:          domain.HomeForRole(sess.Role),
	})
}

// Static serves the pages that carry no server data (landing, about, login,
// signup, contact, search form). The body is the shell's session view so a
// navigation never needs a second round trip to draw the navbar.
func (h *PagesHandler) Static(c echo.Context) error {
	return h.Session(c)
}

// Fleet handles GET /fleet: the public fleet gallery, a whole-catalogue
// search with default duration.
//
// @Summary      Fleet page data
// @Tags         pages
// @Produce      json
// @Success      200  {array}  domain.VehicleOffer
// @Router       /fleet [get]
func (h *PagesHandler) Fleet(c echo.Context) error {
	offers, err := h.customers.SearchVehicles(c.Request().Context(), ports.SearchQuery{})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offers)
}

// MyBookings handles GET /my-bookings for the logged-in customer.
//
// @Summary      Customer bookings page data
// @Tags         pages
// @Produce      json
// @Success      200  {object}  myBookingsView
// @Router       /my-bookings [get]
func (h *PagesHandler) MyBookings(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	requests, err := h.customers.MyRequests(c.Request().Context(), sess.UserID)
	if err != nil {
		return err
	}
	agents, err := h.customers.SupportAgents(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, myBookingsView{Requests: requests, Agents: agents})
}

// AgentDashboard handles GET /agent-dashboard: the agent's confirmed
// bookings.
//
// @Summary      Agent dashboard page data
// @Tags         pages
// @Produce      json
// @Success      200  {array}  domain.Booking
// @Router       /agent-dashboard [get]
func (h *PagesHandler) AgentDashboard(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	bookings, err := h.agents.Bookings(c.Request().Context(), sess.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// AgentInventory handles GET /agent-inventory: the contracts assigned
// to the agent.
//
// @Summary      Agent inventory page data
// @Tags         pages
// @Produce      json
// @Success      200  {array}  domain.Contract
// @Router       /agent-inventory [get]
func (h *PagesHandler) AgentInventory(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	contracts, err := h.agents.Inventory(c.Request().Context(), sess.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contracts)
}

// AgentRequests handles GET /agent-requests: the pending approval
// queue.
//
// @Summary      Agent request queue page data
// @Tags         pages
// @Produce      json
// @Success      200  {array}  domain.BookingRequest
// @Router       /agent-requests [get]
func (h *PagesHandler) AgentRequests(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	requests, err := h.agents.PendingRequests(c.Request().Context(), sess.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}
