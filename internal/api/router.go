package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/driveease/web-portal/docs"
	"github.com/driveease/web-portal/internal/api/handler"
	"github.com/driveease/web-portal/internal/api/middleware"
	"github.com/driveease/web-portal/internal/core/domain"
	"github.com/driveease/web-portal/internal/core/ports"
	"github.com/driveease/web-portal/internal/session"
)

// Dependencies carries everything the router wires together.
type Dependencies struct {
	Log      zerolog.Logger
	Sessions session.Store

	Auth      ports.AuthService
	Customers ports.CustomerService
	Agents    ports.AgentService
	Admins    ports.AdminService
	Contact   ports.ContactService

	Backend handler.BackendPinger
	Redis   *redis.Client // nil unless the redis session backend is configured
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Sessions)
	bookingHandler := handler.NewBookingHandler(deps.Customers, deps.Agents)
	adminHandler := handler.NewAdminHandler(deps.Admins)
	contactHandler := handler.NewContactHandler(deps.Contact)
	pagesHandler := handler.NewPagesHandler(deps.Sessions, deps.Customers, deps.Agents)

	customerOnly := middleware.Guard(deps.Sessions, domain.RoleCustomer)
	agentOnly := middleware.Guard(deps.Sessions, domain.RoleAgent)
	adminOnly := middleware.Guard(deps.Sessions, domain.RoleAdmin)

	// --- Pages ---
	// Every navigable page comes from the declarative table; protected pages
	// get their role guard from the same entry that documents it.
	registerPages(e, deps.Sessions, map[string]echo.HandlerFunc{
		"/fleet":           pagesHandler.Fleet,
		"/my-bookings":     pagesHandler.MyBookings,
		"/agent-dashboard": pagesHandler.AgentDashboard,
		"/agent-inventory": pagesHandler.AgentInventory,
		"/agent-requests":  pagesHandler.AgentRequests,
		"/admin":           adminHandler.Dashboard,
	}, pagesHandler.Static)

	// --- Auth ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.POST("/auth/signup", authHandler.Signup)
	e.GET("/auth/agents", authHandler.Agents)
	e.GET("/auth/session", pagesHandler.Session)

	// --- Bookings ---
	e.GET("/bookings/search", bookingHandler.Search)
	e.POST("/bookings/request", bookingHandler.SendRequest, customerOnly)
	e.POST("/bookings/create", bookingHandler.Create, agentOnly)
	e.POST("/bookings/confirm", bookingHandler.Confirm, agentOnly)
	e.PUT("/bookings/:id", bookingHandler.Update, agentOnly)
	e.DELETE("/bookings/:id", bookingHandler.Delete, agentOnly)
	e.DELETE("/admin/bookings/requests/:id", bookingHandler.Reject, agentOnly)

	// --- Admin ---
	admin := e.Group("/admin", adminOnly)
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/reports/summary", adminHandler.ReportSummary)
	admin.POST("/contracts", adminHandler.UploadContract)
	admin.PUT("/contracts/:id", adminHandler.UpdateContract)
	admin.PATCH("/contracts/:id/status", adminHandler.ToggleContractStatus)
	admin.POST("/providers", adminHandler.AddProvider)
	admin.PUT("/providers/:id", adminHandler.UpdateProvider)
	admin.DELETE("/providers/:id", adminHandler.DeleteProvider)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/list", adminHandler.Admins)

	// --- Contact ---
	e.POST("/contact", contactHandler.Send)
	e.GET("/contact/messages", contactHandler.Inbox, adminOnly)

	// --- Ops (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Backend, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// registerPages walks the page table and mounts one GET route per page:
// view-model handlers where a page has server data, the static shell handler
// everywhere else. Protected entries get their guard here and nowhere else.
func registerPages(e *echo.Echo, store session.Store, views map[string]echo.HandlerFunc, static echo.HandlerFunc) {
	for _, route := range domain.PageRoutes() {
		h, ok := views[route.Path]
		if !ok {
			h = static
		}
		if route.Public() {
			e.GET(route.Path, h)
			continue
		}
		e.GET(route.Path, h, middleware.Guard(store, route.Allowed...))
	}
}
