package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/driveease/web-portal/internal/core/domain"
	"github.com/driveease/web-portal/internal/core/ports"
)

// AdminHandler exposes the administrator catalogue: the dashboard aggregate,
// analytics, and contract/provider/user management.
type AdminHandler struct {
	admins ports.AdminService
}

func NewAdminHandler(admins ports.AdminService) *AdminHandler {
	return &AdminHandler{admins: admins}
}

// Dashboard handles GET /admin/dashboard: the four lists behind the admin
// landing page, fetched in one round trip.
//
// @Summary      Admin dashboard aggregate
// @Tags         admin
// @Produce      json
// @Success      200  {object}  ports.DashboardData
// @Failure      503  {object}  errorResponse
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	data, err := h.admins.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, data)
}

// ReportSummary handles GET /admin/reports/summary.
//
// @Summary      Revenue and booking analytics
// @Tags         admin
// @Produce      json
// @Success      200  {object}  domain.ReportSummary
// @Router       /admin/reports/summary [get]
func (h *AdminHandler) ReportSummary(c echo.Context) error {
	summary, err := h.admins.ReportSummary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// UploadContract handles POST /admin/contracts.
//
// @Summary      Upload a vehicle contract
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      contractRequest  true  "Contract"
// @Success      201   {object}  statusResponse
// @Failure      400   {object}  errorResponse
// @Router       /admin/contracts [post]
func (h *AdminHandler) UploadContract(c echo.Context) error {
	var req contractRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status, err := h.admins.UploadContract(c.Request().Context(), contractFromRequest(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, statusResponse{Message: status})
}

// UpdateContract handles PUT /admin/contracts/:id.
//
// @Summary      Update a vehicle contract
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Contract id"
// @Param        body  body      contractRequest  true  "Contract"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  errorResponse
// @Router       /admin/contracts/{id} [put]
func (h *AdminHandler) UpdateContract(c echo.Context) error {
	var req contractRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status, err := h.admins.UpdateContract(c.Request().Context(), c.Param("id"), contractFromRequest(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Message: status})
}

// ToggleContractStatus handles PATCH /admin/contracts/:id/status?active=.
//
// @Summary      Activate or deactivate a contract
// @Tags         admin
// @Produce      json
// @Param        id      path      string  true  "Contract id"
// @Param        active  query     bool    true  "Desired availability"
// @Success      200     {object}  statusResponse
// @Failure      400     {object}  errorResponse
// @Router       /admin/contracts/{id}/status [patch]
func (h *AdminHandler) ToggleContractStatus(c echo.Context) error {
	active, err := strconv.ParseBool(c.QueryParam("active"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "active must be true or false")
	}

	status, err := h.admins.ToggleContractStatus(c.Request().Context(), c.Param("id"), active)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Message: status})
}

// AddProvider handles POST /admin/providers.
//
// @Summary      Register a fleet provider
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      providerRequest  true  "Provider"
// @Success      201   {object}  statusResponse
// @Failure      400   {object}  errorResponse
// @Router       /admin/providers [post]
func (h *AdminHandler) AddProvider(c echo.Context) error {
	var req providerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status, err := h.admins.AddProvider(c.Request().Context(), domain.Provider{
		ProviderName:   req.ProviderName,
		ContactDetails: req.ContactDetails,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, statusResponse{Message: status})
}

// UpdateProvider handles PUT /admin/providers/:id.
//
// @Summary      Update a fleet provider
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Provider id"
// @Param        body  body      providerRequest  true  "Provider"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  errorResponse
// @Router       /admin/providers/{id} [put]
func (h *AdminHandler) UpdateProvider(c echo.Context) error {
	var req providerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status, err := h.admins.UpdateProvider(c.Request().Context(), c.Param("id"), domain.Provider{
		ProviderName:   req.ProviderName,
		ContactDetails: req.ContactDetails,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Message: status})
}

// DeleteProvider handles DELETE /admin/providers/:id.
//
// @Summary      Delete a fleet provider
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Provider id"
// @Success      200  {object}  statusResponse
// @Router       /admin/providers/{id} [delete]
func (h *AdminHandler) DeleteProvider(c echo.Context) error {
	status, err := h.admins.DeleteProvider(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Message: status})
}

// UpdateUser handles PUT /admin/users/:id.
//
// @Summary      Update a user account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Account details"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  errorResponse
// @Router       /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status, err := h.admins.UpdateUser(c.Request().Context(), c.Param("id"), domain.User{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Message: status})
}

// DeleteUser handles DELETE /admin/users/:id.
//
// @Summary      Delete a user account
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  statusResponse
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	status, err := h.admins.DeleteUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Message: status})
}

// Admins handles GET /admin/list: the accounts shown on the admin settings
// page.
//
// @Summary      List administrator accounts
// @Tags         admin
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /admin/list [get]
func (h *AdminHandler) Admins(c echo.Context) error {
	admins, err := h.admins.Admins(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admins)
}

// contractFromRequest maps the flat form payload onto the backend's nested
// contract shape.
func contractFromRequest(req contractRequest) domain.Contract {
	contract := domain.Contract{
		VehicleType:        req.VehicleType,
		BaseRatePerDay:     req.BaseRatePerDay,
		AllowedMileage:     req.AllowedMileage,
		AvailabilityStatus: req.AvailabilityStatus,
	}
	if req.ProviderID != 0 {
		contract.Provider = &domain.Provider{ProviderID: req.ProviderID}
	}
	if req.AgentID != 0 {
		contract.Agent = &domain.User{UserID: req.AgentID}
	}
	return contract
}
