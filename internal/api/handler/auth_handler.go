package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/driveease/web-portal/internal/api/metrics"
	"github.com/driveease/web-portal/internal/core/domain"
	"github.com/driveease/web-portal/internal/core/ports"
	"github.com/driveease/web-portal/internal/session"
)

// AuthHandler owns the login/logout/signup flows and is the only writer of
// the session store.
type AuthHandler struct {
	authService ports.AuthService
	sessions    session.Store
}

func NewAuthHandler(authService ports.AuthService, sessions session.Store) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// Login authenticates against the rental backend and, on success, writes the
// {role, userId} session pair before answering with the role's landing page.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) && upstream.Status == http.StatusUnauthorized {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	sess := domain.Session{
		Role:   result.Role,
		UserID: strconv.FormatInt(result.UserID, 10),
	}
	if err := h.sessions.Set(c, sess); err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		UserID:      result.UserID,
		Username:    result.Username,
		Role:        result.Role,
		RedirectURL: domain.HomeForRole(result.Role),
	})
}

// Logout clears the session. Calling it without an active session is a no-op
// that still answers 200.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  statusResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Clear(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Message: "logged out"})
}

// Signup registers a new account and leaves the browser unauthenticated; the
// login flow runs afterwards, exactly like the signup-then-redirect pages.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  statusResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status, err := h.authService.Signup(c.Request().Context(), domain.User{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, statusResponse{Message: status})
}

// Agents lists the support agents selectable in the booking form.
//
// @Summary      List support agents
// @Tags         auth
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /auth/agents [get]
func (h *AuthHandler) Agents(c echo.Context) error {
	agents, err := h.authService.Agents(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, agents)
}
