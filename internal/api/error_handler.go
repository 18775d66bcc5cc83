package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/driveease/web-portal/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the portal's error taxonomy to deterministic HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Local validation failed before any backend call was issued.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Error()
	}

	// The backend answered with an error status: relay it.
	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		return ue.Status, upstreamMessage(ue)
	}

	// The backend could not be reached at all.
	var te *domain.TransportError
	if errors.As(err, &te) {
		log.Error().Err(te.Err).Str("op", te.Op).Msg("rental backend unreachable")
		return http.StatusServiceUnavailable, "the rental service is currently unavailable"
	}

	if errors.Is(err, domain.ErrInvalidCredentials) {
		return http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

// upstreamMessage picks a client-facing message for a backend error. The
// backend answers most failures with a short plain-text reason worth showing;
// anything long or structured collapses to a generic message.
func upstreamMessage(ue *domain.UpstreamError) string {
	body := strings.TrimSpace(ue.Body)
	if body == "" || len(body) > 200 || strings.HasPrefix(body, "{") || strings.HasPrefix(body, "<") {
		return http.StatusText(ue.Status)
	}
	return body
}
