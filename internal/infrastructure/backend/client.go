// Package backend implements the portal's HTTP client for the DriveEase
// rental service. One Client issues every request: base URL plus path, JSON
// in, JSON (or plain text) out. No retries and no caching — each call is a
// fresh round trip, and the backend is the sole reliability boundary.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/driveease/web-portal/internal/api/metrics"
	"github.com/driveease/web-portal/internal/core/domain"
)

// Client is the gateway to the rental backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient builds a Client for the given base URL (e.g.
// "http://localhost:8080/api"). The timeout bounds a single round trip.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Do issues one request. params become the query string, body (when non-nil)
// is JSON-encoded, and the response is decoded into out: a *string receives
// the raw body (the backend answers several mutations with plain text), any
// other non-nil out is JSON-decoded.
//
// Failures are classified: a *domain.TransportError when the backend is
// unreachable, a *domain.UpstreamError carrying status and body for any
// non-2xx response.
func (c *Client) Do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	op := method + " " + path

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(method, "unreachable").Inc()
		c.log.Error().Err(err).Str("op", op).Msg("backend unreachable")
		return &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	metrics.UpstreamRequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.UpstreamRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.TransportError{Op: op, Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.log.Warn().Str("op", op).Int("status", resp.StatusCode).
			Str("body", truncate(string(raw), 512)).Msg("backend rejected request")
		return &domain.UpstreamError{Status: resp.StatusCode, Body: string(raw)}
	}

	switch v := out.(type) {
	case nil:
		return nil
	case *string:
		*v = strings.TrimSpace(string(raw))
		return nil
	default:
		if len(raw) == 0 {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response for %s: %w", op, err)
		}
		return nil
	}
}

// Ping reports whether the backend answers HTTP at all. Any status code
// counts as reachable; only a transport failure fails the probe.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/bookings/search", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.TransportError{Op: "ping", Err: err}
	}
	resp.Body.Close()
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
