package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/driveease/web-portal/internal/core/domain"
	"github.com/driveease/web-portal/internal/core/ports"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, zerolog.Nop()), srv
}

func TestClient_Do_DecodesJSON(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bookings/search" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("type"); got != "SUV" {
			t.Fatalf("unexpected type param: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]domain.VehicleOffer{{ContractID: 3, VehicleType: "SUV"}})
	})

	params := url.Values{}
	params.Set("type", "SUV")

	var offers []domain.VehicleOffer
	if err := client.Do(context.Background(), "GET", "/bookings/search", params, nil, &offers); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if len(offers) != 1 || offers[0].ContractID != 3 {
		t.Fatalf("unexpected offers: %+v", offers)
	}
}

func TestClient_Do_PlainTextIntoString(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Booking confirmed and customer notified\n"))
	})

	var status string
	if err := client.Do(context.Background(), "POST", "/bookings/confirm", nil, map[string]string{}, &status); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if status != "Booking confirmed and customer notified" {
		t.Fatalf("unexpected status: %q", status)
	}
}

func TestClient_Do_EncodesBodyAsJSON(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type: %q", ct)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["username"] != "alice" {
			t.Fatalf("unexpected body: %+v", body)
		}
		w.WriteHeader(http.StatusOK)
	})

	body := map[string]string{"username": "alice", "password": "secret"}
	if err := client.Do(context.Background(), "POST", "/auth/login", nil, body, nil); err != nil {
		t.Fatalf("Do: %v", err)
	}
}

func TestClient_Do_Non2xxBecomesUpstreamError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
	})

	err := client.Do(context.Background(), "POST", "/auth/login", nil, map[string]string{}, nil)
	var ue *domain.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.Status != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", ue.Status)
	}
}

func TestClient_Do_UnreachableBecomesTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(srv.URL, time.Second, zerolog.Nop())
	srv.Close() // nothing listens any more

	err := client.Do(context.Background(), "GET", "/bookings/search", nil, nil, nil)
	var te *domain.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestClient_Do_EmptyBodyLeavesOutUntouched(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	var offers []domain.VehicleOffer
	if err := client.Do(context.Background(), "GET", "/bookings/search", nil, nil, &offers); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if offers != nil {
		t.Fatalf("expected untouched slice, got %+v", offers)
	}
}

func TestClient_Ping(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Even an error status proves the backend answers HTTP.
		w.WriteHeader(http.StatusInternalServerError)
	})
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead := NewClient(srv.URL, time.Second, zerolog.Nop())
	srv.Close()
	if err := dead.Ping(context.Background()); err == nil {
		t.Fatalf("expected ping failure for closed server")
	}
}

func TestBookingClient_Search_BuildsQuery(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("days") != "3" || q.Get("count") != "2" || q.Get("type") != "Sedan" {
			t.Fatalf("unexpected query: %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	bookings := NewBookingClient(client)
	if _, err := bookings.Search(context.Background(), ports.SearchQuery{Type: "Sedan", Days: 3, Count: 2}); err != nil {
		t.Fatalf("Search: %v", err)
	}
}

func TestAdminClient_ToggleContractStatus_SendsStatusParam(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/admin/contracts/3/status" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("status"); got != "false" {
			t.Fatalf("unexpected status param: %q", got)
		}
		w.Write([]byte("Status updated"))
	})

	admin := NewAdminClient(client)
	status, err := admin.ToggleContractStatus(context.Background(), "3", false)
	if err != nil {
		t.Fatalf("ToggleContractStatus: %v", err)
	}
	if status != "Status updated" {
		t.Fatalf("unexpected status: %q", status)
	}
}
