package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"aidhub/internal/domain"
	"aidhub/internal/middleware"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("%w: title required", domain.ErrValidation), http.StatusBadRequest},
		{"edit after assignment", fmt.Errorf("%w: not awaiting", domain.ErrInvalidTransition), http.StatusBadRequest},
		{"already assigned", domain.ErrAlreadyAssigned, http.StatusBadRequest},
		{"status change outside table", fmt.Errorf("%w: %w: no", domain.ErrForbidden, domain.ErrInvalidTransition), http.StatusForbidden},
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized},
		{"not found", fmt.Errorf("load: %w", domain.ErrNotFound), http.StatusNotFound},
		{"conflict", domain.ErrConflict, http.StatusConflict},
		{"rate limited", domain.ErrRateLimited, http.StatusTooManyRequests},
		{"pool exhausted", domain.ErrUnavailable, http.StatusServiceUnavailable},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), http.StatusServiceUnavailable},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got, _ := classify(tc.err); got != tc.want {
				t.Fatalf("classify() = %d, want %d", got, tc.want)
			}
		})
	}
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestFailHidesInternalErrorsInProduction(t *testing.T) {
	for _, production := range []bool{false, true} {
		app := &App{Logger: zerolog.Nop(), Production: production}
		rr := httptest.NewRecorder()
		app.fail(rr, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("pq: relation missing"))

		if rr.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rr.Code)
		}
		body := decodeBody(t, rr)
		_, hasDetail := body["error"]
		if hasDetail == production {
			t.Fatalf("production=%v: error field present = %v", production, hasDetail)
		}
		if body["success"] != false || body["message"] != "Internal server error" {
			t.Fatalf("unexpected envelope %v", body)
		}
	}
}

func TestFailUnavailableSetsRetryAfter(t *testing.T) {
	app := &App{Logger: zerolog.Nop(), Production: true}
	rr := httptest.NewRecorder()
	app.fail(rr, httptest.NewRequest(http.MethodGet, "/", nil), domain.ErrUnavailable)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
	if rr.Header().Get("Retry-After") == "" {
		t.Fatalf("missing Retry-After")
	}
}

func TestFailLocalisesMessage(t *testing.T) {
	app := &App{Logger: zerolog.Nop()}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.LocaleKey, "uk"))
	rr := httptest.NewRecorder()
	app.fail(rr, req, fmt.Errorf("%w: comment text must not be empty", domain.ErrValidation))

	body := decodeBody(t, rr)
	if body["message"] != "Некоректні дані" {
		t.Fatalf("message = %v", body["message"])
	}
	if body["error"] != "validation failed: comment text must not be empty" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestMessagesCatalogsMatch(t *testing.T) {
	for key := range messages["en"] {
		if _, ok := messages["uk"][key]; !ok {
			t.Errorf("uk catalog misses %q", key)
		}
	}
	if got := message("fr", "not_found"); got != "Not found" {
		t.Fatalf("unknown locale fallback = %q", got)
	}
}

type downDB struct{}

func (downDB) Ping(context.Context) error { return errors.New("connection refused") }

func TestHealthReportsDatabase(t *testing.T) {
	rr := httptest.NewRecorder()
	(&App{Logger: zerolog.Nop(), DB: downDB{}}).Health(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
}
