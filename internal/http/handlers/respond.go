package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"aidhub/internal/domain"
	"aidhub/internal/middleware"
)

const maxBodyBytes = 1 << 20

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// ok writes a success envelope; fields are merged next to success and message.
func (a *App) ok(w http.ResponseWriter, r *http.Request, code int, key string, fields map[string]any) {
	body := map[string]any{
		"success": true,
		"message": message(middleware.LocaleFromContext(r.Context()), key),
	}
	for k, v := range fields {
		body[k] = v
	}
	a.json(w, code, body)
}

// fail maps err onto the error taxonomy and writes the error envelope.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	code, key := classify(err)
	body := map[string]any{
		"success": false,
		"message": message(middleware.LocaleFromContext(r.Context()), key),
	}
	switch {
	case code < http.StatusInternalServerError:
		body["error"] = err.Error()
	case !a.Production:
		body["error"] = err.Error()
	}
	if code == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", "5")
	}
	if code >= http.StatusInternalServerError {
		a.Logger.Error().Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Str("path", r.URL.Path).
			Msg("request failed")
	}
	a.json(w, code, body)
}

// Deny adapts fail for middlewares.
func (a *App) Deny(w http.ResponseWriter, r *http.Request, err error) {
	a.fail(w, r, err)
}

// NotFound answers unknown routes.
func (a *App) NotFound(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusNotFound, map[string]any{
		"success": false,
		"message": message(middleware.LocaleFromContext(r.Context()), "route_not_found"),
	})
}

// MethodNotAllowed answers known routes requested with the wrong method.
func (a *App) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusMethodNotAllowed, map[string]any{
		"success": false,
		"message": message(middleware.LocaleFromContext(r.Context()), "method_not_allowed"),
	})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "validation"
	case errors.Is(err, domain.ErrAlreadyAssigned):
		return http.StatusBadRequest, "already_assigned"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusBadRequest, "invalid_transition"
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthenticated"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, "rate_limited"
	case errors.Is(err, domain.ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, "unavailable"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is empty", domain.ErrValidation)
		}
		return fmt.Errorf("%w: invalid JSON payload", domain.ErrValidation)
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrValidation, name)
	}
	return id, nil
}

func actorFrom(r *http.Request) (domain.Actor, error) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		return domain.Actor{}, domain.ErrUnauthenticated
	}
	return actor, nil
}
