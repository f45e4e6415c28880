package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"aidhub/internal/domain"
)

type requestPayload struct {
	CategoryID  int64    `json:"category_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Budget      *float64 `json:"budget"`
	Priority    string   `json:"priority"`
	City        *string  `json:"city"`
	Region      string   `json:"region"`
}

func (p requestPayload) input() domain.RequestInput {
	return domain.RequestInput{
		CategoryID:  p.CategoryID,
		Title:       p.Title,
		Description: p.Description,
		Budget:      p.Budget,
		Priority:    p.Priority,
		City:        p.City,
		Region:      p.Region,
	}
}

type statusPayload struct {
	Status string `json:"status"`
}

func (a *App) CreateRequest(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	var p requestPayload
	if err := decodeJSON(w, r, &p); err != nil {
		a.fail(w, r, err)
		return
	}
	req, err := a.Requests.Create(r.Context(), actor, p.input())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, r, http.StatusCreated, "request_created", map[string]any{"request": req})
}

func (a *App) ListRequests(w http.ResponseWriter, r *http.Request) {
	filter, err := parseRequestFilter(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	items, err := a.Requests.List(r.Context(), filter)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.writeRequests(w, r, items)
}

func (a *App) MyRequests(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	items, err := a.Requests.Mine(r.Context(), actor)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.writeRequests(w, r, items)
}

func (a *App) AssignedRequests(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	items, err := a.Requests.Assigned(r.Context(), actor)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.writeRequests(w, r, items)
}

func (a *App) writeRequests(w http.ResponseWriter, r *http.Request, items []domain.RequestView) {
	if items == nil {
		items = []domain.RequestView{}
	}
	a.ok(w, r, http.StatusOK, "requests", map[string]any{"requests": items, "count": len(items)})
}

// GetRequest is public; participant emails are not exposed here.
func (a *App) GetRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	req, comments, err := a.Requests.Get(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	req.RequesterEmail = ""
	req.VolunteerEmail = nil
	if comments == nil {
		comments = []domain.CommentView{}
	}
	a.ok(w, r, http.StatusOK, "request", map[string]any{"request": req, "comments": comments})
}

func (a *App) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	var p requestPayload
	if err := decodeJSON(w, r, &p); err != nil {
		a.fail(w, r, err)
		return
	}
	req, err := a.Requests.Update(r.Context(), actor, id, p.input())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, r, http.StatusOK, "request_updated", map[string]any{"request": req})
}

func (a *App) AssignRequest(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	req, err := a.Requests.Assign(r.Context(), actor, id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, r, http.StatusOK, "request_assigned", map[string]any{"request": req})
}

func (a *App) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	var p statusPayload
	if err := decodeJSON(w, r, &p); err != nil {
		a.fail(w, r, err)
		return
	}
	to, err := domain.ParseStatus(p.Status)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	req, err := a.Requests.ChangeStatus(r.Context(), actor, id, to)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, r, http.StatusOK, "status_updated", map[string]any{"request": req})
}

func parseRequestFilter(r *http.Request) (domain.RequestFilter, error) {
	q := r.URL.Query()
	var f domain.RequestFilter
	if v := strings.TrimSpace(q.Get("category_id")); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return f, fmt.Errorf("%w: category_id must be a positive integer", domain.ErrValidation)
		}
		f.CategoryID = id
	}
	if v := strings.TrimSpace(q.Get("status")); v != "" {
		st, err := domain.ParseStatus(v)
		if err != nil {
			return f, err
		}
		f.Status = st
	}
	f.Region = domain.NormalizePlace(q.Get("region"))
	return f, nil
}
