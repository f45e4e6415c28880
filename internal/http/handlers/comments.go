package handlers

import (
	"net/http"

	"aidhub/internal/domain"
)

type commentPayload struct {
	Text string `json:"text"`
}

func (a *App) AddComment(w http.ResponseWriter, r *http.Request) {
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
	var p commentPayload
	if err := decodeJSON(w, r, &p); err != nil {
		a.fail(w, r, err)
		return
	}
	thread, err := a.Comments.Add(r.Context(), actor, id, p.Text)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, r, http.StatusCreated, "comment_added", map[string]any{"comments": thread})
}

func (a *App) ListComments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	thread, err := a.Comments.List(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if thread == nil {
		thread = []domain.CommentView{}
	}
	a.ok(w, r, http.StatusOK, "comments", map[string]any{"comments": thread})
}
