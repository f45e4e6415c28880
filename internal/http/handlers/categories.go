package handlers

import "net/http"

func (a *App) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := a.Categories.List(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, r, http.StatusOK, "categories", map[string]any{"categories": cats})
}
