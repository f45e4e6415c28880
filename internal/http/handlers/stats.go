package handlers

import "net/http"

func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	stats, err := a.Stats.Summary(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, r, http.StatusOK, "stats", map[string]any{"stats": stats})
}
