package mapgen

import (
	"encoding/json"
	"errors"
	"net/http"
)

type Handler struct {
	repo Repo
	svc  Service
}

func NewHandler(repo Repo, svc Service) *Handler {
	return &Handler{repo: repo, svc: svc}
}

// Layout handles GET /api/map/layout.
func (h *Handler) Layout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, 405, "method not allowed")
		return
	}
	l, err := h.repo.Get(r.Context())
	if err != nil {
		writeErr(w, 500, err.Error())
		return
	}
	writeJSON(w, 200, l)
}

// Stats handles GET /api/map/stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, 405, "method not allowed")
		return
	}
	s, err := h.svc.Stats(r.Context())
	if err != nil {
		writeErr(w, 500, err.Error())
		return
	}
	writeJSON(w, 200, map[string]any{"stats": s, "status": s.Status()})
}

// Reposition handles POST /api/map/reposition. The panel normally drives
// repositioning; this endpoint exists for ops tooling.
func (h *Handler) Reposition(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, 405, "method not allowed")
		return
	}
	s, err := h.svc.ForceReposition(r.Context())
	if errors.Is(err, ErrEmptyLayout) {
		writeErr(w, 409, err.Error())
		return
	}
	if err != nil {
		writeErr(w, 500, err.Error())
		return
	}
	writeJSON(w, 200, map[string]any{"stats": s, "status": s.Status()})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}
