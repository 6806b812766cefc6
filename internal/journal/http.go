package journal

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

type Handler struct {
	svc  *Service
	repo Repo
}

func NewHandler(svc *Service, repo Repo) *Handler {
	return &Handler{svc: svc, repo: repo}
}

// Shards handles GET /api/journal/shards?district=... and
// POST /api/journal/shards/{id}/discover.
func (h *Handler) Shards(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/journal/shards"), "/")

	if rest == "" {
		if r.Method != http.MethodGet {
			writeErr(w, 405, "method not allowed")
			return
		}
		var shards []Shard
		var err error
		if character := r.URL.Query().Get("character"); character != "" {
			shards, err = h.svc.ShardsByCharacter(r.Context(), character)
		} else {
			shards, err = h.svc.ShardsByDistrict(r.Context(), r.URL.Query().Get("district"))
		}
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, shards)
		return
	}

	parts := strings.Split(rest, "/")
	if len(parts) == 2 && parts[1] == "discover" {
		if r.Method != http.MethodPost {
			writeErr(w, 405, "method not allowed")
			return
		}
		d, err := h.svc.Discover(r.Context(), parts[0])
		if errors.Is(err, ErrShardNotFound) {
			writeErr(w, 404, "shard not found")
			return
		}
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, d)
		return
	}

	writeErr(w, 404, "not found")
}

// Districts handles GET /api/journal/districts.
func (h *Handler) Districts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, 405, "method not allowed")
		return
	}
	districts, err := h.repo.ListDistricts(r.Context())
	if err != nil {
		writeErr(w, 500, err.Error())
		return
	}
	writeJSON(w, 200, districts)
}

// Characters handles GET /api/journal/characters.
func (h *Handler) Characters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, 405, "method not allowed")
		return
	}
	characters, err := h.repo.ListCharacters(r.Context())
	if err != nil {
		writeErr(w, 500, err.Error())
		return
	}
	writeJSON(w, 200, characters)
}

// Progress handles GET /api/journal/progress.
func (h *Handler) Progress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, 405, "method not allowed")
		return
	}
	p, err := h.svc.Progress(r.Context())
	if err != nil {
		writeErr(w, 500, err.Error())
		return
	}
	writeJSON(w, 200, p)
}

// Timeline handles GET /api/journal/timeline.
func (h *Handler) Timeline(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, 405, "method not allowed")
		return
	}
	entries, err := h.svc.Timeline(r.Context())
	if err != nil {
		writeErr(w, 500, err.Error())
		return
	}
	writeJSON(w, 200, entries)
}

// Search handles GET /api/journal/search?q=...
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, 405, "method not allowed")
		return
	}
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		writeErr(w, 400, `missing query parameter "q"`)
		return
	}
	results, err := h.svc.Search(r.Context(), q)
	if err != nil {
		writeErr(w, 500, err.Error())
		return
	}
	writeJSON(w, 200, results)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}
