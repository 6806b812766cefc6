package difficulty

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

type Handler struct {
	store Store
	log   zerolog.Logger
}

func NewHandler(store Store, log zerolog.Logger) *Handler {
	return &Handler{store: store, log: log.With().Str("component", "difficulty").Logger()}
}

// Root handles /api/difficulty (GET current config, PATCH partial update).
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		cfg, err := h.store.Get(r.Context())
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, cfg)

	case http.MethodPatch:
		var p Patch
		if err := decodeJSON(r, &p); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		if p.IsZero() {
			writeErr(w, 400, "empty patch")
			return
		}
		cur, err := h.store.Get(r.Context())
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		cfg, err := h.store.Update(r.Context(), p.Apply(cur))
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		h.log.Info().Interface("config", cfg).Msg("difficulty updated")
		writeJSON(w, 200, cfg)

	default:
		writeErr(w, 405, "method not allowed")
	}
}

// ApplyPreset handles POST /api/difficulty/preset.
func (h *Handler) ApplyPreset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, 405, "method not allowed")
		return
	}
	var in struct {
		Preset string `json:"preset"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeErr(w, 400, "bad json")
		return
	}
	p, err := ParsePreset(in.Preset)
	if err != nil {
		writeErr(w, 400, err.Error())
		return
	}
	cfg, err := h.store.ApplyPreset(r.Context(), p)
	if err != nil {
		writeErr(w, 500, err.Error())
		return
	}
	h.log.Info().Str("preset", string(p)).Msg("preset applied")
	writeJSON(w, 200, map[string]any{"preset": p, "config": cfg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}
