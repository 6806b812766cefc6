package panel

import (
	"encoding/json"
	"errors"
	"net/http"

	"wanderfeast/internal/difficulty"
)

type Handler struct {
	ctrl *Controller
}

func NewHandler(ctrl *Controller) *Handler {
	return &Handler{ctrl: ctrl}
}

// Root handles GET /api/panel.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, 405, "method not allowed")
		return
	}
	writeJSON(w, 200, h.ctrl.Snapshot())
}

// Open handles POST /api/panel/open.
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, 405, "method not allowed")
		return
	}
	if err := h.ctrl.Open(r.Context()); err != nil {
		writeErr(w, 500, err.Error())
		return
	}
	writeJSON(w, 200, h.ctrl.Snapshot())
}

// Close handles POST /api/panel/close.
func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, 405, "method not allowed")
		return
	}
	h.ctrl.Close()
	writeJSON(w, 200, h.ctrl.Snapshot())
}

// Reposition handles POST /api/panel/reposition.
func (h *Handler) Reposition(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, 405, "method not allowed")
		return
	}
	err := h.ctrl.ForceReposition(r.Context())
	switch {
	case errors.Is(err, ErrPanelHidden):
		writeErr(w, 409, err.Error())
	case errors.Is(err, ErrRepositionInFlight):
		writeErr(w, 409, err.Error())
	case err != nil:
		writeErr(w, 502, err.Error())
	default:
		writeJSON(w, 200, h.ctrl.Snapshot())
	}
}

// Config handles PATCH /api/panel/config.
func (h *Handler) Config(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		writeErr(w, 405, "method not allowed")
		return
	}
	var p difficulty.Patch
	if err := decodeJSON(r, &p); err != nil {
		writeErr(w, 400, "bad json")
		return
	}
	if p.IsZero() {
		writeErr(w, 400, "empty patch")
		return
	}
	cfg, err := h.ctrl.UpdateConfig(r.Context(), p)
	if err != nil {
		writeErr(w, 500, err.Error())
		return
	}
	writeJSON(w, 200, cfg)
}

// Preset handles POST /api/panel/preset.
func (h *Handler) Preset(w http.ResponseWriter, r *http.Request) {
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
	p, err := difficulty.ParsePreset(in.Preset)
	if err != nil {
		writeErr(w, 400, err.Error())
		return
	}
	cfg, err := h.ctrl.ApplyPreset(r.Context(), p)
	if err != nil {
		writeErr(w, 500, err.Error())
		return
	}
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
