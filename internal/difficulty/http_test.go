package difficulty

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return NewHandler(NewMemoryStore(), zerolog.Nop())
}

func TestHTTP_GetConfig(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/difficulty", nil)
	rec := httptest.NewRecorder()
	h.Root(rec, req)

	require.Equal(t, 200, rec.Code)
	var got Config
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, Default(), got)
}

func TestHTTP_PatchConfig(t *testing.T) {
	h := newTestHandler()

	body := bytes.NewBufferString(`{"min_restaurant_distance": 350}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/difficulty", body)
	rec := httptest.NewRecorder()
	h.Root(rec, req)

	require.Equal(t, 200, rec.Code)
	var got Config
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 350.0, got.MinRestaurantDistance)
	assert.Equal(t, Default().PlayerSpeed, got.PlayerSpeed)
}

func TestHTTP_PatchConfig_EmptyPatchRejected(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPatch, "/api/difficulty", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	h.Root(rec, req)

	assert.Equal(t, 400, rec.Code)
}

func TestHTTP_ApplyPreset(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/difficulty/preset", bytes.NewBufferString(`{"preset":"hard"}`))
	rec := httptest.NewRecorder()
	h.ApplyPreset(rec, req)

	require.Equal(t, 200, rec.Code)
	var got struct {
		Preset Preset `json:"preset"`
		Config Config `json:"config"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, PresetHard, got.Preset)
	assert.Equal(t, Hard(), got.Config)
}

func TestHTTP_ApplyPreset_UnknownName(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/difficulty/preset", bytes.NewBufferString(`{"preset":"nightmare"}`))
	rec := httptest.NewRecorder()
	h.ApplyPreset(rec, req)

	assert.Equal(t, 400, rec.Code)
}

func TestHTTP_MethodNotAllowed(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/difficulty", nil)
	rec := httptest.NewRecorder()
	h.Root(rec, req)

	assert.Equal(t, 405, rec.Code)
}
