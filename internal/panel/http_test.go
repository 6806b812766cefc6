package panel

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderfeast/internal/difficulty"
)

func newTestPanelHandler(t *testing.T) (*Handler, *Controller) {
	t.Helper()
	ctrl, _ := newTestController(&fakeMapService{})
	t.Cleanup(ctrl.Shutdown)
	return NewHandler(ctrl), ctrl
}

func TestHTTP_SnapshotStartsHidden(t *testing.T) {
	h, _ := newTestPanelHandler(t)

	rec := httptest.NewRecorder()
	h.Root(rec, httptest.NewRequest(http.MethodGet, "/api/panel", nil))

	require.Equal(t, 200, rec.Code)
	var snap Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, StateHidden, snap.State)
	assert.False(t, snap.Loading)
	assert.Nil(t, snap.Stats)
}

func TestHTTP_OpenThenClose(t *testing.T) {
	h, ctrl := newTestPanelHandler(t)

	rec := httptest.NewRecorder()
	h.Open(rec, httptest.NewRequest(http.MethodPost, "/api/panel/open", nil))
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, StateIdle, ctrl.State())

	rec = httptest.NewRecorder()
	h.Close(rec, httptest.NewRequest(http.MethodPost, "/api/panel/close", nil))
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, StateHidden, ctrl.State())
}

func TestHTTP_RepositionWhileHiddenConflicts(t *testing.T) {
	h, _ := newTestPanelHandler(t)

	rec := httptest.NewRecorder()
	h.Reposition(rec, httptest.NewRequest(http.MethodPost, "/api/panel/reposition", nil))
	assert.Equal(t, 409, rec.Code)
}

func TestHTTP_RepositionFailureIsBadGateway(t *testing.T) {
	ctrl, _ := newTestController(&fakeMapService{repositionEr: assert.AnError})
	t.Cleanup(ctrl.Shutdown)
	h := NewHandler(ctrl)

	require.NoError(t, ctrl.Open(httptest.NewRequest(http.MethodPost, "/", nil).Context()))

	rec := httptest.NewRecorder()
	h.Reposition(rec, httptest.NewRequest(http.MethodPost, "/api/panel/reposition", nil))
	assert.Equal(t, 502, rec.Code)
	assert.Equal(t, StateIdle, ctrl.State())
}

func TestHTTP_PatchConfig(t *testing.T) {
	h, ctrl := newTestPanelHandler(t)

	rec := httptest.NewRecorder()
	h.Open(rec, httptest.NewRequest(http.MethodPost, "/api/panel/open", nil))
	require.Equal(t, 200, rec.Code)

	body := bytes.NewBufferString(`{"reposition_percentage": 0.25}`)
	rec = httptest.NewRecorder()
	h.Config(rec, httptest.NewRequest(http.MethodPatch, "/api/panel/config", body))

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, 0.25, ctrl.Config().RepositionPercentage)
	assert.Equal(t, "25%", ctrl.Snapshot().PercentDisplay)
}

func TestHTTP_ApplyPreset(t *testing.T) {
	h, ctrl := newTestPanelHandler(t)

	rec := httptest.NewRecorder()
	h.Preset(rec, httptest.NewRequest(http.MethodPost, "/api/panel/preset", bytes.NewBufferString(`{"preset":"easy"}`)))

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, difficulty.Easy(), ctrl.Config())
}

func TestHTTP_ApplyPreset_Unknown(t *testing.T) {
	h, _ := newTestPanelHandler(t)

	rec := httptest.NewRecorder()
	h.Preset(rec, httptest.NewRequest(http.MethodPost, "/api/panel/preset", bytes.NewBufferString(`{"preset":"brutal"}`)))
	assert.Equal(t, 400, rec.Code)
}
