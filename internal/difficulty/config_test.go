package difficulty

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestClamp_ForcesRanges(t *testing.T) {
	cfg := Config{
		TravelTimeTarget:      5,
		MinRestaurantDistance: 9000,
		RepositionPercentage:  -0.5,
		PlayerSpeed:           1000,
	}.Clamp()

	assert.Equal(t, MinTravelTimeTarget, cfg.TravelTimeTarget)
	assert.Equal(t, MinRestaurantDistanceCeil, cfg.MinRestaurantDistance)
	assert.Equal(t, 0.0, cfg.RepositionPercentage)
	assert.Equal(t, MaxPlayerSpeed, cfg.PlayerSpeed)
}

func TestPatch_OnlyTargetedFieldChanges(t *testing.T) {
	// Scenario: user drags the min-distance slider to 350.
	initial := Config{
		TravelTimeTarget:      60,
		MinRestaurantDistance: 200,
		RepositionPercentage:  0.1,
		PlayerSpeed:           100,
	}

	got := Patch{MinRestaurantDistance: f64(350)}.Apply(initial)

	assert.Equal(t, 350.0, got.MinRestaurantDistance)
	assert.Equal(t, initial.TravelTimeTarget, got.TravelTimeTarget)
	assert.Equal(t, initial.RepositionPercentage, got.RepositionPercentage)
	assert.Equal(t, initial.PlayerSpeed, got.PlayerSpeed)

	// The input value is untouched.
	assert.Equal(t, 200.0, initial.MinRestaurantDistance)
}

func TestPatch_ClampsMergedValue(t *testing.T) {
	got := Patch{PlayerSpeed: f64(10)}.Apply(Default())
	assert.Equal(t, MinPlayerSpeed, got.PlayerSpeed)
}

func TestPatch_IsZero(t *testing.T) {
	assert.True(t, Patch{}.IsZero())
	assert.False(t, Patch{TravelTimeTarget: f64(90)}.IsZero())
}

func TestRepositionPercentDisplay(t *testing.T) {
	for stored, want := range map[float64]string{
		0.25:  "25%",
		0.1:   "10%",
		0:     "0%",
		1:     "100%",
		0.333: "33%",
	} {
		cfg := Config{RepositionPercentage: stored}
		assert.Equal(t, want, cfg.RepositionPercentDisplay())
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("  Expert ")
	require.NoError(t, err)
	assert.Equal(t, PresetExpert, p)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestPresets_AllWithinRanges(t *testing.T) {
	for _, p := range Presets {
		cfg := p.Config()
		assert.Equal(t, cfg, cfg.Clamp(), "preset %s out of range", p)
	}
}

func TestStore_PresetRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, p := range Presets {
		applied, err := store.ApplyPreset(ctx, p)
		require.NoError(t, err)

		got, err := store.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, p.Config(), got, "read-after-write for %s", p)
		assert.Equal(t, applied, got)
	}
}

func TestStore_UpdateClamps(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	got, err := store.Update(ctx, Config{
		TravelTimeTarget:      1,
		MinRestaurantDistance: 1,
		RepositionPercentage:  2,
		PlayerSpeed:           1,
	})
	require.NoError(t, err)
	assert.Equal(t, got, got.Clamp())

	stored, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, got, stored)
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	st, err := NewFileStore(dir)
	require.NoError(t, err)

	_, err = st.ApplyPreset(ctx, PresetHard)
	require.NoError(t, err)

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)

	got, err := reopened.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, Hard(), got)
}
