package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderfeast/internal/game"
)

func TestCalculateStats(t *testing.T) {
	clock := game.NewFakeClock(time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))
	repo := NewMemoryRepository(clock)

	require.NoError(t, repo.RecordEvent(EventPanelOpened, nil))
	require.NoError(t, repo.RecordEvent(EventRepositionStarted, nil))
	require.NoError(t, repo.RecordEvent(EventRepositionDone, EventMetadata{"moved": 3}))
	require.NoError(t, repo.RecordEvent(EventRepositionStarted, nil))
	require.NoError(t, repo.RecordEvent(EventRepositionFailed, EventMetadata{"error": "layout locked"}))
	require.NoError(t, repo.RecordEvent(EventPresetApplied, EventMetadata{"preset": "hard"}))
	require.NoError(t, repo.RecordEvent(EventPresetApplied, EventMetadata{"preset": "hard"}))
	require.NoError(t, repo.RecordEvent(EventShardDiscovered, EventMetadata{"shard_id": "shard_1"}))

	events, err := repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)

	stats, err := CalculateStats(events, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.PanelOpens)
	assert.Equal(t, 2, stats.RepositionAttempts)
	assert.Equal(t, 1, stats.RepositionSuccesses)
	assert.Equal(t, 1, stats.RepositionFailures)
	assert.InDelta(t, 50.0, stats.RepositionSuccessPct, 1e-9)
	assert.Equal(t, 2, stats.PresetUsage["hard"])
	assert.Equal(t, 1, stats.ShardsDiscovered)
}

func TestGetEvents_FiltersByTimeAndType(t *testing.T) {
	clock := game.NewFakeClock(time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))
	repo := NewMemoryRepository(clock)

	require.NoError(t, repo.RecordEvent(EventPanelOpened, nil))
	cutoff := clock.Advance(time.Hour)
	require.NoError(t, repo.RecordEvent(EventShardDiscovered, nil))
	require.NoError(t, repo.RecordEvent(EventPresetApplied, nil))

	got, err := repo.GetEvents(cutoff, []EventType{EventShardDiscovered})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, EventShardDiscovered, got[0].Type)
}

func TestClear(t *testing.T) {
	repo := NewMemoryRepository(game.RealClock{})
	require.NoError(t, repo.RecordEvent(EventPanelOpened, nil))
	require.NoError(t, repo.Clear())

	got, err := repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
