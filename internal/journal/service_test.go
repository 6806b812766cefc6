package journal

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderfeast/internal/game"
	"wanderfeast/internal/telemetry"
)

func newTestService(t *testing.T) (*Service, *MemoryRepo, *game.FakeClock) {
	t.Helper()
	repo := NewMemoryRepo()
	clock := game.NewFakeClock(time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC))
	svc := NewService(repo, clock, telemetry.NewMemoryRepository(clock), zerolog.Nop())
	require.NoError(t, repo.Seed(context.Background(), SeedDistricts(), SeedCharacters(), SeedShards()))
	return svc, repo, clock
}

func TestDiscover_StampsShardOnce(t *testing.T) {
	svc, repo, clock := newTestService(t)
	ctx := context.Background()

	d, err := svc.Discover(ctx, "shard_first_ferry")
	require.NoError(t, err)
	assert.False(t, d.Repeat)
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, clock.Now(), d.At)

	clock.Advance(time.Hour)
	again, err := svc.Discover(ctx, "shard_first_ferry")
	require.NoError(t, err)
	assert.True(t, again.Repeat)
	assert.Equal(t, d.At, again.At, "first timestamp wins")

	sh, ok, err := repo.GetShard(ctx, "shard_first_ferry")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, sh.Discovered())
}

func TestDiscover_UnknownShard(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Discover(context.Background(), "shard_nope")
	assert.ErrorIs(t, err, ErrShardNotFound)
}

func TestProgress(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.Progress(ctx)
	require.NoError(t, err)
	assert.Equal(t, Progress{Discovered: 0, Total: 10, Percent: 0}, p)

	_, err = svc.Discover(ctx, "shard_first_ferry")
	require.NoError(t, err)
	_, err = svc.Discover(ctx, "shard_salt_ledger")
	require.NoError(t, err)

	p, err = svc.Progress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Discovered)
	assert.Equal(t, 10, p.Total)
	assert.InDelta(t, 20.0, p.Percent, 1e-9)
}

func TestTimeline_DiscoveredInSeqOrder(t *testing.T) {
	svc, _, clock := newTestService(t)
	ctx := context.Background()

	// Discover out of narrative order.
	for _, id := range []string{"shard_ash_kitchen", "shard_first_ferry", "shard_wound_spring"} {
		_, err := svc.Discover(ctx, id)
		require.NoError(t, err)
		clock.Advance(time.Minute)
	}

	entries, err := svc.Timeline(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"shard_first_ferry", "shard_wound_spring", "shard_ash_kitchen"},
		[]string{entries[0].ShardID, entries[1].ShardID, entries[2].ShardID})
}

func TestShardsByDistrict(t *testing.T) {
	svc, _, _ := newTestService(t)

	shards, err := svc.ShardsByDistrict(context.Background(), "dist_ashline")
	require.NoError(t, err)
	require.Len(t, shards, 3)
	for _, sh := range shards {
		assert.Equal(t, "dist_ashline", sh.DistrictID)
	}

	all, err := svc.ShardsByDistrict(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 10)
}

func TestShardsByCharacter(t *testing.T) {
	svc, _, _ := newTestService(t)

	shards, err := svc.ShardsByCharacter(context.Background(), "char_july")
	require.NoError(t, err)
	require.Len(t, shards, 2)
	for _, sh := range shards {
		assert.Equal(t, "char_july", sh.CharacterID)
	}
}

func TestSearch_OnlyDiscoveredShards(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	results, err := svc.Search(ctx, "lantern")
	require.NoError(t, err)
	assert.Empty(t, results, "undiscovered shards stay hidden")

	_, err = svc.Discover(ctx, "shard_lantern_night")
	require.NoError(t, err)

	results, err = svc.Search(ctx, "lantern")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "shard_lantern_night", results[0].Shard.ID)
	assert.Equal(t, 1.0, results[0].Score)
}

func TestSearch_FuzzyTitleMatch(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Discover(ctx, "shard_lantern_night")
	require.NoError(t, err)

	// One transposition away from "lantern".
	results, err := svc.Search(ctx, "lantren")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "shard_lantern_night", results[0].Shard.ID)
	assert.Less(t, results[0].Score, 1.0)
}

func TestSearch_BodyMatchScoresBelowTitle(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Discover(ctx, "shard_terrace_seeds")
	require.NoError(t, err)
	_, err = svc.Discover(ctx, "shard_green_flood")
	require.NoError(t, err)

	// "soup" appears only in shard_terrace_seeds' body.
	results, err := svc.Search(ctx, "soup")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "shard_terrace_seeds", results[0].Shard.ID)
	assert.Equal(t, 0.8, results[0].Score)
}

func TestFileRepo_DiscoveriesSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewFileRepo(dir)
	require.NoError(t, err)
	require.NoError(t, repo.Seed(ctx, SeedDistricts(), SeedCharacters(), SeedShards()))

	at := time.Date(2026, 8, 2, 15, 0, 0, 0, time.UTC)
	_, first, err := repo.MarkDiscovered(ctx, "shard_first_ferry", at)
	require.NoError(t, err)
	require.True(t, first)

	reopened, err := NewFileRepo(dir)
	require.NoError(t, err)
	// Re-seeding must not clobber the discovery.
	require.NoError(t, reopened.Seed(ctx, SeedDistricts(), SeedCharacters(), SeedShards()))

	sh, ok, err := reopened.GetShard(ctx, "shard_first_ferry")
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, sh.Discovered())
	assert.Equal(t, at, sh.DiscoveredAt.UTC())
}
