package journal

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"wanderfeast/internal/game"
	"wanderfeast/internal/metrics"
	"wanderfeast/internal/telemetry"
)

// Service handles journal business logic: discovery, progress, timeline.
type Service struct {
	repo  Repo
	clock game.Clock
	telem telemetry.Repository
	log   zerolog.Logger
}

func NewService(repo Repo, clock game.Clock, telem telemetry.Repository, log zerolog.Logger) *Service {
	return &Service{
		repo:  repo,
		clock: clock,
		telem: telem,
		log:   log.With().Str("component", "journal").Logger(),
	}
}

// Discover stamps a shard as found. Repeated discoveries are harmless
// and reported via the receipt's Repeat flag.
func (s *Service) Discover(ctx context.Context, shardID string) (Discovery, error) {
	now := s.clock.Now()
	shard, first, err := s.repo.MarkDiscovered(ctx, shardID, now)
	if err != nil {
		return Discovery{}, fmt.Errorf("discover shard %s: %w", shardID, err)
	}

	d := Discovery{
		ID:      uuid.NewString(),
		ShardID: shard.ID,
		At:      *shard.DiscoveredAt,
		Repeat:  !first,
	}
	if first {
		metrics.ShardsDiscovered.Inc()
		_ = s.telem.RecordEvent(telemetry.EventShardDiscovered, telemetry.EventMetadata{"shard_id": shard.ID})
		s.log.Info().Str("shard", shard.ID).Msg("shard discovered")
	}
	return d, nil
}

// Progress returns the discovery counters for the journal header.
func (s *Service) Progress(ctx context.Context) (Progress, error) {
	shards, err := s.repo.ListShards(ctx)
	if err != nil {
		return Progress{}, err
	}
	p := Progress{Total: len(shards)}
	for _, sh := range shards {
		if sh.Discovered() {
			p.Discovered++
		}
	}
	if p.Total > 0 {
		p.Percent = math.Round(float64(p.Discovered)/float64(p.Total)*1000) / 10
	}
	return p, nil
}

// Timeline lists discovered shards in narrative order.
func (s *Service) Timeline(ctx context.Context) ([]TimelineEntry, error) {
	shards, err := s.repo.ListShards(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]TimelineEntry, 0)
	for _, sh := range shards {
		if !sh.Discovered() {
			continue
		}
		out = append(out, TimelineEntry{
			Seq:          sh.Seq,
			ShardID:      sh.ID,
			Title:        sh.Title,
			DiscoveredAt: *sh.DiscoveredAt,
		})
	}
	return out, nil
}

// ShardsByDistrict filters the shard list; empty districtID means all.
func (s *Service) ShardsByDistrict(ctx context.Context, districtID string) ([]Shard, error) {
	shards, err := s.repo.ListShards(ctx)
	if err != nil {
		return nil, err
	}
	if districtID == "" {
		return shards, nil
	}
	out := make([]Shard, 0)
	for _, sh := range shards {
		if sh.DistrictID == districtID {
			out = append(out, sh)
		}
	}
	return out, nil
}

// ShardsByCharacter lists the shards tied to one character, for the
// character profile view.
func (s *Service) ShardsByCharacter(ctx context.Context, characterID string) ([]Shard, error) {
	shards, err := s.repo.ListShards(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Shard, 0)
	for _, sh := range shards {
		if sh.CharacterID == characterID {
			out = append(out, sh)
		}
	}
	return out, nil
}
