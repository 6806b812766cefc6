package journal

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu         sync.RWMutex
	shards     map[string]Shard
	districts  map[string]District
	characters map[string]Character
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		shards:     map[string]Shard{},
		districts:  map[string]District{},
		characters: map[string]Character{},
	}
}

func (r *MemoryRepo) Seed(ctx context.Context, districts []District, characters []Character, shards []Shard) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range districts {
		r.districts[d.ID] = d
	}
	for _, c := range characters {
		r.characters[c.ID] = c
	}
	for _, s := range shards {
		r.shards[s.ID] = s
	}
	return nil
}

func (r *MemoryRepo) ListShards(ctx context.Context) ([]Shard, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Shard, 0, len(r.shards))
	for _, s := range r.shards {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out, nil
}

func (r *MemoryRepo) GetShard(ctx context.Context, id string) (Shard, bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.shards[id]
	return s, ok, nil
}

func (r *MemoryRepo) MarkDiscovered(ctx context.Context, id string, at time.Time) (Shard, bool, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shards[id]
	if !ok {
		return Shard{}, false, ErrShardNotFound
	}
	if s.DiscoveredAt != nil {
		return s, false, nil
	}
	t := at
	s.DiscoveredAt = &t
	r.shards[id] = s
	return s, true, nil
}

func (r *MemoryRepo) ListDistricts(ctx context.Context) ([]District, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]District, 0, len(r.districts))
	for _, d := range r.districts {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepo) ListCharacters(ctx context.Context) ([]Character, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Character, 0, len(r.characters))
	for _, c := range r.characters {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
