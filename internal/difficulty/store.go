package difficulty

import (
	"context"
	"sync"
)

// Store is the shared difficulty configuration service. Implementations
// must clamp on write and hand back the value they now hold, so a caller
// reading after ApplyPreset sees exactly the preset's values.
type Store interface {
	Get(ctx context.Context) (Config, error)
	Update(ctx context.Context, cfg Config) (Config, error)
	ApplyPreset(ctx context.Context, p Preset) (Config, error)
}

// MemoryStore keeps the configuration in memory for the process lifetime.
type MemoryStore struct {
	mu  sync.RWMutex
	cfg Config
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cfg: Default()}
}

// NewMemoryStoreWith starts from a specific configuration (clamped).
func NewMemoryStoreWith(cfg Config) *MemoryStore {
	return &MemoryStore{cfg: cfg.Clamp()}
}

func (s *MemoryStore) Get(ctx context.Context) (Config, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg, nil
}

func (s *MemoryStore) Update(ctx context.Context, cfg Config) (Config, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg.Clamp()
	return s.cfg, nil
}

func (s *MemoryStore) ApplyPreset(ctx context.Context, p Preset) (Config, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = p.Config()
	return s.cfg, nil
}
