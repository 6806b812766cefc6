package journal

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

type fileState struct {
	Shards     map[string]Shard     `json:"shards"`
	Districts  map[string]District  `json:"districts"`
	Characters map[string]Character `json:"characters"`
}

func newFileState() fileState {
	return fileState{
		Shards:     map[string]Shard{},
		Districts:  map[string]District{},
		Characters: map[string]Character{},
	}
}

// FileRepo persists the journal as JSON so discoveries survive restarts.
type FileRepo struct {
	mu   sync.RWMutex
	path string
	s    fileState
}

func NewFileRepo(dataDir string) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	r := &FileRepo{
		path: filepath.Join(dataDir, "journal.json"),
		s:    newFileState(),
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileRepo) load() error {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var loaded fileState
	if err := json.Unmarshal(b, &loaded); err != nil {
		return err
	}
	if loaded.Shards == nil {
		loaded.Shards = map[string]Shard{}
	}
	if loaded.Districts == nil {
		loaded.Districts = map[string]District{}
	}
	if loaded.Characters == nil {
		loaded.Characters = map[string]Character{}
	}
	r.s = loaded
	return nil
}

func (r *FileRepo) saveLocked() error {
	b, err := json.MarshalIndent(r.s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}

// Seed inserts records that are not present yet; existing shards keep
// their discovery timestamps.
func (r *FileRepo) Seed(ctx context.Context, districts []District, characters []Character, shards []Shard) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range districts {
		r.s.Districts[d.ID] = d
	}
	for _, c := range characters {
		r.s.Characters[c.ID] = c
	}
	for _, s := range shards {
		if _, ok := r.s.Shards[s.ID]; !ok {
			r.s.Shards[s.ID] = s
		}
	}
	return r.saveLocked()
}

func (r *FileRepo) ListShards(ctx context.Context) ([]Shard, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Shard, 0, len(r.s.Shards))
	for _, s := range r.s.Shards {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out, nil
}

func (r *FileRepo) GetShard(ctx context.Context, id string) (Shard, bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.s.Shards[id]
	return s, ok, nil
}

func (r *FileRepo) MarkDiscovered(ctx context.Context, id string, at time.Time) (Shard, bool, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.s.Shards[id]
	if !ok {
		return Shard{}, false, ErrShardNotFound
	}
	if s.DiscoveredAt != nil {
		return s, false, nil
	}
	t := at
	s.DiscoveredAt = &t
	r.s.Shards[id] = s
	if err := r.saveLocked(); err != nil {
		return Shard{}, false, err
	}
	return s, true, nil
}

func (r *FileRepo) ListDistricts(ctx context.Context) ([]District, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]District, 0, len(r.s.Districts))
	for _, d := range r.s.Districts {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *FileRepo) ListCharacters(ctx context.Context) ([]Character, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Character, 0, len(r.s.Characters))
	for _, c := range r.s.Characters {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
