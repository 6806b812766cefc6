package difficulty

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

type fileState struct {
	Config Config `json:"config"`
	Preset Preset `json:"preset,omitempty"`
}

// FileStore persists the difficulty configuration as JSON under the data
// directory, surviving server restarts.
type FileStore struct {
	mu   sync.RWMutex
	path string
	s    fileState
}

func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	st := &FileStore{
		path: filepath.Join(dataDir, "difficulty.json"),
		s:    fileState{Config: Default(), Preset: PresetNormal},
	}
	if err := st.load(); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *FileStore) load() error {
	b, err := os.ReadFile(s.path)
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
	loaded.Config = loaded.Config.Clamp()
	s.s = loaded
	return nil
}

func (s *FileStore) saveLocked() error {
	b, err := json.MarshalIndent(s.s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644)
}

func (s *FileStore) Get(ctx context.Context) (Config, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.s.Config, nil
}

func (s *FileStore) Update(ctx context.Context, cfg Config) (Config, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.Config = cfg.Clamp()
	s.s.Preset = "" // manual edit, no longer a named preset
	if err := s.saveLocked(); err != nil {
		return Config{}, err
	}
	return s.s.Config, nil
}

func (s *FileStore) ApplyPreset(ctx context.Context, p Preset) (Config, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.Config = p.Config()
	s.s.Preset = p
	if err := s.saveLocked(); err != nil {
		return Config{}, err
	}
	return s.s.Config, nil
}
