package mapgen

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileRepo persists the layout as JSON so a restart keeps restaurant
// positions and the reposition counter.
type FileRepo struct {
	mu   sync.RWMutex
	path string
	l    Layout
}

func NewFileRepo(dataDir string, width, height float64) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	r := &FileRepo{
		path: filepath.Join(dataDir, "layout.json"),
		l:    Layout{Width: width, Height: height},
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileRepo) load() error {
	b, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	var l Layout
	if err := json.Unmarshal(b, &l); err != nil {
		return err
	}
	if l.Width > 0 && l.Height > 0 {
		r.l = l
	}
	return nil
}

func (r *FileRepo) saveLocked() error {
	b, err := json.MarshalIndent(r.l, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}

func (r *FileRepo) Get(ctx context.Context) (Layout, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.l.clone(), nil
}

func (r *FileRepo) Set(ctx context.Context, l Layout) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.l = l.clone()
	return r.saveLocked()
}
