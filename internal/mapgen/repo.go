package mapgen

import (
	"context"
	"sync"
)

// Repo owns the layout. Whole-value Get/Set keeps readers from observing
// a half-applied repositioning pass.
type Repo interface {
	Get(ctx context.Context) (Layout, error)
	Set(ctx context.Context, l Layout) error
}

type MemoryRepo struct {
	mu sync.RWMutex
	l  Layout
}

func NewMemoryRepo(width, height float64) *MemoryRepo {
	return &MemoryRepo{l: Layout{Width: width, Height: height}}
}

func (r *MemoryRepo) Get(ctx context.Context) (Layout, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.l.clone(), nil
}

func (r *MemoryRepo) Set(ctx context.Context, l Layout) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.l = l.clone()
	return nil
}
