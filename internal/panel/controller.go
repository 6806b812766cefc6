// Package panel coordinates the difficulty-tuning workflow: it mediates
// between user input, the difficulty store, and the map generation
// service, and owns nothing but its own UI state.
package panel

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"wanderfeast/internal/difficulty"
	"wanderfeast/internal/game"
	"wanderfeast/internal/mapgen"
	"wanderfeast/internal/metrics"
	"wanderfeast/internal/reload"
	"wanderfeast/internal/telemetry"
)

// State is the panel's local UI state.
type State string

const (
	StateHidden  State = "hidden"
	StateIdle    State = "idle"    // visible, ready
	StateLoading State = "loading" // visible, repositioning in flight
)

var (
	// ErrPanelHidden: reposition was requested while the panel is closed.
	ErrPanelHidden = errors.New("panel: not open")
	// ErrRepositionInFlight: only one repositioning workflow runs at a time.
	ErrRepositionInFlight = errors.New("panel: repositioning already in flight")
	// ErrRepositioningFailed wraps map service failures; no reload signal
	// is published when this is returned.
	ErrRepositioningFailed = errors.New("panel: forced repositioning failed")
	// ErrStatsUnavailable classifies stats fetch failures. Recovered
	// inside LoadStats; callers never see it.
	ErrStatsUnavailable = errors.New("panel: stats unavailable")
)

// Controller sequences the tuning workflow. All methods are safe for
// concurrent use; the UI state machine lives behind the mutex.
type Controller struct {
	store difficulty.Store
	maps  mapgen.Service
	bus   *reload.Bus
	clock game.Clock
	telem telemetry.Repository
	log   zerolog.Logger

	// lifetime bounds the fire-and-forget stats loads issued on Open, so
	// Shutdown can cancel them deterministically.
	lifetime context.Context
	shutdown context.CancelFunc
	loads    sync.WaitGroup

	mu      sync.Mutex
	state   State
	stats   *mapgen.Stats
	working difficulty.Config
}

func NewController(store difficulty.Store, maps mapgen.Service, bus *reload.Bus, clock game.Clock, telem telemetry.Repository, log zerolog.Logger) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		store:    store,
		maps:     maps,
		bus:      bus,
		clock:    clock,
		telem:    telem,
		log:      log.With().Str("component", "panel").Logger(),
		lifetime: ctx,
		shutdown: cancel,
		state:    StateHidden,
		working:  difficulty.Default(),
	}
}

// Shutdown cancels any in-flight stats load and waits for it to drain.
func (c *Controller) Shutdown() {
	c.shutdown()
	c.loads.Wait()
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Stats returns the last fetched snapshot, if any.
func (c *Controller) Stats() (mapgen.Stats, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stats == nil {
		return mapgen.Stats{}, false
	}
	return *c.stats, true
}

// Config returns the panel's working copy of the difficulty config.
func (c *Controller) Config() difficulty.Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.working
}

// Open transitions Hidden -> Idle, refreshes the working config from the
// store, and fires an async stats fetch. The fetch is fire-and-forget:
// its failure only means the stats block stays empty.
func (c *Controller) Open(ctx context.Context) error {
	cfg, err := c.store.Get(ctx)
	if err != nil {
		return fmt.Errorf("read difficulty config: %w", err)
	}

	c.mu.Lock()
	if c.state != StateHidden {
		c.mu.Unlock()
		return nil
	}
	c.state = StateIdle
	c.working = cfg
	c.mu.Unlock()

	_ = c.telem.RecordEvent(telemetry.EventPanelOpened, nil)

	c.loads.Add(1)
	go func() {
		defer c.loads.Done()
		c.LoadStats(c.lifetime)
	}()
	return nil
}

// Close hides the panel from any visible state.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateHidden
}

// LoadStats fetches the current repositioning stats. It never fails the
// caller: on error the previous snapshot (or its absence) is kept and a
// warning is logged.
func (c *Controller) LoadStats(ctx context.Context) {
	stats, err := c.maps.Stats(ctx)
	if err != nil {
		c.log.Warn().Err(fmt.Errorf("%w: %v", ErrStatsUnavailable, err)).Msg("keeping previous stats")
		return
	}
	c.mu.Lock()
	c.stats = &stats
	c.mu.Unlock()
}

// ForceReposition runs the repositioning workflow: loading on, invoke the
// map service, refresh stats, publish exactly one reload signal on
// success. On failure nothing is published and the error is reported —
// the panel never claims success it cannot back up. Loading is cleared on
// every path.
func (c *Controller) ForceReposition(ctx context.Context) error {
	c.mu.Lock()
	switch c.state {
	case StateHidden:
		c.mu.Unlock()
		return ErrPanelHidden
	case StateLoading:
		c.mu.Unlock()
		return ErrRepositionInFlight
	}
	c.state = StateLoading
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		if c.state == StateLoading {
			c.state = StateIdle
		}
		c.mu.Unlock()
	}()

	_ = c.telem.RecordEvent(telemetry.EventRepositionStarted, nil)
	timer := c.clock.Now()

	stats, err := c.maps.ForceReposition(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("forced repositioning failed")
		metrics.RepositionTotal.WithLabelValues("failure").Inc()
		_ = c.telem.RecordEvent(telemetry.EventRepositionFailed, telemetry.EventMetadata{"error": err.Error()})
		return fmt.Errorf("%w: %v", ErrRepositioningFailed, err)
	}

	c.mu.Lock()
	c.stats = &stats
	c.mu.Unlock()

	// Re-fetch so the displayed snapshot reflects whatever else changed
	// while the layout mutation ran.
	c.LoadStats(ctx)

	metrics.RepositionTotal.WithLabelValues("success").Inc()
	metrics.RepositionDuration.Observe(c.clock.Now().Sub(timer).Seconds())
	_ = c.telem.RecordEvent(telemetry.EventRepositionDone, telemetry.EventMetadata{"moved": stats.RepositionedCount})

	// The layout changed under every other view of the world; tell the
	// host to resynchronize. Exactly once, and only on success.
	c.bus.Publish(reload.Signal{Reason: "layout_invalidated", At: c.clock.Now()})
	return nil
}

// UpdateConfig merges one or more changed fields into the working copy
// and forwards the complete merged config to the store. The working copy
// is replaced, never mutated in place.
func (c *Controller) UpdateConfig(ctx context.Context, p difficulty.Patch) (difficulty.Config, error) {
	c.mu.Lock()
	merged := p.Apply(c.working)
	c.mu.Unlock()

	stored, err := c.store.Update(ctx, merged)
	if err != nil {
		return difficulty.Config{}, fmt.Errorf("update difficulty config: %w", err)
	}

	c.mu.Lock()
	c.working = stored
	c.mu.Unlock()

	_ = c.telem.RecordEvent(telemetry.EventConfigUpdated, nil)
	return stored, nil
}

// ApplyPreset replaces the whole config with the named preset, then reads
// the store back so the working copy is exactly what the store now holds.
func (c *Controller) ApplyPreset(ctx context.Context, p difficulty.Preset) (difficulty.Config, error) {
	if _, err := c.store.ApplyPreset(ctx, p); err != nil {
		return difficulty.Config{}, fmt.Errorf("apply preset %s: %w", p, err)
	}
	cfg, err := c.store.Get(ctx)
	if err != nil {
		return difficulty.Config{}, fmt.Errorf("read back preset %s: %w", p, err)
	}

	c.mu.Lock()
	c.working = cfg
	c.mu.Unlock()

	metrics.PresetApplied.WithLabelValues(string(p)).Inc()
	_ = c.telem.RecordEvent(telemetry.EventPresetApplied, telemetry.EventMetadata{"preset": string(p)})
	return cfg, nil
}

// Snapshot is what the HTTP layer renders for GET /api/panel.
type Snapshot struct {
	State          State             `json:"state"`
	Loading        bool              `json:"loading"`
	Config         difficulty.Config `json:"config"`
	PercentDisplay string            `json:"reposition_percent_display"`
	Stats          *mapgen.Stats     `json:"stats,omitempty"`
	Status         string            `json:"status,omitempty"`
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		State:          c.state,
		Loading:        c.state == StateLoading,
		Config:         c.working,
		PercentDisplay: c.working.RepositionPercentDisplay(),
	}
	if c.stats != nil {
		s := *c.stats
		snap.Stats = &s
		snap.Status = s.Status()
	}
	return snap
}
