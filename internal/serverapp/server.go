// Package serverapp assembles the HTTP surface: stores, services,
// handlers, routes and middleware.
package serverapp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"wanderfeast/internal/config"
	"wanderfeast/internal/difficulty"
	"wanderfeast/internal/game"
	"wanderfeast/internal/httpmw"
	"wanderfeast/internal/journal"
	"wanderfeast/internal/mapgen"
	"wanderfeast/internal/panel"
	"wanderfeast/internal/reload"
	"wanderfeast/internal/server"
	"wanderfeast/internal/telemetry"
	staticfiles "wanderfeast/static"
)

type Options struct {
	Config        *config.Config
	StaticDir     string
	UseDiskStatic bool
	Logger        zerolog.Logger
	Clock         game.Clock
}

// App bundles the handler with the pieces main needs for seeding and
// shutdown.
type App struct {
	Handler   http.Handler
	Panel     *panel.Controller
	Generator *mapgen.Generator
	Journal   *journal.Service
	Bus       *reload.Bus

	mapRepo     mapgen.Repo
	journalRepo journal.Repo
	restaurants int
}

// Shutdown stops background work. Safe to call more than once.
func (a *App) Shutdown() {
	a.Panel.Shutdown()
}

func New(opts Options) (*App, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if strings.TrimSpace(opts.StaticDir) == "" {
		opts.StaticDir = "static"
	}
	if opts.Clock == nil {
		opts.Clock = game.RealClock{}
	}
	cfg := opts.Config
	log := opts.Logger

	diffSeed, err := cfg.DifficultySeed()
	if err != nil {
		return nil, err
	}

	var diffStore difficulty.Store
	var mapRepo mapgen.Repo
	var journalRepo journal.Repo
	if cfg.Data.Persist {
		fs, err := difficulty.NewFileStore(cfg.Data.Dir)
		if err != nil {
			return nil, fmt.Errorf("difficulty store: %w", err)
		}
		diffStore = fs
		mr, err := mapgen.NewFileRepo(cfg.Data.Dir, cfg.Map.Width, cfg.Map.Height)
		if err != nil {
			return nil, fmt.Errorf("map repo: %w", err)
		}
		mapRepo = mr
		jr, err := journal.NewFileRepo(cfg.Data.Dir)
		if err != nil {
			return nil, fmt.Errorf("journal repo: %w", err)
		}
		journalRepo = jr
	} else {
		diffStore = difficulty.NewMemoryStoreWith(diffSeed)
		mapRepo = mapgen.NewMemoryRepo(cfg.Map.Width, cfg.Map.Height)
		journalRepo = journal.NewMemoryRepo()
	}

	telemRepo := telemetry.NewMemoryRepository(opts.Clock)
	bus := reload.NewBus()
	generator := mapgen.NewGenerator(mapRepo, diffStore, cfg.Map.Seed, log)
	controller := panel.NewController(diffStore, generator, bus, opts.Clock, telemRepo, log)
	journalSvc := journal.NewService(journalRepo, opts.Clock, telemRepo, log)

	mux := http.NewServeMux()
	rr := &server.RouteRegistry{}

	staticHandler := http.FileServer(http.FS(staticfiles.EmbeddedFS()))
	if opts.UseDiskStatic {
		staticHandler = http.FileServer(http.Dir(opts.StaticDir))
	}
	mux.Handle("/static/", http.StripPrefix("/static/", staticHandler))
	mux.Handle("/", staticHandler)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "wanderfeast",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if _, err := diffStore.Get(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "difficulty storage unavailable",
			})
			return
		}
		if _, err := mapRepo.Get(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "layout storage unavailable",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "wanderfeast",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	diffHandler := difficulty.NewHandler(diffStore, log)
	server.Handle(mux, rr, "GET /api/difficulty", "Current difficulty configuration", "", diffHandler.Root)
	server.Handle(mux, rr, "PATCH /api/difficulty", "Update one or more difficulty fields", `{"travel_time_target": 90}`, diffHandler.Root)
	server.Handle(mux, rr, "POST /api/difficulty/preset", "Apply a named preset", `{"preset": "hard"}`, diffHandler.ApplyPreset)

	mapHandler := mapgen.NewHandler(mapRepo, generator)
	server.Handle(mux, rr, "GET /api/map/layout", "Current restaurant layout", "", mapHandler.Layout)
	server.Handle(mux, rr, "GET /api/map/stats", "Spacing statistics for the layout", "", mapHandler.Stats)
	server.Handle(mux, rr, "POST /api/map/reposition", "Force a repositioning pass", "", mapHandler.Reposition)

	panelHandler := panel.NewHandler(controller)
	server.Handle(mux, rr, "GET /api/panel", "Panel snapshot", "", panelHandler.Root)
	server.Handle(mux, rr, "POST /api/panel/open", "Open the tuning panel", "", panelHandler.Open)
	server.Handle(mux, rr, "POST /api/panel/close", "Close the tuning panel", "", panelHandler.Close)
	server.Handle(mux, rr, "POST /api/panel/reposition", "Run the panel repositioning workflow", "", panelHandler.Reposition)
	server.Handle(mux, rr, "PATCH /api/panel/config", "Update difficulty through the panel", `{"player_speed": 120}`, panelHandler.Config)
	server.Handle(mux, rr, "POST /api/panel/preset", "Apply a preset through the panel", `{"preset": "easy"}`, panelHandler.Preset)

	journalHandler := journal.NewHandler(journalSvc, journalRepo)
	server.Handle(mux, rr, "GET /api/journal/shards", "Shards, optionally filtered by district", "", journalHandler.Shards)
	mux.HandleFunc("POST /api/journal/shards/", journalHandler.Shards)
	rr.Add(server.RouteDoc{Method: "POST", Pattern: "/api/journal/shards/{id}/discover", Summary: "Mark a shard discovered"})
	server.Handle(mux, rr, "GET /api/journal/districts", "Districts of the city", "", journalHandler.Districts)
	server.Handle(mux, rr, "GET /api/journal/characters", "Character profiles", "", journalHandler.Characters)
	server.Handle(mux, rr, "GET /api/journal/progress", "Discovery progress", "", journalHandler.Progress)
	server.Handle(mux, rr, "GET /api/journal/timeline", "Discovered shards in narrative order", "", journalHandler.Timeline)
	server.Handle(mux, rr, "GET /api/journal/search", "Search discovered shards", "", journalHandler.Search)

	telemHandler := telemetry.NewHandler(telemRepo)
	server.Handle(mux, rr, "GET /api/telemetry/stats", "Aggregated gameplay telemetry", "", telemHandler.Stats)

	server.Handle(mux, rr, "GET /api/events", "Server-sent reload signals", "", sseHandler(bus, log))

	mux.HandleFunc("GET /api/config", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})

	server.RegisterAdminUI(mux, rr, cfg.Server.Addr)

	handler := httpmw.Chain(
		mux,
		httpmw.WithAccessLog(log),
		httpmw.WithRequestID,
		httpmw.WithRecover(log),
	)

	return &App{
		Handler:     handler,
		Panel:       controller,
		Generator:   generator,
		Journal:     journalSvc,
		Bus:         bus,
		mapRepo:     mapRepo,
		journalRepo: journalRepo,
		restaurants: cfg.Map.Restaurants,
	}, nil
}

// SeedIfEmpty fills the layout and journal with the shipped content when
// the stores start out blank. Existing data (a persisted layout, earlier
// discoveries) is left alone.
func (a *App) SeedIfEmpty(ctx context.Context) error {
	l, err := a.mapRepo.Get(ctx)
	if err != nil {
		return err
	}
	if len(l.Restaurants) == 0 {
		seed := mapgen.SeedRestaurants()
		if n := a.restaurants; n > 0 && n < len(seed) {
			seed = seed[:n]
		}
		if err := a.Generator.Generate(ctx, seed); err != nil {
			return fmt.Errorf("seed layout: %w", err)
		}
	}
	if err := a.journalRepo.Seed(ctx, journal.SeedDistricts(), journal.SeedCharacters(), journal.SeedShards()); err != nil {
		return fmt.Errorf("seed journal: %w", err)
	}
	return nil
}

// sseHandler streams reload signals as server-sent events. The browser
// listens here and refreshes the map when a repositioning lands.
func sseHandler(bus *reload.Bus, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		ch, cancel := bus.Subscribe()
		defer cancel()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		keepalive := time.NewTicker(25 * time.Second)
		defer keepalive.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case <-keepalive.C:
				fmt.Fprint(w, ": keepalive\n\n")
				flusher.Flush()
			case sig := <-ch:
				b, err := json.Marshal(sig)
				if err != nil {
					log.Warn().Err(err).Msg("encode reload signal")
					continue
				}
				fmt.Fprintf(w, "event: reload\ndata: %s\n\n", b)
				flusher.Flush()
			}
		}
	}
}

// UseDiskStaticByEnv lets developers serve static files from disk
// instead of the embedded copies.
func UseDiskStaticByEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("WANDERFEAST_DEV_STATIC"))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
