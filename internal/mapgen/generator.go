package mapgen

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"wanderfeast/internal/difficulty"
)

var ErrEmptyLayout = errors.New("mapgen: layout has no restaurants")

// Service is what the panel controller consumes. Both operations may
// fail; ForceReposition mutates the shared layout.
type Service interface {
	Stats(ctx context.Context) (Stats, error)
	ForceReposition(ctx context.Context) (Stats, error)
}

const placementAttempts = 64

// Generator owns placement and repositioning. It serializes
// ForceReposition behind its mutex, so overlapping requests queue up
// harmlessly instead of interleaving moves.
type Generator struct {
	mu   sync.Mutex
	repo Repo
	diff difficulty.Store
	rng  *rand.Rand
	log  zerolog.Logger
}

func NewGenerator(repo Repo, diff difficulty.Store, seed int64, log zerolog.Logger) *Generator {
	return &Generator{
		repo: repo,
		diff: diff,
		rng:  rand.New(rand.NewSource(seed)),
		log:  log.With().Str("component", "mapgen").Logger(),
	}
}

// Stats computes the current spacing snapshot. The target spacing is the
// difficulty config's minimum restaurant distance.
func (g *Generator) Stats(ctx context.Context) (Stats, error) {
	cfg, err := g.diff.Get(ctx)
	if err != nil {
		return Stats{}, err
	}
	l, err := g.repo.Get(ctx)
	if err != nil {
		return Stats{}, err
	}
	return computeStats(l, cfg.MinRestaurantDistance), nil
}

// Generate places the given restaurants on an empty map, trying to honor
// the configured minimum distance. Used at boot to seed the layout.
func (g *Generator) Generate(ctx context.Context, restaurants []Restaurant) error {
	cfg, err := g.diff.Get(ctx)
	if err != nil {
		return err
	}
	l, err := g.repo.Get(ctx)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	l.Restaurants = nil
	l.RepositionedCount = 0
	for _, r := range restaurants {
		r.X, r.Y = g.placeLocked(l, cfg.MinRestaurantDistance, r)
		l.Restaurants = append(l.Restaurants, r)
	}
	return g.repo.Set(ctx, l)
}

// ForceReposition moves the worst-spaced restaurants until either the
// configured percentage budget is spent or nothing is closer than the
// minimum distance. Moves are bounded by the walk budget so a relocated
// restaurant stays reachable within the travel-time target.
func (g *Generator) ForceReposition(ctx context.Context) (Stats, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	cfg, err := g.diff.Get(ctx)
	if err != nil {
		return Stats{}, err
	}
	l, err := g.repo.Get(ctx)
	if err != nil {
		return Stats{}, err
	}
	if len(l.Restaurants) == 0 {
		return Stats{}, ErrEmptyLayout
	}

	budget := int(math.Round(cfg.RepositionPercentage * float64(len(l.Restaurants))))
	moved := 0

	// Tightest restaurants first.
	order := make([]int, len(l.Restaurants))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return nearestNeighbour(l.Restaurants, order[a]) < nearestNeighbour(l.Restaurants, order[b])
	})

	for _, i := range order {
		if moved >= budget {
			break
		}
		if err := ctx.Err(); err != nil {
			return Stats{}, err
		}
		if nearestNeighbour(l.Restaurants, i) >= cfg.MinRestaurantDistance {
			break
		}
		if g.relocateLocked(&l, i, cfg) {
			moved++
		}
	}

	l.RepositionedCount = moved
	if err := g.repo.Set(ctx, l); err != nil {
		return Stats{}, err
	}

	stats := computeStats(l, cfg.MinRestaurantDistance)
	g.log.Info().
		Int("moved", moved).
		Int("total", stats.TotalRestaurants).
		Float64("average_spacing", stats.AverageSpacing).
		Msg("forced repositioning complete")
	return stats, nil
}

// relocateLocked tries random spots near the restaurant's current
// position, keeping the best candidate seen. Returns false when no try
// beat the current spot.
func (g *Generator) relocateLocked(l *Layout, i int, cfg difficulty.Config) bool {
	cur := l.Restaurants[i]
	radius := cfg.WalkBudget()
	bestX, bestY := cur.X, cur.Y
	bestDist := nearestNeighbour(l.Restaurants, i)

	for try := 0; try < placementAttempts; try++ {
		angle := g.rng.Float64() * 2 * math.Pi
		dist := g.rng.Float64() * radius
		cand := cur
		cand.X = clampCoord(cur.X+math.Cos(angle)*dist, l.Width)
		cand.Y = clampCoord(cur.Y+math.Sin(angle)*dist, l.Height)

		l.Restaurants[i] = cand
		d := nearestNeighbour(l.Restaurants, i)
		if d > bestDist {
			bestDist = d
			bestX, bestY = cand.X, cand.Y
			if d >= cfg.MinRestaurantDistance {
				break
			}
		}
	}

	l.Restaurants[i].X = bestX
	l.Restaurants[i].Y = bestY
	return bestX != cur.X || bestY != cur.Y
}

// placeLocked finds a spot for a new restaurant, preferring positions at
// least minDist away from everything already placed.
func (g *Generator) placeLocked(l Layout, minDist float64, r Restaurant) (float64, float64) {
	var x, y float64
	for try := 0; try < placementAttempts; try++ {
		x = g.rng.Float64() * l.Width
		y = g.rng.Float64() * l.Height

		ok := true
		for _, other := range l.Restaurants {
			if math.Hypot(other.X-x, other.Y-y) < minDist {
				ok = false
				break
			}
		}
		if ok {
			return x, y
		}
	}
	return x, y
}

func clampCoord(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
