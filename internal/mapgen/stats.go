package mapgen

import "math"

// Stats is a derived snapshot of restaurant spacing. It is recomputed on
// demand and never cached; spacing figures are nearest-neighbour
// distances in pixels.
type Stats struct {
	TotalRestaurants  int     `json:"total_restaurants"`
	RepositionedCount int     `json:"repositioned_count"`
	AverageSpacing    float64 `json:"average_spacing"`
	MinSpacing        float64 `json:"min_spacing"`
	MaxSpacing        float64 `json:"max_spacing"`
	TargetSpacing     float64 `json:"target_spacing"`
}

// NeedsRepositioning reports whether the map is tighter than the target.
func (s Stats) NeedsRepositioning() bool {
	return s.TotalRestaurants > 1 && s.AverageSpacing < s.TargetSpacing
}

// Status is the label the panel shows next to the stats block.
func (s Stats) Status() string {
	if s.NeedsRepositioning() {
		return "Needs repositioning"
	}
	return "Spacing OK"
}

func distance(a, b Restaurant) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// nearestNeighbour returns the distance from rs[i] to its closest peer.
func nearestNeighbour(rs []Restaurant, i int) float64 {
	best := math.Inf(1)
	for j := range rs {
		if j == i {
			continue
		}
		if d := distance(rs[i], rs[j]); d < best {
			best = d
		}
	}
	return best
}

func computeStats(l Layout, target float64) Stats {
	s := Stats{
		TotalRestaurants:  len(l.Restaurants),
		RepositionedCount: l.RepositionedCount,
		TargetSpacing:     target,
	}
	if len(l.Restaurants) < 2 {
		return s
	}

	min, max, sum := math.Inf(1), 0.0, 0.0
	for i := range l.Restaurants {
		d := nearestNeighbour(l.Restaurants, i)
		sum += d
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	s.AverageSpacing = sum / float64(len(l.Restaurants))
	s.MinSpacing = min
	s.MaxSpacing = max
	return s
}
