package difficulty

import (
	"fmt"
	"math"
)

// Declared ranges for every tunable. The store never persists a value
// outside these; Clamp is applied on every write path.
const (
	MinTravelTimeTarget = 30.0  // seconds
	MaxTravelTimeTarget = 300.0 // seconds

	MinRestaurantDistanceFloor = 100.0 // pixels
	MinRestaurantDistanceCeil  = 500.0 // pixels

	MinPlayerSpeed = 50.0  // pixels/second
	MaxPlayerSpeed = 300.0 // pixels/second
)

// Config holds the tunable pacing parameters for map generation.
// RepositionPercentage is stored as a fraction in [0,1]; the panel
// displays it multiplied by 100.
type Config struct {
	TravelTimeTarget      float64 `yaml:"travel_time_target" json:"travel_time_target"`
	MinRestaurantDistance float64 `yaml:"min_restaurant_distance" json:"min_restaurant_distance"`
	RepositionPercentage  float64 `yaml:"reposition_percentage" json:"reposition_percentage"`
	PlayerSpeed           float64 `yaml:"player_speed" json:"player_speed"`
}

// Clamp returns a copy of c with every field forced into its declared range.
func (c Config) Clamp() Config {
	c.TravelTimeTarget = clamp(c.TravelTimeTarget, MinTravelTimeTarget, MaxTravelTimeTarget)
	c.MinRestaurantDistance = clamp(c.MinRestaurantDistance, MinRestaurantDistanceFloor, MinRestaurantDistanceCeil)
	c.RepositionPercentage = clamp(c.RepositionPercentage, 0, 1)
	c.PlayerSpeed = clamp(c.PlayerSpeed, MinPlayerSpeed, MaxPlayerSpeed)
	return c
}

// WalkBudget is the distance a player covers in one travel-time target.
func (c Config) WalkBudget() float64 {
	return c.PlayerSpeed * c.TravelTimeTarget
}

// RepositionPercentDisplay renders the stored fraction the way the panel
// shows it: multiplied by 100 and rounded (0.25 => "25%").
func (c Config) RepositionPercentDisplay() string {
	return fmt.Sprintf("%d%%", int(math.Round(c.RepositionPercentage*100)))
}

// Patch is a partial update. nil pointer => "no change".
type Patch struct {
	TravelTimeTarget      *float64 `json:"travel_time_target,omitempty"`
	MinRestaurantDistance *float64 `json:"min_restaurant_distance,omitempty"`
	RepositionPercentage  *float64 `json:"reposition_percentage,omitempty"`
	PlayerSpeed           *float64 `json:"player_speed,omitempty"`
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.TravelTimeTarget == nil &&
		p.MinRestaurantDistance == nil &&
		p.RepositionPercentage == nil &&
		p.PlayerSpeed == nil
}

// Apply merges the patch into c and returns the clamped result. c itself
// is never mutated; callers always get a fresh value.
func (p Patch) Apply(c Config) Config {
	if p.TravelTimeTarget != nil {
		c.TravelTimeTarget = *p.TravelTimeTarget
	}
	if p.MinRestaurantDistance != nil {
		c.MinRestaurantDistance = *p.MinRestaurantDistance
	}
	if p.RepositionPercentage != nil {
		c.RepositionPercentage = *p.RepositionPercentage
	}
	if p.PlayerSpeed != nil {
		c.PlayerSpeed = *p.PlayerSpeed
	}
	return c.Clamp()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
