package mapgen

// Restaurant is a visitable spot on the city map. Positions are in map
// pixels with the origin at the top-left corner.
type Restaurant struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	DistrictID string  `json:"district_id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
}

// Layout is the whole spatial state of the map. It is read and replaced
// as a unit; callers never mutate a Layout they were handed.
type Layout struct {
	Width             float64      `json:"width"`
	Height            float64      `json:"height"`
	Restaurants       []Restaurant `json:"restaurants"`
	RepositionedCount int          `json:"repositioned_count"` // moved by the last forced repositioning
}

func (l Layout) clone() Layout {
	out := l
	out.Restaurants = make([]Restaurant, len(l.Restaurants))
	copy(out.Restaurants, l.Restaurants)
	return out
}
