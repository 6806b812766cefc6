package journal

import "time"

// Shard is a memory shard: a discoverable narrative fragment the player
// collects while exploring. Seq orders shards on the timeline.
type Shard struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Body         string     `json:"body"`
	DistrictID   string     `json:"district_id"`
	CharacterID  string     `json:"character_id,omitempty"`
	Seq          int        `json:"seq"`
	DiscoveredAt *time.Time `json:"discovered_at,omitempty"`
}

func (s Shard) Discovered() bool { return s.DiscoveredAt != nil }

// District is a named region of the city.
type District struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Mood        string `json:"mood"`
}

// Character is a profile unlocked through that character's shards.
type Character struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
	Bio  string `json:"bio"`
}

// Progress summarizes discovery state for the journal header.
type Progress struct {
	Discovered int     `json:"discovered"`
	Total      int     `json:"total"`
	Percent    float64 `json:"percent"`
}

// TimelineEntry is a discovered shard in narrative order.
type TimelineEntry struct {
	Seq          int       `json:"seq"`
	ShardID      string    `json:"shard_id"`
	Title        string    `json:"title"`
	DiscoveredAt time.Time `json:"discovered_at"`
}

// Discovery is the receipt handed back when a shard is first discovered.
type Discovery struct {
	ID      string    `json:"id"`
	ShardID string    `json:"shard_id"`
	At      time.Time `json:"at"`
	Repeat  bool      `json:"repeat"` // shard was already discovered
}
