package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period               string            `json:"period"`
	EventCounts          map[EventType]int `json:"event_counts"`
	ShardsDiscovered     int               `json:"shards_discovered"`
	PanelOpens           int               `json:"panel_opens"`
	RepositionAttempts   int               `json:"reposition_attempts"`
	RepositionSuccesses  int               `json:"reposition_successes"`
	RepositionFailures   int               `json:"reposition_failures"`
	RepositionSuccessPct float64           `json:"reposition_success_pct"`
	PresetUsage          map[string]int    `json:"preset_usage"`
}

// CalculateStats aggregates balance stats from the raw event log.
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:      since.Format("2006-01-02"),
		EventCounts: make(map[EventType]int),
		PresetUsage: make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventShardDiscovered:
			stats.ShardsDiscovered++
		case EventPanelOpened:
			stats.PanelOpens++
		case EventRepositionStarted:
			stats.RepositionAttempts++
		case EventRepositionDone:
			stats.RepositionSuccesses++
		case EventRepositionFailed:
			stats.RepositionFailures++
		case EventPresetApplied:
			if preset, ok := metadata["preset"].(string); ok {
				stats.PresetUsage[preset]++
			}
		}
	}

	if stats.RepositionAttempts > 0 {
		stats.RepositionSuccessPct = float64(stats.RepositionSuccesses) / float64(stats.RepositionAttempts) * 100
	}
	return stats, nil
}
