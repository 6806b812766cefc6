package telemetry

import "time"

type EventType string

const (
	EventPanelOpened       EventType = "panel_opened"
	EventPresetApplied     EventType = "preset_applied"
	EventConfigUpdated     EventType = "config_updated"
	EventRepositionStarted EventType = "reposition_started"
	EventRepositionDone    EventType = "reposition_done"
	EventRepositionFailed  EventType = "reposition_failed"
	EventShardDiscovered   EventType = "shard_discovered"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
