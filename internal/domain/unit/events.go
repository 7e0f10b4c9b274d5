package unit

import "time"

// DomainEvent is an observable fact about a unit, appended to the event
// log by the application layer.
type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}
