// Package events provides the in-process event bus used for cross-module
// notifications such as catalog changes and recorded analytics events.
package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of event
type EventType string

// System-wide event types
const (
	// Catalog events
	EventContentCreated  EventType = "catalog.content.created"
	EventContentUpdated  EventType = "catalog.content.updated"
	EventContentDeleted  EventType = "catalog.content.deleted"
	EventSeasonCreated   EventType = "catalog.season.created"
	EventSeasonDeleted   EventType = "catalog.season.deleted"
	EventEpisodeCreated  EventType = "catalog.episode.created"
	EventUpcomingCreated EventType = "catalog.upcoming.created"
	EventUpcomingUpdated EventType = "catalog.upcoming.updated"
	EventUpcomingDeleted EventType = "catalog.upcoming.deleted"

	// Analytics events
	EventAnalyticsRecorded EventType = "analytics.event.recorded"

	// System events
	EventSystemStarted EventType = "system.started"
	EventSystemStopped EventType = "system.stopped"
)

// Event represents a system event
type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Source    string                 `json:"source"`
	Message   string                 `json:"message,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// EventHandler represents a function that handles events
type EventHandler func(event Event)

// NewEvent creates an event with a generated ID and current timestamp
func NewEvent(eventType EventType, source string, data map[string]interface{}) Event {
	return Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Source:    source,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}
