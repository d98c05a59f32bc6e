package kafka

import (
	"time"

	"github.com/google/uuid"
)

// Entities whose changes are published.
const (
	EntityCategory = "category"
	EntityUnit     = "unit"
	EntityItem     = "item"
)

// Change actions.
const (
	ActionUpserted = "upserted"
	ActionUpdated  = "updated"
	ActionDeleted  = "deleted"
)

// Kafka topics
const (
	TopicInventoryChanges = "inventory-changes"
)

// ChangeEvent describes a committed mutation of a category, unit or item.
type ChangeEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Entity    string    `json:"entity"`
	EntityID  uint      `json:"entity_id"`
	Name      string    `json:"name"`
	Actor     string    `json:"actor,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// EventType joins entity and action, e.g. "item.deleted".
func EventType(entity, action string) string {
	return entity + "." + action
}

// EventTypes lists every event type the service emits.
func EventTypes() []string {
	var types []string
	for _, entity := range []string{EntityCategory, EntityUnit, EntityItem} {
		for _, action := range []string{ActionUpserted, ActionUpdated, ActionDeleted} {
			types = append(types, EventType(entity, action))
		}
	}
	return types
}

// NewChangeEvent stamps a change with a fresh id and the current time.
func NewChangeEvent(entity, action string, id uint, name, actor string) ChangeEvent {
	return ChangeEvent{
		EventID:   uuid.NewString(),
		EventType: EventType(entity, action),
		Entity:    entity,
		EntityID:  id,
		Name:      name,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
	}
}
