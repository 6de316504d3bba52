// Package events publishes domain events about budget and objective changes
// after the database transaction that produced them has committed.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// Event types. The type doubles as the AMQP routing key.
const (
	TypeBudgetUpserted     = "budget.upserted"
	TypeBudgetDeleted      = "budget.deleted"
	TypeBudgetsCopied      = "budgets.copied"
	TypeObjectiveCreated   = "objective.created"
	TypeObjectiveUpdated   = "objective.updated"
	TypeObjectiveCompleted = "objective.completed"
	TypeObjectiveArchived  = "objective.archived"
)

// Event is a lightweight notification. Consumers fetch current state from
// the API rather than trusting the payload as a snapshot.
type Event struct {
	Type        string    `json:"type"`
	UserID      string    `json:"user_id"`
	ObjectiveID string    `json:"objective_id,omitempty"`
	CategoryID  string    `json:"category_id,omitempty"`
	Month       string    `json:"month,omitempty"`
	SourceMonth string    `json:"source_month,omitempty"`
	Count       int64     `json:"count,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// New stamps an event of the given type for userID.
func New(eventType, userID string) Event {
	return Event{Type: eventType, UserID: userID, OccurredAt: time.Now().UTC()}
}

// ToJSON encodes the event body.
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// FromJSON decodes an event body.
func FromJSON(data []byte) (Event, error) {
	var e Event
	err := json.Unmarshal(data, &e)
	return e, err
}

// Publisher delivers events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(context.Context, Event) error { return nil }

// Close implements Publisher.
func (NopPublisher) Close() error { return nil }
