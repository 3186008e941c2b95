// Package events keeps an append-only audit trail of ledger changes.
package events

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Event types written by the services
const (
	TypeGroupCreated       = "group.created"
	TypeGroupArchived      = "group.archived"
	TypeMemberJoined       = "group.member_joined"
	TypeExpenseCreated     = "expense.created"
	TypeExpenseDeleted     = "expense.deleted"
	TypeSettlementRecorded = "settlement.recorded"
)

type Event struct {
	ID        uuid.UUID         `json:"id"`
	Type      string            `json:"event_type"`
	Data      any               `json:"event_data,omitempty"`
	Metadata  map[string]string `json:"event_metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

type EventOption func(*Event)

func WithType(eventType string) EventOption {
	return func(e *Event) {
		e.Type = eventType
	}
}

func WithData(data any) EventOption {
	return func(e *Event) {
		e.Data = data
	}
}

// WithActor records the user that caused the event
func WithActor(userID int64) EventOption {
	return withMeta("actor_id", strconv.FormatInt(userID, 10))
}

// WithGroup records the group the event belongs to
func WithGroup(groupID int64) EventOption {
	return withMeta("group_id", strconv.FormatInt(groupID, 10))
}

func withMeta(key, value string) EventOption {
	return func(e *Event) {
		e.Metadata[key] = value
	}
}

func NewEvent(opts ...EventOption) Event {
	e := Event{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Metadata:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Store persists events
type Store interface {
	Save(ctx context.Context, e Event) error
	List(ctx context.Context, eventType string, limit int) ([]Event, error)
}

// Logger accepts events without blocking the caller
type Logger interface {
	Log(e Event)
}

type discard struct{}

func (discard) Log(Event) {}

// Discard is a Logger that drops every event
var Discard Logger = discard{}
