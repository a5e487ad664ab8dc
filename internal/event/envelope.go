package event

import (
	"time"

	"github.com/google/uuid"
)

// EventType discriminator for event payloads
type EventType int32

const (
	EventTypeUnknown EventType = iota
	EventTypePoolBound
	EventTypeFundRequested
	EventTypeDefundRequested
	EventTypePositionChanged
)

func (t EventType) String() string {
	switch t {
	case EventTypePoolBound:
		return "pool_bound"
	case EventTypeFundRequested:
		return "fund_requested"
	case EventTypeDefundRequested:
		return "defund_requested"
	case EventTypePositionChanged:
		return "position_changed"
	default:
		return "unknown"
	}
}

// EventEnvelope wraps every event in the log
type EventEnvelope struct {
	// Global monotonic sequence assigned by core
	Sequence int64

	// Stable idempotency key from upstream
	IdempotencyKey string

	// Event type discriminator
	EventType EventType

	// Pool context (nullable for global events)
	PoolID *uuid.UUID

	// Versioned input timestamp (NOT wall-clock)
	Timestamp time.Time

	// Upstream sequence for ordering validation
	SourceSequence int64

	// JSON-encoded event-specific data
	Payload []byte

	// SHA-256 of state AFTER applying this event
	StateHash [32]byte

	// Previous event's state hash (chain integrity)
	PrevHash [32]byte
}

// Event is the interface all event payloads must implement
type Event interface {
	// IdempotencyKey returns the stable dedup key
	IdempotencyKey() string

	// EventType returns the discriminator
	EventType() EventType

	// PoolID returns the pool context (nil for global events)
	PoolID() *uuid.UUID

	// SourceSequence returns upstream ordering key
	SourceSequence() int64
}
