package event

import (
	"time"

	"github.com/google/uuid"
)

// FundRequested represents a depositor contributing one asset to a pool's reservoir
type FundRequested struct {
	RequestID   uuid.UUID `json:"request_id"`
	Pool        uuid.UUID `json:"pool_id"`
	DepositorID uuid.UUID `json:"depositor_id"`
	Asset       string    `json:"asset"`
	Amount      int64     `json:"amount"` // Base units, must be positive
	Sequence    int64     `json:"sequence"`
	Timestamp   time.Time `json:"timestamp"`
}

func (f *FundRequested) IdempotencyKey() string {
	return f.RequestID.String()
}

func (f *FundRequested) EventType() EventType {
	return EventTypeFundRequested
}

func (f *FundRequested) PoolID() *uuid.UUID {
	return &f.Pool
}

func (f *FundRequested) SourceSequence() int64 {
	return f.Sequence
}

// DefundRequested represents a depositor withdrawing claimable balance from a pool
type DefundRequested struct {
	RequestID   uuid.UUID `json:"request_id"`
	Pool        uuid.UUID `json:"pool_id"`
	DepositorID uuid.UUID `json:"depositor_id"`
	Asset       string    `json:"asset"`
	Amount      int64     `json:"amount"`
	Sequence    int64     `json:"sequence"`
	Timestamp   time.Time `json:"timestamp"`
}

func (d *DefundRequested) IdempotencyKey() string {
	return d.RequestID.String()
}

func (d *DefundRequested) EventType() EventType {
	return EventTypeDefundRequested
}

func (d *DefundRequested) PoolID() *uuid.UUID {
	return &d.Pool
}

func (d *DefundRequested) SourceSequence() int64 {
	return d.Sequence
}
