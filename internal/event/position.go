package event

import (
	"time"

	"SidePool/internal/pool"

	"github.com/google/uuid"
)

// PositionChanged is the AMM position engine's notification of a liquidity
// position change. DeltaA/DeltaB are the operation's reported asset deltas
// (opaque signed quantities owned by the position engine); Instruction is the
// already-decoded matching request.
type PositionChanged struct {
	ChangeID    uuid.UUID        `json:"change_id"`
	Pool        uuid.UUID        `json:"pool_id"`
	Controller  uuid.UUID        `json:"controller"`
	Salt        [32]byte         `json:"salt"`
	DeltaA      int64            `json:"delta_a"`
	DeltaB      int64            `json:"delta_b"`
	Instruction pool.Instruction `json:"instruction"`
	Sequence    int64            `json:"sequence"`
	Timestamp   time.Time        `json:"timestamp"`
}

func (p *PositionChanged) IdempotencyKey() string {
	return p.ChangeID.String()
}

func (p *PositionChanged) EventType() EventType {
	return EventTypePositionChanged
}

func (p *PositionChanged) PoolID() *uuid.UUID {
	return &p.Pool
}

func (p *PositionChanged) SourceSequence() int64 {
	return p.Sequence
}

// PoolBound announces a new pool over a pair of assets
type PoolBound struct {
	Pool      uuid.UUID `json:"pool_id"`
	AssetA    string    `json:"asset_a"`
	AssetB    string    `json:"asset_b"`
	Sequence  int64     `json:"sequence"`
	Timestamp time.Time `json:"timestamp"`
}

func (p *PoolBound) IdempotencyKey() string {
	return p.Pool.String()
}

func (p *PoolBound) EventType() EventType {
	return EventTypePoolBound
}

func (p *PoolBound) PoolID() *uuid.UUID {
	return &p.Pool
}

func (p *PoolBound) SourceSequence() int64 {
	return p.Sequence
}
