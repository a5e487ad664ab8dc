package ingestion

import (
	"encoding/json"
	"fmt"
	"time"

	"SidePool/internal/event"
	"SidePool/internal/pool"

	"github.com/google/uuid"
)

// ParseRawEvent converts a RawEvent (JSON bytes + event type string) into a
// typed event.Event. The ingestion shell validates, parses, and converts raw
// events before sending them to the deterministic core.
func ParseRawEvent(raw RawEvent, eventType string) (event.Event, error) {
	switch eventType {
	case "pool_bound":
		return parsePoolBound(raw.Data)
	case "fund_requested":
		return parseFundRequested(raw.Data)
	case "defund_requested":
		return parseDefundRequested(raw.Data)
	case "position_changed":
		return parsePositionChanged(raw.Data)
	default:
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}
}

// --- JSON wire formats ---
// These structs represent the JSON payloads received from NATS.
// Field names use snake_case to match upstream producers.

type poolBoundJSON struct {
	PoolID      string `json:"pool_id"`
	AssetA      string `json:"asset_a"`
	AssetB      string `json:"asset_b"`
	Sequence    int64  `json:"sequence"`
	TimestampUs int64  `json:"timestamp_us"`
}

func parsePoolBound(data []byte) (*event.PoolBound, error) {
	var j poolBoundJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse PoolBound: %w", err)
	}
	poolID, err := uuid.Parse(j.PoolID)
	if err != nil {
		return nil, fmt.Errorf("parse pool_id: %w", err)
	}
	return &event.PoolBound{
		Pool:      poolID,
		AssetA:    j.AssetA,
		AssetB:    j.AssetB,
		Sequence:  j.Sequence,
		Timestamp: time.UnixMicro(j.TimestampUs),
	}, nil
}

type fundJSON struct {
	RequestID   string `json:"request_id"`
	PoolID      string `json:"pool_id"`
	DepositorID string `json:"depositor_id"`
	Asset       string `json:"asset"`
	Amount      int64  `json:"amount"`
	Sequence    int64  `json:"sequence"`
	TimestampUs int64  `json:"timestamp_us"`
}

func parseFundRequested(data []byte) (*event.FundRequested, error) {
	var j fundJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse FundRequested: %w", err)
	}
	requestID, err := uuid.Parse(j.RequestID)
	if err != nil {
		return nil, fmt.Errorf("parse request_id: %w", err)
	}
	poolID, err := uuid.Parse(j.PoolID)
	if err != nil {
		return nil, fmt.Errorf("parse pool_id: %w", err)
	}
	depositorID, err := uuid.Parse(j.DepositorID)
	if err != nil {
		return nil, fmt.Errorf("parse depositor_id: %w", err)
	}
	if j.Amount <= 0 {
		return nil, fmt.Errorf("fund amount must be positive, got %d", j.Amount)
	}
	return &event.FundRequested{
		RequestID:   requestID,
		Pool:        poolID,
		DepositorID: depositorID,
		Asset:       j.Asset,
		Amount:      j.Amount,
		Sequence:    j.Sequence,
		Timestamp:   time.UnixMicro(j.TimestampUs),
	}, nil
}

func parseDefundRequested(data []byte) (*event.DefundRequested, error) {
	var j fundJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse DefundRequested: %w", err)
	}
	requestID, err := uuid.Parse(j.RequestID)
	if err != nil {
		return nil, fmt.Errorf("parse request_id: %w", err)
	}
	poolID, err := uuid.Parse(j.PoolID)
	if err != nil {
		return nil, fmt.Errorf("parse pool_id: %w", err)
	}
	depositorID, err := uuid.Parse(j.DepositorID)
	if err != nil {
		return nil, fmt.Errorf("parse depositor_id: %w", err)
	}
	if j.Amount <= 0 {
		return nil, fmt.Errorf("defund amount must be positive, got %d", j.Amount)
	}
	return &event.DefundRequested{
		RequestID:   requestID,
		Pool:        poolID,
		DepositorID: depositorID,
		Asset:       j.Asset,
		Amount:      j.Amount,
		Sequence:    j.Sequence,
		Timestamp:   time.UnixMicro(j.TimestampUs),
	}, nil
}

type positionChangedJSON struct {
	ChangeID    string `json:"change_id"`
	PoolID      string `json:"pool_id"`
	Controller  string `json:"controller"`
	Salt        string `json:"salt"` // 32 bytes, hex-encoded
	DeltaA      int64  `json:"delta_a"`
	DeltaB      int64  `json:"delta_b"`
	Instruction string `json:"instruction"` // "", "none", "match_a", "match_b"
	Sequence    int64  `json:"sequence"`
	TimestampUs int64  `json:"timestamp_us"`
}

func parsePositionChanged(data []byte) (*event.PositionChanged, error) {
	var j positionChangedJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse PositionChanged: %w", err)
	}
	changeID, err := uuid.Parse(j.ChangeID)
	if err != nil {
		return nil, fmt.Errorf("parse change_id: %w", err)
	}
	poolID, err := uuid.Parse(j.PoolID)
	if err != nil {
		return nil, fmt.Errorf("parse pool_id: %w", err)
	}
	controller, err := uuid.Parse(j.Controller)
	if err != nil {
		return nil, fmt.Errorf("parse controller: %w", err)
	}
	salt, err := pool.ParseSalt(j.Salt)
	if err != nil {
		return nil, fmt.Errorf("parse salt: %w", err)
	}
	instr, err := pool.ParseInstruction(j.Instruction)
	if err != nil {
		return nil, fmt.Errorf("parse instruction: %w", err)
	}
	return &event.PositionChanged{
		ChangeID:    changeID,
		Pool:        poolID,
		Controller:  controller,
		Salt:        salt,
		DeltaA:      j.DeltaA,
		DeltaB:      j.DeltaB,
		Instruction: instr,
		Sequence:    j.Sequence,
		Timestamp:   time.UnixMicro(j.TimestampUs),
	}, nil
}
