package ingestion_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"SidePool/internal/event"
	"SidePool/internal/ingestion"
	"SidePool/internal/pool"
)

func rawFromJSON(t *testing.T, v interface{}) ingestion.RawEvent {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return ingestion.RawEvent{
		Subject:   "test",
		Data:      data,
		Timestamp: time.Now(),
		AckFunc:   func() {},
		NakFunc:   func() {},
	}
}

func TestParsePoolBound(t *testing.T) {
	payload := map[string]interface{}{
		"pool_id":      "550e8400-e29b-41d4-a716-446655440000",
		"asset_a":      "USDC",
		"asset_b":      "WETH",
		"sequence":     int64(0),
		"timestamp_us": int64(1700000000000000),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, "pool_bound")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	pb, ok := evt.(*event.PoolBound)
	if !ok {
		t.Fatalf("expected *event.PoolBound, got %T", evt)
	}

	if pb.AssetA != "USDC" || pb.AssetB != "WETH" {
		t.Errorf("assets: got %s/%s, want USDC/WETH", pb.AssetA, pb.AssetB)
	}
	if pb.Timestamp.UnixMicro() != 1700000000000000 {
		t.Errorf("timestamp: got %d", pb.Timestamp.UnixMicro())
	}
}

func TestParseFundRequested(t *testing.T) {
	payload := map[string]interface{}{
		"request_id":   "660e8400-e29b-41d4-a716-446655440001",
		"pool_id":      "550e8400-e29b-41d4-a716-446655440000",
		"depositor_id": "770e8400-e29b-41d4-a716-446655440002",
		"asset":        "USDC",
		"amount":       int64(1_000_000),
		"sequence":     int64(7),
		"timestamp_us": int64(1700000000000000),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, "fund_requested")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	fr, ok := evt.(*event.FundRequested)
	if !ok {
		t.Fatalf("expected *event.FundRequested, got %T", evt)
	}

	if fr.Amount != 1_000_000 {
		t.Errorf("amount: got %d, want 1_000_000", fr.Amount)
	}
	if fr.Sequence != 7 {
		t.Errorf("sequence: got %d, want 7", fr.Sequence)
	}
	if fr.IdempotencyKey() != "660e8400-e29b-41d4-a716-446655440001" {
		t.Errorf("idempotency key: got %s", fr.IdempotencyKey())
	}
}

func TestParseFundRequested_RejectsNonPositiveAmount(t *testing.T) {
	payload := map[string]interface{}{
		"request_id":   "660e8400-e29b-41d4-a716-446655440001",
		"pool_id":      "550e8400-e29b-41d4-a716-446655440000",
		"depositor_id": "770e8400-e29b-41d4-a716-446655440002",
		"asset":        "USDC",
		"amount":       int64(0),
		"sequence":     int64(7),
		"timestamp_us": int64(1700000000000000),
	}

	raw := rawFromJSON(t, payload)
	if _, err := ingestion.ParseRawEvent(raw, "fund_requested"); err == nil {
		t.Fatal("expected error for zero amount")
	}
}

func TestParseDefundRequested(t *testing.T) {
	payload := map[string]interface{}{
		"request_id":   "880e8400-e29b-41d4-a716-446655440003",
		"pool_id":      "550e8400-e29b-41d4-a716-446655440000",
		"depositor_id": "770e8400-e29b-41d4-a716-446655440002",
		"asset":        "WETH",
		"amount":       int64(250),
		"sequence":     int64(9),
		"timestamp_us": int64(1700000000000000),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, "defund_requested")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	dr, ok := evt.(*event.DefundRequested)
	if !ok {
		t.Fatalf("expected *event.DefundRequested, got %T", evt)
	}
	if dr.Asset != "WETH" || dr.Amount != 250 {
		t.Errorf("got asset=%s amount=%d, want WETH/250", dr.Asset, dr.Amount)
	}
}

func TestParsePositionChanged(t *testing.T) {
	salt := strings.Repeat("ab", 32)
	payload := map[string]interface{}{
		"change_id":    "990e8400-e29b-41d4-a716-446655440004",
		"pool_id":      "550e8400-e29b-41d4-a716-446655440000",
		"controller":   "aa0e8400-e29b-41d4-a716-446655440005",
		"salt":         salt,
		"delta_a":      int64(-400),
		"delta_b":      int64(12345),
		"instruction":  "match_a",
		"sequence":     int64(11),
		"timestamp_us": int64(1700000000000000),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, "position_changed")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	pc, ok := evt.(*event.PositionChanged)
	if !ok {
		t.Fatalf("expected *event.PositionChanged, got %T", evt)
	}

	if pc.DeltaA != -400 || pc.DeltaB != 12345 {
		t.Errorf("deltas: got %d/%d, want -400/12345", pc.DeltaA, pc.DeltaB)
	}
	if pc.Instruction != pool.InstructionMatchA {
		t.Errorf("instruction: got %v, want InstructionMatchA", pc.Instruction)
	}
	if pc.Salt[0] != 0xab || pc.Salt[31] != 0xab {
		t.Errorf("salt not decoded: %x", pc.Salt)
	}
}

func TestParsePositionChanged_UnknownInstruction(t *testing.T) {
	payload := map[string]interface{}{
		"change_id":    "990e8400-e29b-41d4-a716-446655440004",
		"pool_id":      "550e8400-e29b-41d4-a716-446655440000",
		"controller":   "aa0e8400-e29b-41d4-a716-446655440005",
		"salt":         strings.Repeat("00", 32),
		"delta_a":      int64(-400),
		"delta_b":      int64(0),
		"instruction":  "match_c",
		"sequence":     int64(11),
		"timestamp_us": int64(1700000000000000),
	}

	raw := rawFromJSON(t, payload)
	if _, err := ingestion.ParseRawEvent(raw, "position_changed"); err == nil {
		t.Fatal("expected error for unknown instruction")
	}
}

func TestParsePositionChanged_BadSalt(t *testing.T) {
	payload := map[string]interface{}{
		"change_id":    "990e8400-e29b-41d4-a716-446655440004",
		"pool_id":      "550e8400-e29b-41d4-a716-446655440000",
		"controller":   "aa0e8400-e29b-41d4-a716-446655440005",
		"salt":         "abcd", // too short
		"delta_a":      int64(0),
		"delta_b":      int64(0),
		"instruction":  "none",
		"sequence":     int64(11),
		"timestamp_us": int64(1700000000000000),
	}

	raw := rawFromJSON(t, payload)
	if _, err := ingestion.ParseRawEvent(raw, "position_changed"); err == nil {
		t.Fatal("expected error for short salt")
	}
}

func TestParseRawEvent_UnknownType(t *testing.T) {
	raw := rawFromJSON(t, map[string]interface{}{})
	if _, err := ingestion.ParseRawEvent(raw, "Nope"); err == nil {
		t.Fatal("expected error for unknown event type")
	}
}

func TestParseRawEvent_MalformedUUID(t *testing.T) {
	payload := map[string]interface{}{
		"request_id":   "not-a-uuid",
		"pool_id":      "550e8400-e29b-41d4-a716-446655440000",
		"depositor_id": "770e8400-e29b-41d4-a716-446655440002",
		"asset":        "USDC",
		"amount":       int64(10),
		"sequence":     int64(1),
		"timestamp_us": int64(1700000000000000),
	}

	raw := rawFromJSON(t, payload)
	if _, err := ingestion.ParseRawEvent(raw, "fund_requested"); err == nil {
		t.Fatal("expected error for malformed request_id")
	}
}
