package ingestion

import (
	"encoding/json"
	"testing"
	"time"

	"SidePool/internal/testutil"
)

func TestOutboundSubject(t *testing.T) {
	poolID := "8f14e45f-ceea-467f-a90f-0b13ffb45b0b"

	tests := []struct {
		name string
		evt  PublishableEvent
		want string
	}{
		{
			name: "with pool",
			evt:  PublishableEvent{EventType: "position_changed", PoolID: &poolID},
			want: "sidepool.engine.events.position_changed.8f14e45f-ceea-467f-a90f-0b13ffb45b0b",
		},
		{
			name: "without pool",
			evt:  PublishableEvent{EventType: "pool_bound"},
			want: "sidepool.engine.events.pool_bound",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outboundSubject(tt.evt); got != tt.want {
				t.Errorf("subject = %q, want %q", got, tt.want)
			}
		})
	}
}

// The outbound wire format is consumed by the AMM position engine; a field
// rename or encoding change here is a breaking change for downstream parsers.
func TestPublishableEventWireFormat(t *testing.T) {
	poolID := "8f14e45f-ceea-467f-a90f-0b13ffb45b0b"
	corrA := int64(-250)
	corrB := int64(97)

	evt := PublishableEvent{
		Sequence:       42,
		EventType:      "position_changed",
		IdempotencyKey: "pos-7f3a",
		PoolID:         &poolID,
		Payload:        json.RawMessage(`{"note":"fill"}`),
		CorrectionA:    &corrA,
		CorrectionB:    &corrB,
		StateHash:      []byte("0123456789abcdef0123456789abcdef"),
		Timestamp:      time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	testutil.AssertGolden(t, "publishable_event.json", data)
}
