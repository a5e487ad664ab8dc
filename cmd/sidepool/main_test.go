package main

import (
	"context"
	"fmt"
	"testing"
	"time"

	"SidePool/internal/core"
	"SidePool/internal/event"
	"SidePool/internal/ingestion"
	"SidePool/internal/persistence"
	"SidePool/internal/projection"
)

func bridgeOutput(seq int64) core.CoreOutput {
	return core.CoreOutput{
		Envelope: &event.EventEnvelope{
			Sequence:       seq,
			IdempotencyKey: fmt.Sprintf("key-%d", seq),
			EventType:      event.EventTypeFundRequested,
			Timestamp:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			SourceSequence: seq,
			Payload:        []byte(`{}`),
		},
	}
}

// The bridge must keep forwarding buffered outputs after its inputs close and
// only then close the worker channels. Closing them out from under an
// in-flight send panics, which is exactly what a shutdown that closes worker
// channels while the bridge still drains would do.
func TestBridgeCoreOutputs_DrainsThenClosesWorkerChannels(t *testing.T) {
	persistIn := make(chan core.CoreOutput, 8)
	projectionIn := make(chan core.CoreOutput, 8)
	persistOut := make(chan persistence.CoreOutput, 8)
	projectionOut := make(chan projection.ProjectionOutput, 8)
	publishOut := make(chan ingestion.PublishableEvent, 8)

	for seq := int64(0); seq < 3; seq++ {
		persistIn <- bridgeOutput(seq)
	}
	projectionIn <- bridgeOutput(3)
	close(persistIn)
	close(projectionIn)

	done := make(chan struct{})
	go func() {
		defer close(done)
		bridgeCoreOutputs(context.Background(), persistIn, projectionIn, persistOut, projectionOut, publishOut, nil)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("bridge did not exit after inputs closed")
	}

	// Everything buffered before the close must have been forwarded
	for seq := int64(0); seq < 3; seq++ {
		row, ok := <-persistOut
		if !ok {
			t.Fatalf("persist channel closed after %d rows, want 3", seq)
		}
		if row.EventRow.Sequence != seq {
			t.Errorf("persist row sequence = %d, want %d", row.EventRow.Sequence, seq)
		}
	}
	proj, ok := <-projectionOut
	if !ok {
		t.Fatal("projection output missing")
	}
	if proj.Sequence != 3 {
		t.Errorf("projection sequence = %d, want 3", proj.Sequence)
	}

	// The bridge owns the worker channels and closes them once drained
	if _, ok := <-persistOut; ok {
		t.Error("persist channel not closed after drain")
	}
	if _, ok := <-projectionOut; ok {
		t.Error("projection channel not closed after drain")
	}
	var published int
	for range publishOut {
		published++
	}
	if published != 3 {
		t.Errorf("published events = %d, want 3", published)
	}
}
