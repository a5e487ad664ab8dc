package core

import (
	"errors"
	"testing"
)

func TestSequenceValidator_InOrder(t *testing.T) {
	sv := NewSequenceValidator()

	for seq := int64(0); seq < 5; seq++ {
		if err := sv.ValidateSequence("pool:a", seq, false); err != nil {
			t.Fatalf("seq %d: %v", seq, err)
		}
	}

	if got := sv.GetExpectedSequence("pool:a"); got != 5 {
		t.Errorf("expected sequence = %d, want 5", got)
	}
}

func TestSequenceValidator_IndependentPartitions(t *testing.T) {
	sv := NewSequenceValidator()

	if err := sv.ValidateSequence("pool:a", 0, false); err != nil {
		t.Fatalf("pool:a seq 0: %v", err)
	}
	if err := sv.ValidateSequence("pool:b", 0, false); err != nil {
		t.Fatalf("pool:b seq 0: %v", err)
	}
	if err := sv.ValidateSequence("pool:a", 1, false); err != nil {
		t.Fatalf("pool:a seq 1: %v", err)
	}

	if got := sv.GetExpectedSequence("pool:b"); got != 1 {
		t.Errorf("pool:b expected sequence = %d, want 1", got)
	}
}

func TestSequenceValidator_Gap(t *testing.T) {
	sv := NewSequenceValidator()

	if err := sv.ValidateSequence("pool:a", 0, false); err != nil {
		t.Fatalf("seq 0: %v", err)
	}

	err := sv.ValidateSequence("pool:a", 5, false)
	if !errors.Is(err, ErrSequenceGap) {
		t.Fatalf("want ErrSequenceGap, got %v", err)
	}
	if got := sv.Gaps("pool:a"); got != 1 {
		t.Errorf("gap count = %d, want 1", got)
	}

	// The cursor does not advance past a gap
	if got := sv.GetExpectedSequence("pool:a"); got != 1 {
		t.Errorf("expected sequence = %d, want 1", got)
	}
}

func TestSequenceValidator_OutOfOrder(t *testing.T) {
	sv := NewSequenceValidator()

	for seq := int64(0); seq < 3; seq++ {
		if err := sv.ValidateSequence("pool:a", seq, false); err != nil {
			t.Fatalf("seq %d: %v", seq, err)
		}
	}

	err := sv.ValidateSequence("pool:a", 1, false)
	if !errors.Is(err, ErrOutOfOrder) {
		t.Fatalf("want ErrOutOfOrder, got %v", err)
	}
	if got := sv.OutOfOrder("pool:a"); got != 1 {
		t.Errorf("out-of-order count = %d, want 1", got)
	}
}

func TestSequenceValidator_DuplicateRedelivery(t *testing.T) {
	sv := NewSequenceValidator()

	for seq := int64(0); seq < 3; seq++ {
		if err := sv.ValidateSequence("pool:a", seq, false); err != nil {
			t.Fatalf("seq %d: %v", seq, err)
		}
	}

	// A redelivered duplicate with a stale sequence is accepted silently
	if err := sv.ValidateSequence("pool:a", 1, true); err != nil {
		t.Fatalf("duplicate redelivery: %v", err)
	}
	if got := sv.OutOfOrder("pool:a"); got != 0 {
		t.Errorf("out-of-order count = %d, want 0", got)
	}
}

func TestSequenceValidator_SnapshotRestore(t *testing.T) {
	sv := NewSequenceValidator()
	sv.SetExpectedSequence("pool:a", 10)
	sv.SetExpectedSequence("global", 3)

	snap := sv.Snapshot()
	if snap["pool:a"] != 10 || snap["global"] != 3 {
		t.Fatalf("snapshot = %v", snap)
	}

	restored := NewSequenceValidator()
	for partition, seq := range snap {
		restored.SetExpectedSequence(partition, seq)
	}
	if err := restored.ValidateSequence("pool:a", 10, false); err != nil {
		t.Errorf("restored seq 10: %v", err)
	}
	if err := restored.ValidateSequence("global", 3, false); err != nil {
		t.Errorf("restored global seq 3: %v", err)
	}
}
