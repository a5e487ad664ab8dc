package projection

import (
	"testing"

	"github.com/google/uuid"
)

func TestOperationsProjection_RecentByPool(t *testing.T) {
	p := NewOperationsProjection(8)
	poolA := uuid.New()
	poolB := uuid.New()

	for i := 0; i < 6; i++ {
		id := poolA
		if i%2 == 1 {
			id = poolB
		}
		p.Add(OperationEntry{Sequence: int64(i), PoolID: id, EventType: "position_changed"})
	}

	got := p.RecentByPool(poolA, 10)
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
	// Newest first
	if got[0].Sequence != 4 || got[1].Sequence != 2 || got[2].Sequence != 0 {
		t.Errorf("order = %d,%d,%d, want 4,2,0", got[0].Sequence, got[1].Sequence, got[2].Sequence)
	}
}

func TestOperationsProjection_EvictsOldest(t *testing.T) {
	p := NewOperationsProjection(4)
	poolID := uuid.New()

	for i := 0; i < 10; i++ {
		p.Add(OperationEntry{Sequence: int64(i), PoolID: poolID})
	}

	got := p.RecentByPool(poolID, 10)
	if len(got) != 4 {
		t.Fatalf("got %d entries, want 4", len(got))
	}
	if got[0].Sequence != 9 || got[3].Sequence != 6 {
		t.Errorf("window = %d..%d, want 9..6", got[0].Sequence, got[3].Sequence)
	}
	if p.LastSequence() != 9 {
		t.Errorf("last sequence = %d, want 9", p.LastSequence())
	}
}

func TestOperationsProjection_Empty(t *testing.T) {
	p := NewOperationsProjection(4)
	if p.LastSequence() != -1 {
		t.Errorf("empty last sequence = %d, want -1", p.LastSequence())
	}
	if got := p.RecentByPool(uuid.New(), 5); len(got) != 0 {
		t.Errorf("expected no entries, got %d", len(got))
	}
}
