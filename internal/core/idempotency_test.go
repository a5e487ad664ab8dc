package core

import (
	"errors"
	"testing"
)

type fakeDBChecker struct {
	keys  map[string]bool
	err   error
	calls int
}

func (f *fakeDBChecker) IsDuplicate(eventType, idempotencyKey string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.keys[eventType+":"+idempotencyKey], nil
}

func TestIdempotencyChecker_MarkAndCheck(t *testing.T) {
	ic := NewIdempotencyChecker(100, nil)

	if ic.IsDuplicate("fund_requested", "req-1") {
		t.Error("fresh key should not be a duplicate")
	}

	ic.MarkProcessed("fund_requested", "req-1")
	if !ic.IsDuplicate("fund_requested", "req-1") {
		t.Error("marked key should be a duplicate")
	}

	// Same key under a different event type is distinct
	if ic.IsDuplicate("defund_requested", "req-1") {
		t.Error("key must be scoped by event type")
	}
}

func TestIdempotencyChecker_DBFallthrough(t *testing.T) {
	db := &fakeDBChecker{keys: map[string]bool{"fund_requested:old-key": true}}
	ic := NewIdempotencyChecker(100, db)

	if !ic.IsDuplicate("fund_requested", "old-key") {
		t.Fatal("key present in DB should be a duplicate")
	}
	if db.calls != 1 {
		t.Fatalf("db calls = %d, want 1", db.calls)
	}

	// The DB hit is promoted into the LRU; the second check stays hot
	if !ic.IsDuplicate("fund_requested", "old-key") {
		t.Fatal("promoted key should still be a duplicate")
	}
	if db.calls != 1 {
		t.Errorf("db calls = %d, want 1 (second lookup should hit the LRU)", db.calls)
	}
}

func TestIdempotencyChecker_DBErrorNotDuplicate(t *testing.T) {
	db := &fakeDBChecker{err: errors.New("connection refused")}
	ic := NewIdempotencyChecker(100, db)

	if ic.IsDuplicate("fund_requested", "key") {
		t.Error("DB error must not report a duplicate")
	}
}

func TestIdempotencyChecker_LRUEviction(t *testing.T) {
	ic := NewIdempotencyChecker(3, nil)

	for _, k := range []string{"a", "b", "c"} {
		ic.MarkProcessed("fund_requested", k)
	}
	if ic.Size() != 3 {
		t.Fatalf("size = %d, want 3", ic.Size())
	}

	// Touch "a" so "b" is the eviction candidate
	if !ic.IsDuplicate("fund_requested", "a") {
		t.Fatal("a should be present")
	}

	ic.MarkProcessed("fund_requested", "d")
	if ic.Evictions() != 1 {
		t.Fatalf("evictions = %d, want 1", ic.Evictions())
	}
	if ic.IsDuplicate("fund_requested", "b") {
		t.Error("b should have been evicted")
	}
	if !ic.IsDuplicate("fund_requested", "a") || !ic.IsDuplicate("fund_requested", "d") {
		t.Error("a and d should survive the eviction")
	}
}

func TestIdempotencyChecker_WarmFromKeys(t *testing.T) {
	ic := NewIdempotencyChecker(100, nil)
	ic.WarmFromKeys([]string{"fund_requested:warm-1", "pool_bound:warm-2"})

	if !ic.IsDuplicate("fund_requested", "warm-1") {
		t.Error("warmed key should be a duplicate")
	}
	if !ic.IsDuplicate("pool_bound", "warm-2") {
		t.Error("warmed key should be a duplicate")
	}
	if ic.Size() != 2 {
		t.Errorf("size = %d, want 2", ic.Size())
	}
}
