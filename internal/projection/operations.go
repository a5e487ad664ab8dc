package projection

import (
	"sync"

	"github.com/google/uuid"
)

// OperationEntry is one processed pool operation kept for fast recent-history
// queries without a database round trip.
type OperationEntry struct {
	Sequence    int64
	PoolID      uuid.UUID
	EventType   string
	CorrectionA int64
	CorrectionB int64
	Timestamp   int64
}

// OperationsProjection maintains a bounded in-memory ring of recent pool
// operations. Unlike the Postgres projections it is safe for concurrent
// readers, since the query service reads it outside the worker goroutine.
type OperationsProjection struct {
	mu      sync.RWMutex
	entries []OperationEntry
	next    int
	full    bool
}

func NewOperationsProjection(capacity int) *OperationsProjection {
	if capacity <= 0 {
		capacity = 1024
	}
	return &OperationsProjection{
		entries: make([]OperationEntry, capacity),
	}
}

// Add records an operation, evicting the oldest when full.
func (p *OperationsProjection) Add(entry OperationEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.entries[p.next] = entry
	p.next++
	if p.next == len(p.entries) {
		p.next = 0
		p.full = true
	}
}

// RecentByPool returns up to limit most-recent operations for a pool,
// newest first.
func (p *OperationsProjection) RecentByPool(poolID uuid.UUID, limit int) []OperationEntry {
	p.mu.RLock()
	defer p.mu.RUnlock()

	size := p.next
	if p.full {
		size = len(p.entries)
	}

	result := make([]OperationEntry, 0, limit)
	for i := 1; i <= size && len(result) < limit; i++ {
		idx := p.next - i
		if idx < 0 {
			idx += len(p.entries)
		}
		if p.entries[idx].PoolID == poolID {
			result = append(result, p.entries[idx])
		}
	}
	return result
}

// LastSequence returns the newest recorded sequence, or -1 when empty.
func (p *OperationsProjection) LastSequence() int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.next == 0 && !p.full {
		return -1
	}
	idx := p.next - 1
	if idx < 0 {
		idx += len(p.entries)
	}
	return p.entries[idx].Sequence
}
