package core

import (
	"container/list"
	"fmt"
)

// DBIdempotencyChecker is the interface for Postgres dedup lookup
type DBIdempotencyChecker interface {
	IsDuplicate(eventType string, idempotencyKey string) (bool, error)
}

// IdempotencyChecker implements two-tier deduplication: a hot in-memory LRU
// backed by a Postgres event-log lookup for keys that aged out of the LRU.
type IdempotencyChecker struct {
	lru       *dedupLRU
	dbChecker DBIdempotencyChecker

	lruHits int64
	dbHits  int64
	dbErrs  int64
}

func NewIdempotencyChecker(capacity int, dbChecker DBIdempotencyChecker) *IdempotencyChecker {
	return &IdempotencyChecker{
		lru:       newDedupLRU(capacity),
		dbChecker: dbChecker,
	}
}

// IsDuplicate checks if the event has already been processed (two-tier lookup)
func (ic *IdempotencyChecker) IsDuplicate(eventType string, idempotencyKey string) bool {
	compositeKey := fmt.Sprintf("%s:%s", eventType, idempotencyKey)

	if ic.lru.contains(compositeKey) {
		ic.lruHits++
		return true
	}

	if ic.dbChecker != nil {
		isDup, err := ic.dbChecker.IsDuplicate(eventType, idempotencyKey)
		if err != nil {
			// Conservative: assume not duplicate so a DB hiccup cannot
			// block event processing
			ic.dbErrs++
			return false
		}

		if isDup {
			ic.dbHits++
			ic.lru.add(compositeKey)
			return true
		}
	}

	return false
}

// AttachDB wires the Postgres tier. The core runs with only the LRU during
// restart replay and attaches the DB tier once replay finishes; the event log
// rows being replayed would otherwise be mistaken for duplicates.
func (ic *IdempotencyChecker) AttachDB(db DBIdempotencyChecker) {
	ic.dbChecker = db
}

// MarkProcessed adds the key to the LRU after successful processing
func (ic *IdempotencyChecker) MarkProcessed(eventType string, idempotencyKey string) {
	ic.lru.add(fmt.Sprintf("%s:%s", eventType, idempotencyKey))
}

// WarmFromKeys loads recent composite keys on restart to avoid cold-path
// DB lookups for recently processed events
func (ic *IdempotencyChecker) WarmFromKeys(keys []string) {
	for _, key := range keys {
		ic.lru.add(key)
	}
}

// Size returns current LRU occupancy
func (ic *IdempotencyChecker) Size() int {
	return ic.lru.size()
}

// Evictions returns total LRU evictions
func (ic *IdempotencyChecker) Evictions() int64 {
	return ic.lru.evictions
}

// --- LRU ---

// dedupLRU is an LRU set of idempotency keys.
// Not thread-safe; only accessed from the single-threaded deterministic core.
type dedupLRU struct {
	capacity  int
	cache     map[string]*list.Element
	order     *list.List
	evictions int64
}

func newDedupLRU(capacity int) *dedupLRU {
	return &dedupLRU{
		capacity: capacity,
		cache:    make(map[string]*list.Element, capacity),
		order:    list.New(),
	}
}

func (lru *dedupLRU) contains(key string) bool {
	elem, exists := lru.cache[key]
	if exists {
		lru.order.MoveToFront(elem)
		return true
	}
	return false
}

func (lru *dedupLRU) add(key string) {
	if elem, exists := lru.cache[key]; exists {
		lru.order.MoveToFront(elem)
		return
	}

	elem := lru.order.PushFront(key)
	lru.cache[key] = elem

	if lru.order.Len() > lru.capacity {
		oldest := lru.order.Back()
		if oldest != nil {
			lru.order.Remove(oldest)
			delete(lru.cache, oldest.Value.(string))
			lru.evictions++
		}
	}
}

func (lru *dedupLRU) size() int {
	return lru.order.Len()
}
