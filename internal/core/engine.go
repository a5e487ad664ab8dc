package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"SidePool/internal/event"
	"SidePool/internal/ledger"
	"SidePool/internal/observability"
	"SidePool/internal/pool"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DeterministicCore is the single-threaded event processor. Every notification
// (pool binding, fund, defund, position change) is applied as one atomic
// serialized state transition: books fully updated and settlement calls issued
// before the next event is accepted. Settlement and transfer collaborators are
// synchronous sub-calls; their failure aborts the whole event with no ledger
// mutation committed.
type DeterministicCore struct {
	sequence          int64
	hasher            *StateHasher
	balanceTracker    *ledger.BalanceTracker
	journalGen        *ledger.JournalGenerator
	validator         *ledger.InvariantValidator
	pools             *pool.Manager
	mover             pool.Mover
	authority         pool.SettlementAuthority
	idempotency       *IdempotencyChecker
	sequenceValidator *SequenceValidator
	metrics           *observability.Metrics
	logger            zerolog.Logger
	replaying         bool

	persistChan    chan<- CoreOutput
	projectionChan chan<- CoreOutput
}

// CoreOutput is what the core emits per applied event.
type CoreOutput struct {
	Envelope   *event.EventEnvelope
	Batch      *ledger.Batch
	StateDelta []byte

	// Correction is the engine's delta answer for PositionChanged events,
	// nil for everything else
	Correction *pool.Delta
}

func NewDeterministicCore(
	startSequence int64,
	mover pool.Mover,
	authority pool.SettlementAuthority,
	persistChan, projectionChan chan<- CoreOutput,
	dbChecker DBIdempotencyChecker,
	metrics *observability.Metrics,
) *DeterministicCore {
	balanceTracker := ledger.NewBalanceTracker()

	return &DeterministicCore{
		sequence:          startSequence,
		hasher:            NewStateHasher(),
		balanceTracker:    balanceTracker,
		journalGen:        ledger.NewJournalGenerator(startSequence),
		validator:         ledger.NewInvariantValidator(balanceTracker),
		pools:             pool.NewManager(),
		mover:             mover,
		authority:         authority,
		idempotency:       NewIdempotencyChecker(1_000_000, dbChecker),
		sequenceValidator: NewSequenceValidator(),
		metrics:           metrics,
		logger:            observability.NewLogger("core"),
		persistChan:       persistChan,
		projectionChan:    projectionChan,
	}
}

// Pools exposes the registry for snapshotting and recovery
func (c *DeterministicCore) Pools() *pool.Manager {
	return c.pools
}

// Balances exposes the balance tracker for snapshotting and recovery
func (c *DeterministicCore) Balances() *ledger.BalanceTracker {
	return c.balanceTracker
}

// Sequence returns the next global sequence the core will assign
func (c *DeterministicCore) Sequence() int64 {
	return c.sequence
}

// StateHash returns the current hash chain tip (hash of the last applied event)
func (c *DeterministicCore) StateHash() [32]byte {
	return c.hasher.GetPrevHash()
}

// SequenceValidator exposes partition cursors for snapshotting and recovery
func (c *DeterministicCore) SequenceValidator() *SequenceValidator {
	return c.sequenceValidator
}

// BeginReplay puts the core in recovery mode: events mutate state and advance
// the hash chain, but nothing is emitted to the persist or projection channels
// since the rows being replayed already exist in the event log. The core must
// be constructed WITHOUT a DB idempotency tier for replay: the event log being
// replayed is the same table that tier consults, so every replayed event would
// read as a duplicate of its own row and recovery would rebuild nothing.
func (c *DeterministicCore) BeginReplay() {
	c.replaying = true
}

// EndReplay returns the core to normal processing and attaches the DB
// idempotency tier for live traffic.
func (c *DeterministicCore) EndReplay(db DBIdempotencyChecker) {
	c.replaying = false
	c.idempotency.AttachDB(db)
}

// RestoreFrom rewinds the core to snapshot state (recovery path)
func (c *DeterministicCore) RestoreFrom(
	sequence int64,
	prevHash [32]byte,
	balances map[ledger.AccountKey]int64,
	pools []pool.State,
	partitions map[string]int64,
	idempotencyKeys []string,
) {
	c.sequence = sequence
	c.journalGen.SetSequence(sequence)
	c.hasher.SetPrevHash(prevHash)
	c.balanceTracker.Restore(balances)
	c.pools.Restore(pools)
	for partition, seq := range partitions {
		c.sequenceValidator.SetExpectedSequence(partition, seq)
	}
	c.idempotency.WarmFromKeys(idempotencyKeys)
}

// ProcessEvent is the main processing pipeline
func (c *DeterministicCore) ProcessEvent(ctx context.Context, evt event.Event) error {
	start := time.Now()
	eventType := evt.EventType().String()
	idempotencyKey := evt.IdempotencyKey()

	// Step 1: Idempotency check (two-tier)
	isDuplicate := c.idempotency.IsDuplicate(eventType, idempotencyKey)

	// Step 2: Sequence validation
	partition := c.getPartition(evt)
	if err := c.sequenceValidator.ValidateSequence(partition, evt.SourceSequence(), isDuplicate); err != nil {
		if c.metrics != nil {
			c.metrics.CoreEventsRejected.WithLabelValues(eventType, "sequence").Inc()
			switch {
			case errors.Is(err, ErrSequenceGap):
				c.metrics.EventSequenceGap.WithLabelValues(partition).Inc()
			case errors.Is(err, ErrOutOfOrder):
				c.metrics.EventOutOfOrder.WithLabelValues(partition).Inc()
			}
		}
		c.logger.Warn().
			Str("event_type", eventType).
			Str("partition", partition).
			Int64("source_sequence", evt.SourceSequence()).
			Err(err).
			Msg("sequence validation rejected event")
		return fmt.Errorf("sequence validation failed: %w", err)
	}

	if isDuplicate {
		if c.metrics != nil {
			c.metrics.IdempotencyDuplicates.WithLabelValues(eventType, "core").Inc()
		}
		return nil
	}

	// Step 3: Dispatch: apply pool books, get the journal batch
	batch, correction, affected, err := c.dispatchEvent(ctx, evt)
	if err != nil {
		if c.metrics != nil {
			c.metrics.CoreEventsRejected.WithLabelValues(eventType, "validation").Inc()
		}
		c.logger.Warn().
			Str("event_type", eventType).
			Str("idempotency_key", idempotencyKey).
			Err(err).
			Msg("event rejected")
		return fmt.Errorf("dispatch failed: %w", err)
	}

	// Step 4: Validate and apply the batch. State-only events (PoolBound,
	// no-op position changes) produce no journals but still need an envelope.
	if len(batch.Journals) > 0 {
		if err := c.validator.ValidateBatchBalance(batch); err != nil {
			panic(fmt.Sprintf("FATAL: unbalanced batch: %v", err))
		}
		if err := c.balanceTracker.ApplyBatch(batch); err != nil {
			return fmt.Errorf("apply batch failed: %w", err)
		}
	}

	// Step 5: State digest + hash chain
	stateDigest := c.computeStateDigest(batch, affected)
	prevHash := c.hasher.GetPrevHash()
	stateHash := c.hasher.ComputeHash(c.sequence, stateDigest)

	payload, err := json.Marshal(evt)
	if err != nil {
		panic(fmt.Sprintf("FATAL: marshal event payload: %v", err))
	}

	envelope := &event.EventEnvelope{
		Sequence:       c.sequence,
		IdempotencyKey: idempotencyKey,
		EventType:      evt.EventType(),
		PoolID:         evt.PoolID(),
		Timestamp:      c.getEventTimestamp(evt),
		SourceSequence: evt.SourceSequence(),
		Payload:        payload,
		StateHash:      stateHash,
		PrevHash:       prevHash,
	}

	output := CoreOutput{
		Envelope:   envelope,
		Batch:      batch,
		StateDelta: stateDigest,
		Correction: correction,
	}
	c.sequence++

	// Step 6: Post-checks
	if err := c.postCheckInvariants(evt, affected); err != nil {
		panic(fmt.Sprintf("FATAL: invariant violated: %v", err))
	}

	// Step 7: Emit. Persist channel uses a BLOCKING send (backpressure: the
	// core stalls until the persistence worker drains, so no event is lost).
	// Projection channel is non-blocking with drop; projections rebuild from
	// the event log if they fall behind. Replay emits nothing: the rows are
	// already persisted.
	if !c.replaying {
		select {
		case c.persistChan <- output:
		default:
			if c.metrics != nil {
				c.metrics.PersistBackpressure.Inc()
			}
			c.persistChan <- output
		}
		select {
		case c.projectionChan <- output:
		default:
			if c.metrics != nil {
				c.metrics.ProjectionDrops.Inc()
			}
		}
	}

	// Step 8: Mark as processed
	c.idempotency.MarkProcessed(eventType, idempotencyKey)

	if c.metrics != nil {
		c.metrics.CoreEventsApplied.WithLabelValues(eventType).Inc()
		c.metrics.CoreEventDuration.WithLabelValues(eventType).Observe(time.Since(start).Seconds())
		c.metrics.CoreSequence.Set(float64(c.sequence))
	}

	c.logger.Debug().
		Str("event_type", eventType).
		Int64("sequence", envelope.Sequence).
		Int("journals", len(batch.Journals)).
		Msg("event applied")

	return nil
}

// getPartition determines the partition key for sequence validation
func (c *DeterministicCore) getPartition(evt event.Event) string {
	if poolID := evt.PoolID(); poolID != nil {
		return fmt.Sprintf("pool:%s", poolID.String())
	}
	return "global"
}

// getEventTimestamp extracts the versioned timestamp from the event.
// The core MUST NOT call time.Now(): all timestamps are versioned inputs.
func (c *DeterministicCore) getEventTimestamp(evt event.Event) time.Time {
	switch e := evt.(type) {
	case *event.PoolBound:
		return e.Timestamp
	case *event.FundRequested:
		return e.Timestamp
	case *event.DefundRequested:
		return e.Timestamp
	case *event.PositionChanged:
		return e.Timestamp
	default:
		panic(fmt.Sprintf("FATAL: getEventTimestamp called with unhandled event type %T: deterministic core cannot use wall-clock time", evt))
	}
}

func (c *DeterministicCore) dispatchEvent(ctx context.Context, evt event.Event) (*ledger.Batch, *pool.Delta, *pool.Pool, error) {
	switch e := evt.(type) {
	case *event.PoolBound:
		return c.handlePoolBound(e)
	case *event.FundRequested:
		return c.handleFundRequested(ctx, e)
	case *event.DefundRequested:
		return c.handleDefundRequested(ctx, e)
	case *event.PositionChanged:
		return c.handlePositionChanged(ctx, e)
	default:
		return nil, nil, nil, fmt.Errorf("unhandled event type %T", evt)
	}
}

func (c *DeterministicCore) handlePoolBound(evt *event.PoolBound) (*ledger.Batch, *pool.Delta, *pool.Pool, error) {
	assetA, ok := ledger.GetAssetID(evt.AssetA)
	if !ok {
		return nil, nil, nil, fmt.Errorf("unknown asset: %s", evt.AssetA)
	}
	assetB, ok := ledger.GetAssetID(evt.AssetB)
	if !ok {
		return nil, nil, nil, fmt.Errorf("unknown asset: %s", evt.AssetB)
	}

	p, err := c.pools.Bind(evt.Pool, assetA, assetB)
	if err != nil {
		return nil, nil, nil, err
	}

	batch := c.journalGen.GenerateEmpty(evt.IdempotencyKey(), evt.Timestamp.UnixMicro())
	return batch, nil, p, nil
}

func (c *DeterministicCore) resolvePoolAsset(poolID uuid.UUID, asset string) (*pool.Pool, ledger.AssetID, pool.Slot, error) {
	assetID, ok := ledger.GetAssetID(asset)
	if !ok {
		return nil, 0, 0, fmt.Errorf("unknown asset: %s", asset)
	}

	p, err := c.pools.Get(poolID)
	if err != nil {
		return nil, 0, 0, err
	}

	slot, ok := p.SlotOf(assetID)
	if !ok {
		return nil, 0, 0, fmt.Errorf("asset %s not bound to pool %s", asset, poolID)
	}

	return p, assetID, slot, nil
}

func (c *DeterministicCore) handleFundRequested(ctx context.Context, evt *event.FundRequested) (*ledger.Batch, *pool.Delta, *pool.Pool, error) {
	p, assetID, slot, err := c.resolvePoolAsset(evt.Pool, evt.Asset)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := p.Fund(ctx, c.mover, evt.DepositorID, slot, evt.Amount); err != nil {
		if c.metrics != nil && errors.Is(err, pool.ErrTransferFailed) {
			c.metrics.TransferFailures.WithLabelValues("in").Inc()
		}
		return nil, nil, nil, err
	}

	c.updateReservoirGauge(p, slot)

	batch := c.journalGen.GenerateFund(
		evt.IdempotencyKey(), evt.DepositorID, assetID, evt.Amount, evt.Timestamp.UnixMicro())
	c.countJournals(batch)
	return batch, nil, p, nil
}

func (c *DeterministicCore) handleDefundRequested(ctx context.Context, evt *event.DefundRequested) (*ledger.Batch, *pool.Delta, *pool.Pool, error) {
	p, assetID, slot, err := c.resolvePoolAsset(evt.Pool, evt.Asset)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := p.Defund(ctx, c.mover, evt.DepositorID, slot, evt.Amount); err != nil {
		if c.metrics != nil {
			switch {
			case errors.Is(err, pool.ErrInsufficientBalance):
				c.metrics.DefundRejected.WithLabelValues("insufficient_balance").Inc()
			case errors.Is(err, pool.ErrInsufficientUnmatchedLiquidity):
				c.metrics.DefundRejected.WithLabelValues("insufficient_liquidity").Inc()
			case errors.Is(err, pool.ErrTransferFailed):
				c.metrics.TransferFailures.WithLabelValues("out").Inc()
			}
		}
		return nil, nil, nil, err
	}

	c.updateReservoirGauge(p, slot)

	batch := c.journalGen.GenerateDefund(
		evt.IdempotencyKey(), evt.DepositorID, assetID, evt.Amount, evt.Timestamp.UnixMicro())
	c.countJournals(batch)
	return batch, nil, p, nil
}

func (c *DeterministicCore) handlePositionChanged(ctx context.Context, evt *event.PositionChanged) (*ledger.Batch, *pool.Delta, *pool.Pool, error) {
	p, err := c.pools.Get(evt.Pool)
	if err != nil {
		return nil, nil, nil, err
	}

	slot, matchRequested := evt.Instruction.Slot()

	delta, err := p.ApplyPositionChange(ctx, c.authority,
		evt.Controller, evt.Salt, evt.DeltaA, evt.DeltaB, evt.Instruction)
	if err != nil {
		if c.metrics != nil && errors.Is(err, pool.ErrTransferFailed) && matchRequested {
			kind := "settle"
			if requestedNeed(evt, slot) > 0 {
				kind = "take"
			}
			c.metrics.SettlementCalls.WithLabelValues(kind, "failed").Inc()
		}
		return nil, nil, nil, err
	}

	ts := evt.Timestamp.UnixMicro()
	eventRef := evt.IdempotencyKey()

	var batch *ledger.Batch
	if !matchRequested || delta.IsZero() {
		batch = c.journalGen.GenerateEmpty(eventRef, ts)
	} else {
		assetID := p.Assets[slot]
		assetName, _ := ledger.GetAssetName(assetID)
		amount := delta.Get(slot)

		if amount < 0 {
			batch = c.journalGen.GenerateMatch(eventRef, p.ID, assetID, amount, ts)
			if c.metrics != nil {
				poolLabel := p.ID.String()
				if amount == requestedNeed(evt, slot) {
					c.metrics.MatchesFull.WithLabelValues(poolLabel).Inc()
				} else {
					c.metrics.MatchesPartial.WithLabelValues(poolLabel).Inc()
				}
				c.metrics.FrontedTotal.WithLabelValues(poolLabel, assetName).Add(float64(-amount))
				c.metrics.SettlementCalls.WithLabelValues("settle", "ok").Inc()
			}
		} else {
			batch = c.journalGen.GenerateUnwind(eventRef, p.ID, assetID, amount, ts)
			if c.metrics != nil {
				c.metrics.ReclaimedTotal.WithLabelValues(p.ID.String(), assetName).Add(float64(amount))
				c.metrics.SettlementCalls.WithLabelValues("take", "ok").Inc()
			}
		}
		c.updateReservoirGauge(p, slot)
	}

	c.countJournals(batch)
	return batch, &delta, p, nil
}

// requestedNeed returns the reported delta for the matched slot
func requestedNeed(evt *event.PositionChanged, slot pool.Slot) int64 {
	if slot == pool.SlotA {
		return evt.DeltaA
	}
	return evt.DeltaB
}

func (c *DeterministicCore) updateReservoirGauge(p *pool.Pool, slot pool.Slot) {
	if c.metrics == nil {
		return
	}
	assetName, _ := ledger.GetAssetName(p.Assets[slot])
	c.metrics.ReservoirSurplus.WithLabelValues(p.ID.String(), assetName).Set(float64(-p.Reservoir(slot)))
}

func (c *DeterministicCore) countJournals(batch *ledger.Batch) {
	if c.metrics == nil {
		return
	}
	for _, j := range batch.Journals {
		c.metrics.CoreJournals.WithLabelValues(fmt.Sprintf("%d", j.JournalType)).Inc()
	}
}

// computeStateDigest creates canonical bytes for the state hash: the balances
// of every account the batch touched, plus the affected pool's books.
func (c *DeterministicCore) computeStateDigest(batch *ledger.Batch, affected *pool.Pool) []byte {
	affectedAccounts := make(map[ledger.AccountKey]bool)

	if batch != nil {
		for _, j := range batch.Journals {
			affectedAccounts[j.DebitAccount] = true
			affectedAccounts[j.CreditAccount] = true
		}
	}

	accounts := make([]ledger.AccountKey, 0, len(affectedAccounts))
	for key := range affectedAccounts {
		accounts = append(accounts, key)
	}

	// Deterministic string ordering
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].AccountPath() < accounts[j].AccountPath()
	})

	digest := make([]byte, 0, len(accounts)*64+64)

	for _, key := range accounts {
		balance := c.balanceTracker.GetBalance(key)

		path := key.AccountPath()
		digest = append(digest, byte(len(path)))
		digest = append(digest, []byte(path)...)
		digest = appendInt64LE(digest, balance)
	}

	if affected != nil {
		digest = append(digest, affected.ID[:]...)
		for _, slot := range []pool.Slot{pool.SlotA, pool.SlotB} {
			digest = appendInt64LE(digest, affected.Reservoir(slot))
			digest = appendInt64LE(digest, affected.NetFunded(slot))
		}
	}

	return digest
}

func appendInt64LE(buf []byte, v int64) []byte {
	return append(buf,
		byte(v),
		byte(v>>8),
		byte(v>>16),
		byte(v>>24),
		byte(v>>32),
		byte(v>>40),
		byte(v>>48),
		byte(v>>56),
	)
}

// postCheckInvariants validates invariants after batch application
func (c *DeterministicCore) postCheckInvariants(evt event.Event, affected *pool.Pool) error {
	// Conservation: matching and unwinding only move value between the
	// reservoir and position debt
	if affected != nil {
		if err := affected.CheckConservation(); err != nil {
			return fmt.Errorf("post-check conservation: %w", err)
		}
	}

	switch e := evt.(type) {
	case *event.FundRequested:
		assetID, _ := ledger.GetAssetID(e.Asset)
		if err := c.validator.ValidateDepositorClaimNonNegative(e.DepositorID, assetID); err != nil {
			return fmt.Errorf("post-check claim: %w", err)
		}
	case *event.DefundRequested:
		assetID, _ := ledger.GetAssetID(e.Asset)
		if err := c.validator.ValidateDepositorClaimNonNegative(e.DepositorID, assetID); err != nil {
			return fmt.Errorf("post-check claim: %w", err)
		}
	case *event.PositionChanged:
		if affected != nil {
			if slot, ok := e.Instruction.Slot(); ok {
				assetID := affected.Assets[slot]
				if err := c.validator.ValidatePoolBooksOffset(affected.ID, assetID); err != nil {
					return fmt.Errorf("post-check pool books: %w", err)
				}
			}
		}
	}

	// Periodic global zero-sum check
	if c.sequence > 0 && c.sequence%1000 == 0 {
		if err := c.validator.ValidateGlobalBalance(); err != nil {
			return fmt.Errorf("post-check global (at seq %d): %w", c.sequence, err)
		}
	}

	return nil
}
