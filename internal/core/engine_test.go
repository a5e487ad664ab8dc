package core

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"SidePool/internal/event"
	"SidePool/internal/ledger"
	"SidePool/internal/pool"

	"github.com/google/uuid"
)

type nopMover struct{}

func (nopMover) TransferIn(context.Context, ledger.AssetID, uuid.UUID, int64) error  { return nil }
func (nopMover) TransferOut(context.Context, ledger.AssetID, uuid.UUID, int64) error { return nil }

type recordingAuthority struct {
	settled int64
	taken   int64
}

func (a *recordingAuthority) Settle(_ context.Context, _ ledger.AssetID, amount int64) error {
	a.settled += amount
	return nil
}

func (a *recordingAuthority) Take(_ context.Context, _ ledger.AssetID, amount int64) error {
	a.taken += amount
	return nil
}

type testHarness struct {
	core       *DeterministicCore
	authority  *recordingAuthority
	persist    chan CoreOutput
	projection chan CoreOutput
}

func newTestHarness() *testHarness {
	authority := &recordingAuthority{}
	persist := make(chan CoreOutput, 256)
	projection := make(chan CoreOutput, 256)
	core := NewDeterministicCore(0, nopMover{}, authority, persist, projection, nil, nil)
	return &testHarness{
		core:       core,
		authority:  authority,
		persist:    persist,
		projection: projection,
	}
}

func (h *testHarness) drain(t *testing.T) CoreOutput {
	t.Helper()
	select {
	case out := <-h.persist:
		<-h.projection
		return out
	default:
		t.Fatal("no persist output emitted")
		return CoreOutput{}
	}
}

var testStart = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func bindPool(t *testing.T, h *testHarness, poolID uuid.UUID, seq int64) {
	t.Helper()
	err := h.core.ProcessEvent(context.Background(), &event.PoolBound{
		Pool:      poolID,
		AssetA:    "USDC",
		AssetB:    "WETH",
		Sequence:  seq,
		Timestamp: testStart,
	})
	if err != nil {
		t.Fatalf("bind pool: %v", err)
	}
	h.drain(t)
}

func TestProcessEvent_PoolBoundAndFund(t *testing.T) {
	h := newTestHarness()
	poolID := uuid.New()
	depositor := uuid.New()

	bindPool(t, h, poolID, 0)

	err := h.core.ProcessEvent(context.Background(), &event.FundRequested{
		RequestID:   uuid.New(),
		Pool:        poolID,
		DepositorID: depositor,
		Asset:       "USDC",
		Amount:      1000,
		Sequence:    1,
		Timestamp:   testStart.Add(time.Second),
	})
	if err != nil {
		t.Fatalf("fund: %v", err)
	}
	out := h.drain(t)

	if out.Envelope.Sequence != 1 {
		t.Errorf("envelope sequence = %d, want 1", out.Envelope.Sequence)
	}
	if len(out.Batch.Journals) != 1 {
		t.Fatalf("fund batch journals = %d, want 1", len(out.Batch.Journals))
	}

	p, err := h.core.Pools().Get(poolID)
	if err != nil {
		t.Fatalf("get pool: %v", err)
	}
	if got := p.Claim(depositor, pool.SlotA); got != 1000 {
		t.Errorf("claim = %d, want 1000", got)
	}
	if got := p.Reservoir(pool.SlotA); got != -1000 {
		t.Errorf("reservoir = %d, want -1000", got)
	}
	if got := h.core.Balances().GetDepositorClaim(depositor, ledger.AssetUSDC); got != 1000 {
		t.Errorf("ledger claim = %d, want 1000", got)
	}
}

func TestProcessEvent_MatchThenUnwind(t *testing.T) {
	h := newTestHarness()
	poolID := uuid.New()
	depositor := uuid.New()
	controller := uuid.New()
	salt := [32]byte{7}

	bindPool(t, h, poolID, 0)

	if err := h.core.ProcessEvent(context.Background(), &event.FundRequested{
		RequestID: uuid.New(), Pool: poolID, DepositorID: depositor,
		Asset: "USDC", Amount: 1000, Sequence: 1, Timestamp: testStart,
	}); err != nil {
		t.Fatalf("fund: %v", err)
	}
	h.drain(t)

	err := h.core.ProcessEvent(context.Background(), &event.PositionChanged{
		ChangeID: uuid.New(), Pool: poolID,
		Controller: controller, Salt: salt,
		DeltaA: -400, DeltaB: 12345,
		Instruction: pool.InstructionMatchA,
		Sequence:    2, Timestamp: testStart,
	})
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	out := h.drain(t)

	if out.Correction == nil {
		t.Fatal("match emitted no correction delta")
	}
	if out.Correction.A != -400 || out.Correction.B != 0 {
		t.Errorf("correction = %+v, want {A:-400 B:0}", *out.Correction)
	}
	if len(out.Batch.Journals) != 2 {
		t.Errorf("match batch journals = %d, want 2 (front + settle)", len(out.Batch.Journals))
	}
	if h.authority.settled != 400 {
		t.Errorf("settled = %d, want 400", h.authority.settled)
	}

	p, _ := h.core.Pools().Get(poolID)
	if got := p.Reservoir(pool.SlotA); got != -600 {
		t.Errorf("reservoir after match = %d, want -600", got)
	}
	pos := pool.NewPositionID(controller, salt)
	if got := p.Debt(pos, pool.SlotA); got != -400 {
		t.Errorf("debt after match = %d, want -400", got)
	}

	err = h.core.ProcessEvent(context.Background(), &event.PositionChanged{
		ChangeID: uuid.New(), Pool: poolID,
		Controller: controller, Salt: salt,
		DeltaA: 400, DeltaB: 0,
		Instruction: pool.InstructionMatchA,
		Sequence:    3, Timestamp: testStart,
	})
	if err != nil {
		t.Fatalf("unwind: %v", err)
	}
	out = h.drain(t)

	if out.Correction.A != 400 {
		t.Errorf("unwind correction A = %d, want 400", out.Correction.A)
	}
	if h.authority.taken != 400 {
		t.Errorf("taken = %d, want 400", h.authority.taken)
	}
	if got := p.Debt(pos, pool.SlotA); got != 0 {
		t.Errorf("debt after unwind = %d, want 0", got)
	}
	if got := p.Reservoir(pool.SlotA); got != -1000 {
		t.Errorf("reservoir after unwind = %d, want -1000", got)
	}
}

func TestProcessEvent_NoInstructionIsStateOnly(t *testing.T) {
	h := newTestHarness()
	poolID := uuid.New()
	bindPool(t, h, poolID, 0)

	err := h.core.ProcessEvent(context.Background(), &event.PositionChanged{
		ChangeID: uuid.New(), Pool: poolID,
		Controller: uuid.New(), Salt: [32]byte{1},
		DeltaA: -500, DeltaB: 500,
		Instruction: pool.InstructionNone,
		Sequence:    1, Timestamp: testStart,
	})
	if err != nil {
		t.Fatalf("no-instruction change: %v", err)
	}
	out := h.drain(t)

	if out.Correction == nil || !out.Correction.IsZero() {
		t.Errorf("correction = %v, want zero delta", out.Correction)
	}
	if len(out.Batch.Journals) != 0 {
		t.Errorf("journals = %d, want 0", len(out.Batch.Journals))
	}
	if h.authority.settled != 0 || h.authority.taken != 0 {
		t.Error("settlement authority was called for a state-only change")
	}
}

func TestProcessEvent_DuplicateIsSkipped(t *testing.T) {
	h := newTestHarness()
	poolID := uuid.New()
	depositor := uuid.New()
	bindPool(t, h, poolID, 0)

	evt := &event.FundRequested{
		RequestID: uuid.New(), Pool: poolID, DepositorID: depositor,
		Asset: "USDC", Amount: 500, Sequence: 1, Timestamp: testStart,
	}
	if err := h.core.ProcessEvent(context.Background(), evt); err != nil {
		t.Fatalf("first delivery: %v", err)
	}
	h.drain(t)

	// Redelivery with the same idempotency key and source sequence
	if err := h.core.ProcessEvent(context.Background(), evt); err != nil {
		t.Fatalf("redelivery: %v", err)
	}

	select {
	case <-h.persist:
		t.Error("duplicate produced persist output")
	default:
	}

	p, _ := h.core.Pools().Get(poolID)
	if got := p.Claim(depositor, pool.SlotA); got != 500 {
		t.Errorf("claim after redelivery = %d, want 500 (applied once)", got)
	}
}

func TestProcessEvent_SequenceGapRejected(t *testing.T) {
	h := newTestHarness()
	poolID := uuid.New()
	bindPool(t, h, poolID, 0)

	err := h.core.ProcessEvent(context.Background(), &event.FundRequested{
		RequestID: uuid.New(), Pool: poolID, DepositorID: uuid.New(),
		Asset: "USDC", Amount: 100, Sequence: 5, Timestamp: testStart,
	})
	if err == nil {
		t.Fatal("expected sequence gap error")
	}

	select {
	case <-h.persist:
		t.Error("gapped event produced persist output")
	default:
	}
}

func TestProcessEvent_UnknownPool(t *testing.T) {
	h := newTestHarness()

	err := h.core.ProcessEvent(context.Background(), &event.FundRequested{
		RequestID: uuid.New(), Pool: uuid.New(), DepositorID: uuid.New(),
		Asset: "USDC", Amount: 100, Sequence: 0, Timestamp: testStart,
	})
	if !errors.Is(err, pool.ErrUnknownPool) {
		t.Errorf("err = %v, want ErrUnknownPool", err)
	}
}

func TestProcessEvent_DefundGuardsSurface(t *testing.T) {
	h := newTestHarness()
	poolID := uuid.New()
	depositor := uuid.New()
	bindPool(t, h, poolID, 0)

	if err := h.core.ProcessEvent(context.Background(), &event.FundRequested{
		RequestID: uuid.New(), Pool: poolID, DepositorID: depositor,
		Asset: "USDC", Amount: 1000, Sequence: 1, Timestamp: testStart,
	}); err != nil {
		t.Fatalf("fund: %v", err)
	}
	h.drain(t)

	if err := h.core.ProcessEvent(context.Background(), &event.PositionChanged{
		ChangeID: uuid.New(), Pool: poolID,
		Controller: uuid.New(), Salt: [32]byte{2},
		DeltaA: -700, Instruction: pool.InstructionMatchA,
		Sequence: 2, Timestamp: testStart,
	}); err != nil {
		t.Fatalf("match: %v", err)
	}
	h.drain(t)

	// Only 300 of the 1000 remains unmatched
	err := h.core.ProcessEvent(context.Background(), &event.DefundRequested{
		RequestID: uuid.New(), Pool: poolID, DepositorID: depositor,
		Asset: "USDC", Amount: 301, Sequence: 3, Timestamp: testStart,
	})
	if !errors.Is(err, pool.ErrInsufficientUnmatchedLiquidity) {
		t.Errorf("err = %v, want ErrInsufficientUnmatchedLiquidity", err)
	}

	// A rejected event consumed its source sequence slot, so the retry
	// arrives with the next one
	err = h.core.ProcessEvent(context.Background(), &event.DefundRequested{
		RequestID: uuid.New(), Pool: poolID, DepositorID: depositor,
		Asset: "USDC", Amount: 300, Sequence: 4, Timestamp: testStart,
	})
	if err != nil {
		t.Fatalf("defund within unmatched liquidity: %v", err)
	}
	out := h.drain(t)
	if len(out.Batch.Journals) != 1 {
		t.Errorf("defund journals = %d, want 1", len(out.Batch.Journals))
	}
}

func TestProcessEvent_HashChainLinks(t *testing.T) {
	h := newTestHarness()
	poolID := uuid.New()
	depositor := uuid.New()
	bindPool(t, h, poolID, 0)

	var prev *event.EventEnvelope
	for i := 1; i <= 5; i++ {
		err := h.core.ProcessEvent(context.Background(), &event.FundRequested{
			RequestID: uuid.New(), Pool: poolID, DepositorID: depositor,
			Asset: "USDC", Amount: int64(i * 10), Sequence: int64(i), Timestamp: testStart,
		})
		if err != nil {
			t.Fatalf("fund %d: %v", i, err)
		}
		out := h.drain(t)

		if prev != nil {
			if !bytes.Equal(out.Envelope.PrevHash[:], prev.StateHash[:]) {
				t.Fatalf("envelope %d prev_hash does not link to envelope %d state_hash",
					out.Envelope.Sequence, prev.Sequence)
			}
		}
		if out.Envelope.StateHash == out.Envelope.PrevHash {
			t.Fatal("state hash did not advance")
		}
		prev = out.Envelope
	}
}

func TestProcessEvent_RestoreResumesChain(t *testing.T) {
	h := newTestHarness()
	poolID := uuid.New()
	depositor := uuid.New()
	bindPool(t, h, poolID, 0)

	if err := h.core.ProcessEvent(context.Background(), &event.FundRequested{
		RequestID: uuid.New(), Pool: poolID, DepositorID: depositor,
		Asset: "USDC", Amount: 1000, Sequence: 1, Timestamp: testStart,
	}); err != nil {
		t.Fatalf("fund: %v", err)
	}
	out := h.drain(t)

	// Snapshot state and rebuild a fresh core from it
	balances := h.core.Balances().Snapshot()
	var poolStates []pool.State
	for _, p := range h.core.Pools().All() {
		poolStates = append(poolStates, p.SnapshotState())
	}
	partitions := h.core.SequenceValidator().Snapshot()

	h2 := newTestHarness()
	h2.core.RestoreFrom(
		h.core.Sequence(),
		out.Envelope.StateHash,
		balances,
		poolStates,
		partitions,
		nil,
	)

	if err := h2.core.ProcessEvent(context.Background(), &event.FundRequested{
		RequestID: uuid.New(), Pool: poolID, DepositorID: depositor,
		Asset: "USDC", Amount: 50, Sequence: 2, Timestamp: testStart,
	}); err != nil {
		t.Fatalf("fund after restore: %v", err)
	}
	out2 := h2.drain(t)

	if out2.Envelope.Sequence != out.Envelope.Sequence+1 {
		t.Errorf("restored sequence = %d, want %d", out2.Envelope.Sequence, out.Envelope.Sequence+1)
	}
	if !bytes.Equal(out2.Envelope.PrevHash[:], out.Envelope.StateHash[:]) {
		t.Error("restored chain does not link to snapshot tip")
	}

	p, _ := h2.core.Pools().Get(poolID)
	if got := p.Claim(depositor, pool.SlotA); got != 1050 {
		t.Errorf("claim after restore+fund = %d, want 1050", got)
	}
}

func TestProcessEvent_RestartReplayRebuildsState(t *testing.T) {
	live := newTestHarness()
	poolID := uuid.New()
	depositor := uuid.New()

	bind := &event.PoolBound{
		Pool: poolID, AssetA: "USDC", AssetB: "WETH",
		Sequence: 0, Timestamp: testStart,
	}
	fund := &event.FundRequested{
		RequestID: uuid.New(), Pool: poolID, DepositorID: depositor,
		Asset: "WETH", Amount: 1000, Sequence: 1, Timestamp: testStart,
	}

	// The live run leaves both events in the event log, so a restart's DB
	// dedup tier reports them as already processed.
	logged := map[string]bool{}
	for _, evt := range []event.Event{bind, fund} {
		if err := live.core.ProcessEvent(context.Background(), evt); err != nil {
			t.Fatalf("live delivery: %v", err)
		}
		out := live.drain(t)
		logged[out.Envelope.EventType.String()+":"+out.Envelope.IdempotencyKey] = true
	}

	// Restart: replay runs with the DB tier detached, then attaches it for
	// live traffic. With the tier attached during replay every logged event
	// would read as a duplicate of its own row and nothing would be rebuilt.
	restarted := newTestHarness()
	restarted.core.BeginReplay()
	for _, evt := range []event.Event{bind, fund} {
		if err := restarted.core.ProcessEvent(context.Background(), evt); err != nil {
			t.Fatalf("replay: %v", err)
		}
	}
	restarted.core.EndReplay(&fakeDBChecker{keys: logged})

	if got, want := restarted.core.Sequence(), live.core.Sequence(); got != want {
		t.Errorf("sequence after replay = %d, want %d", got, want)
	}
	if restarted.core.StateHash() != live.core.StateHash() {
		t.Error("replayed chain tip does not match the live tip")
	}
	p, err := restarted.core.Pools().Get(poolID)
	if err != nil {
		t.Fatalf("pool not rebuilt by replay: %v", err)
	}
	if got := p.Reservoir(pool.SlotB); got != -1000 {
		t.Errorf("reservoir after replay = %d, want -1000", got)
	}
	if got := restarted.core.Balances().GetDepositorClaim(depositor, ledger.AssetWETH); got != 1000 {
		t.Errorf("claim after replay = %d, want 1000", got)
	}

	// Replay emits nothing: the replayed rows already exist in the log
	select {
	case <-restarted.persist:
		t.Error("replay re-emitted a persist output")
	default:
	}

	// Redelivery of a logged event after replay is a no-op
	if err := restarted.core.ProcessEvent(context.Background(), fund); err != nil {
		t.Fatalf("redelivery after replay: %v", err)
	}
	if got := p.Claim(depositor, pool.SlotB); got != 1000 {
		t.Errorf("claim after redelivery = %d, want 1000 (applied once)", got)
	}
}

func TestProcessEvent_ConservationAcrossLifecycle(t *testing.T) {
	h := newTestHarness()
	poolID := uuid.New()
	depositor := uuid.New()
	controller := uuid.New()
	bindPool(t, h, poolID, 0)

	seq := int64(1)
	step := func(evt event.Event) {
		t.Helper()
		if err := h.core.ProcessEvent(context.Background(), evt); err != nil {
			t.Fatalf("step seq=%d: %v", seq, err)
		}
		h.drain(t)
		seq++
	}

	step(&event.FundRequested{RequestID: uuid.New(), Pool: poolID, DepositorID: depositor,
		Asset: "USDC", Amount: 5000, Sequence: seq, Timestamp: testStart})
	step(&event.PositionChanged{ChangeID: uuid.New(), Pool: poolID,
		Controller: controller, Salt: [32]byte{1}, DeltaA: -2000,
		Instruction: pool.InstructionMatchA, Sequence: seq, Timestamp: testStart})
	step(&event.PositionChanged{ChangeID: uuid.New(), Pool: poolID,
		Controller: controller, Salt: [32]byte{1}, DeltaA: 800,
		Instruction: pool.InstructionMatchA, Sequence: seq, Timestamp: testStart})
	step(&event.DefundRequested{RequestID: uuid.New(), Pool: poolID, DepositorID: depositor,
		Asset: "USDC", Amount: 1000, Sequence: seq, Timestamp: testStart})

	p, _ := h.core.Pools().Get(poolID)
	if err := p.CheckConservation(); err != nil {
		t.Errorf("conservation violated: %v", err)
	}

	for asset, sum := range h.core.Balances().ComputeGlobalBalance() {
		if sum != 0 {
			t.Errorf("global balance for asset %d = %d, want 0", asset, sum)
		}
	}
}
