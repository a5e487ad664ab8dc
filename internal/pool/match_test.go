package pool_test

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"SidePool/internal/pool"

	"github.com/google/uuid"
)

func fundedPool(t *testing.T, surplus int64) (*pool.Pool, *fakeAuthority) {
	t.Helper()
	p := newTestPool(t)
	mustFund(t, p, &fakeMover{}, uuid.New(), pool.SlotB, surplus)
	return p, &fakeAuthority{}
}

// ============================================================================
// Test: Match
// ============================================================================

func TestMatch_FullCoverage(t *testing.T) {
	// reservoir[B] = -1000, need = -400: full match
	p, authority := fundedPool(t, 1000)
	pos := pool.NewPositionID(uuid.New(), salt(1))

	fronted, err := p.Match(context.Background(), authority, pos, pool.SlotB, -400)
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}

	if fronted != -400 {
		t.Errorf("fronted: got %d, want -400", fronted)
	}
	if got := p.Reservoir(pool.SlotB); got != -600 {
		t.Errorf("reservoir: got %d, want -600", got)
	}
	if got := p.Debt(pos, pool.SlotB); got != -400 {
		t.Errorf("debt: got %d, want -400", got)
	}
	if authority.settled != 400 {
		t.Errorf("settled: got %d, want 400", authority.settled)
	}
}

func TestMatch_ExactBoundaryIsFull(t *testing.T) {
	p, authority := fundedPool(t, 400)
	pos := pool.NewPositionID(uuid.New(), salt(1))

	fronted, err := p.Match(context.Background(), authority, pos, pool.SlotB, -400)
	if err != nil {
		t.Fatal(err)
	}
	if fronted != -400 || p.Reservoir(pool.SlotB) != 0 {
		t.Errorf("exact-surplus match: fronted=%d reservoir=%d", fronted, p.Reservoir(pool.SlotB))
	}
}

func TestMatch_PartialDrainsReservoirToZero(t *testing.T) {
	// Second contribution exceeds remaining surplus: fronts what is left,
	// leaves the reservoir at zero. The uncovered 300 is not tracked anywhere.
	p, authority := fundedPool(t, 1000)
	pos1 := pool.NewPositionID(uuid.New(), salt(1))
	pos2 := pool.NewPositionID(uuid.New(), salt(2))
	ctx := context.Background()

	if _, err := p.Match(ctx, authority, pos1, pool.SlotB, -400); err != nil {
		t.Fatal(err)
	}

	fronted, err := p.Match(ctx, authority, pos2, pool.SlotB, -900)
	if err != nil {
		t.Fatal(err)
	}

	if fronted != -600 {
		t.Errorf("fronted: got %d, want -600", fronted)
	}
	if got := p.Reservoir(pool.SlotB); got != 0 {
		t.Errorf("reservoir: got %d, want 0", got)
	}
	if got := p.Debt(pos2, pool.SlotB); got != -600 {
		t.Errorf("debt: got %d, want -600", got)
	}
}

func TestMatch_EmptyReservoirFrontsNothing(t *testing.T) {
	p := newTestPool(t)
	authority := &fakeAuthority{}
	pos := pool.NewPositionID(uuid.New(), salt(1))

	fronted, err := p.Match(context.Background(), authority, pos, pool.SlotB, -500)
	if err != nil {
		t.Fatal(err)
	}
	if fronted != 0 {
		t.Errorf("fronted: got %d, want 0", fronted)
	}
	if p.Debt(pos, pool.SlotB) != 0 {
		t.Error("no debt should be recorded for a zero match")
	}
	if authority.settled != 0 {
		t.Error("nothing should be settled for a zero match")
	}
}

func TestMatch_RejectsNonNegativeNeed(t *testing.T) {
	p, authority := fundedPool(t, 1000)
	pos := pool.NewPositionID(uuid.New(), salt(1))

	for _, need := range []int64{0, 100} {
		if _, err := p.Match(context.Background(), authority, pos, pool.SlotB, need); err == nil {
			t.Errorf("Match(need=%d) should fail", need)
		}
	}
}

func TestMatch_SettleFailureReversesBooks(t *testing.T) {
	p, authority := fundedPool(t, 1000)
	authority.failSettle = true
	pos := pool.NewPositionID(uuid.New(), salt(1))

	_, err := p.Match(context.Background(), authority, pos, pool.SlotB, -400)
	if !errors.Is(err, pool.ErrTransferFailed) {
		t.Fatalf("want ErrTransferFailed, got %v", err)
	}

	if p.Reservoir(pool.SlotB) != -1000 {
		t.Errorf("reservoir: got %d, want -1000", p.Reservoir(pool.SlotB))
	}
	if p.Debt(pos, pool.SlotB) != 0 {
		t.Errorf("debt: got %d, want 0", p.Debt(pos, pool.SlotB))
	}
	if err := p.CheckConservation(); err != nil {
		t.Errorf("conservation after rollback: %v", err)
	}
}

// ============================================================================
// Test: Unwind
// ============================================================================

func TestUnwind_PartialThenFinal(t *testing.T) {
	p, authority := fundedPool(t, 1000)
	pos := pool.NewPositionID(uuid.New(), salt(1))
	ctx := context.Background()

	if _, err := p.Match(ctx, authority, pos, pool.SlotB, -400); err != nil {
		t.Fatal(err)
	}
	reservoirAfterMatch := p.Reservoir(pool.SlotB) // -600

	// Withdrawal of 250 against debt -400: residual -150, reclaim all 250
	reclaimed, err := p.Unwind(ctx, authority, pos, pool.SlotB, 250)
	if err != nil {
		t.Fatal(err)
	}
	if reclaimed != 250 {
		t.Errorf("reclaimed: got %d, want 250", reclaimed)
	}
	if got := p.Debt(pos, pool.SlotB); got != -150 {
		t.Errorf("debt: got %d, want -150", got)
	}
	if got := p.Reservoir(pool.SlotB); got != reservoirAfterMatch-250 {
		t.Errorf("reservoir: got %d, want %d", got, reservoirAfterMatch-250)
	}

	// Withdrawal of 300 against debt -150: residual +150, reclaim the debt only
	reclaimed, err = p.Unwind(ctx, authority, pos, pool.SlotB, 300)
	if err != nil {
		t.Fatal(err)
	}
	if reclaimed != 150 {
		t.Errorf("reclaimed: got %d, want 150", reclaimed)
	}
	if got := p.Debt(pos, pool.SlotB); got != 0 {
		t.Errorf("debt: got %d, want 0", got)
	}
	if authority.taken != 400 {
		t.Errorf("taken total: got %d, want 400", authority.taken)
	}
}

func TestUnwind_NoDebtReclaimsNothing(t *testing.T) {
	p, authority := fundedPool(t, 1000)
	pos := pool.NewPositionID(uuid.New(), salt(9))

	reclaimed, err := p.Unwind(context.Background(), authority, pos, pool.SlotB, 500)
	if err != nil {
		t.Fatal(err)
	}
	if reclaimed != 0 {
		t.Errorf("reclaimed: got %d, want 0", reclaimed)
	}
	if p.Reservoir(pool.SlotB) != -1000 {
		t.Error("reservoir mutated by zero unwind")
	}
	if authority.taken != 0 {
		t.Error("nothing should be taken for a zero unwind")
	}
}

func TestUnwind_RejectsNonPositiveAmount(t *testing.T) {
	p, authority := fundedPool(t, 1000)
	pos := pool.NewPositionID(uuid.New(), salt(1))

	for _, amount := range []int64{0, -10} {
		if _, err := p.Unwind(context.Background(), authority, pos, pool.SlotB, amount); err == nil {
			t.Errorf("Unwind(amount=%d) should fail", amount)
		}
	}
}

func TestUnwind_TakeFailureReversesBooks(t *testing.T) {
	p, authority := fundedPool(t, 1000)
	pos := pool.NewPositionID(uuid.New(), salt(1))
	ctx := context.Background()

	if _, err := p.Match(ctx, authority, pos, pool.SlotB, -400); err != nil {
		t.Fatal(err)
	}

	authority.failTake = true
	_, err := p.Unwind(ctx, authority, pos, pool.SlotB, 250)
	if !errors.Is(err, pool.ErrTransferFailed) {
		t.Fatalf("want ErrTransferFailed, got %v", err)
	}

	if got := p.Debt(pos, pool.SlotB); got != -400 {
		t.Errorf("debt: got %d, want -400", got)
	}
	if got := p.Reservoir(pool.SlotB); got != -600 {
		t.Errorf("reservoir: got %d, want -600", got)
	}
}

func TestUnwind_ExtremeMagnitudesStayExact(t *testing.T) {
	// A full fund/match/unwind cycle at the top of the int64 range runs the
	// reclaim path's checked reservoir arithmetic at its limits
	const huge = math.MaxInt64
	p := newTestPool(t)
	mustFund(t, p, &fakeMover{}, uuid.New(), pool.SlotB, huge)
	authority := &fakeAuthority{}
	pos := pool.NewPositionID(uuid.New(), salt(1))
	ctx := context.Background()

	if _, err := p.Match(ctx, authority, pos, pool.SlotB, -huge); err != nil {
		t.Fatalf("match: %v", err)
	}
	if got := p.Reservoir(pool.SlotB); got != 0 {
		t.Fatalf("reservoir after match = %d, want 0", got)
	}

	reclaimed, err := p.Unwind(ctx, authority, pos, pool.SlotB, huge)
	if err != nil {
		t.Fatalf("unwind: %v", err)
	}
	if reclaimed != huge {
		t.Errorf("reclaimed = %d, want %d", reclaimed, int64(huge))
	}
	if got := p.Reservoir(pool.SlotB); got != -huge {
		t.Errorf("reservoir after unwind = %d, want %d", got, int64(-huge))
	}
	if got := p.Debt(pos, pool.SlotB); got != 0 {
		t.Errorf("debt after unwind = %d, want 0", got)
	}
	if err := p.CheckConservation(); err != nil {
		t.Errorf("conservation violated: %v", err)
	}
}

func TestUnwind_ArbitraryPartialsConvergeToZeroDebt(t *testing.T) {
	// Repeated unwinds in arbitrary increments must reclaim exactly
	// min(Σ amounts, original debt magnitude) and never turn the debt positive.
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		p, authority := fundedPool(t, 10_000)
		pos := pool.NewPositionID(uuid.New(), salt(1))
		ctx := context.Background()

		const originalDebt = 4_321
		if _, err := p.Match(ctx, authority, pos, pool.SlotB, -originalDebt); err != nil {
			t.Fatal(err)
		}

		var totalAmount, totalReclaimed int64
		for step := 0; step < 20; step++ {
			amount := int64(rng.Intn(700) + 1)
			reclaimed, err := p.Unwind(ctx, authority, pos, pool.SlotB, amount)
			if err != nil {
				t.Fatal(err)
			}
			if reclaimed > amount {
				t.Fatalf("trial %d: reclaimed %d exceeds amount %d", trial, reclaimed, amount)
			}
			if debt := p.Debt(pos, pool.SlotB); debt > 0 {
				t.Fatalf("trial %d: debt turned positive: %d", trial, debt)
			}
			totalAmount += amount
			totalReclaimed += reclaimed
		}

		want := totalAmount
		if want > originalDebt {
			want = originalDebt
		}
		if totalReclaimed != want {
			t.Fatalf("trial %d: reclaimed %d, want min(%d, %d)=%d",
				trial, totalReclaimed, totalAmount, int64(originalDebt), want)
		}
		if err := p.CheckConservation(); err != nil {
			t.Fatalf("trial %d: %v", trial, err)
		}
	}
}

// ============================================================================
// Test: ApplyPositionChange
// ============================================================================

func TestApplyPositionChange_NoInstructionIsZeroDelta(t *testing.T) {
	p, authority := fundedPool(t, 1000)

	delta, err := p.ApplyPositionChange(context.Background(), authority,
		uuid.New(), salt(1), -400, -400, pool.InstructionNone)
	if err != nil {
		t.Fatal(err)
	}
	if !delta.IsZero() {
		t.Errorf("delta: got %+v, want zero", delta)
	}
	if p.Reservoir(pool.SlotB) != -1000 {
		t.Error("reservoir mutated without an instruction")
	}
}

func TestApplyPositionChange_MatchesSelectedSlotOnly(t *testing.T) {
	p, authority := fundedPool(t, 1000)
	controller := uuid.New()

	delta, err := p.ApplyPositionChange(context.Background(), authority,
		controller, salt(1), -250, -400, pool.InstructionMatchB)
	if err != nil {
		t.Fatal(err)
	}

	if delta.A != 0 || delta.B != -400 {
		t.Errorf("delta: got %+v, want {0, -400}", delta)
	}
	// The asset-A leg is untouched: the caller supplies it directly
	if p.Reservoir(pool.SlotA) != 0 {
		t.Error("asset-A reservoir mutated")
	}
}

func TestApplyPositionChange_PositiveDeltaUnwinds(t *testing.T) {
	p, authority := fundedPool(t, 1000)
	controller := uuid.New()
	ctx := context.Background()

	if _, err := p.ApplyPositionChange(ctx, authority, controller, salt(1), 0, -400, pool.InstructionMatchB); err != nil {
		t.Fatal(err)
	}

	delta, err := p.ApplyPositionChange(ctx, authority, controller, salt(1), 0, 250, pool.InstructionMatchB)
	if err != nil {
		t.Fatal(err)
	}
	if delta.B != 250 {
		t.Errorf("delta.B: got %d, want 250", delta.B)
	}
	if got := p.Debt(pool.NewPositionID(controller, salt(1)), pool.SlotB); got != -150 {
		t.Errorf("debt: got %d, want -150", got)
	}
}

func TestApplyPositionChange_ZeroSelectedDeltaIsNoop(t *testing.T) {
	p, authority := fundedPool(t, 1000)

	delta, err := p.ApplyPositionChange(context.Background(), authority,
		uuid.New(), salt(1), -400, 0, pool.InstructionMatchB)
	if err != nil {
		t.Fatal(err)
	}
	if !delta.IsZero() {
		t.Errorf("delta: got %+v, want zero", delta)
	}
}
