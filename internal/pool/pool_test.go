package pool_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"SidePool/internal/ledger"
	"SidePool/internal/pool"

	"github.com/google/uuid"
)

// fakeMover records transfers and can be told to reject them.
type fakeMover struct {
	failIn  bool
	failOut bool
	in      int64
	out     int64
}

func (m *fakeMover) TransferIn(_ context.Context, _ ledger.AssetID, _ uuid.UUID, amount int64) error {
	if m.failIn {
		return errors.New("custody rejected")
	}
	m.in += amount
	return nil
}

func (m *fakeMover) TransferOut(_ context.Context, _ ledger.AssetID, _ uuid.UUID, amount int64) error {
	if m.failOut {
		return errors.New("custody rejected")
	}
	m.out += amount
	return nil
}

// fakeAuthority records settlement flows and can be told to reject them.
type fakeAuthority struct {
	failSettle bool
	failTake   bool
	settled    int64
	taken      int64
}

func (a *fakeAuthority) Settle(_ context.Context, _ ledger.AssetID, amount int64) error {
	if a.failSettle {
		return errors.New("authority rejected")
	}
	a.settled += amount
	return nil
}

func (a *fakeAuthority) Take(_ context.Context, _ ledger.AssetID, amount int64) error {
	if a.failTake {
		return errors.New("authority rejected")
	}
	a.taken += amount
	return nil
}

const (
	assetUSDC = ledger.AssetID(1)
	assetWETH = ledger.AssetID(3)
)

func newTestPool(t *testing.T) *pool.Pool {
	t.Helper()
	return pool.NewPool(uuid.New(), assetUSDC, assetWETH)
}

// ============================================================================
// Test: Fund / Defund
// ============================================================================

func TestFund_CreditsClaimAndReservoir(t *testing.T) {
	p := newTestPool(t)
	mover := &fakeMover{}
	dep := uuid.New()

	if err := p.Fund(context.Background(), mover, dep, pool.SlotB, 1000); err != nil {
		t.Fatalf("Fund failed: %v", err)
	}

	if got := p.Claim(dep, pool.SlotB); got != 1000 {
		t.Errorf("claim: got %d, want 1000", got)
	}
	if got := p.Reservoir(pool.SlotB); got != -1000 {
		t.Errorf("reservoir: got %d, want -1000", got)
	}
	if mover.in != 1000 {
		t.Errorf("transfer in: got %d, want 1000", mover.in)
	}
}

func TestFund_RejectsNonPositiveAmount(t *testing.T) {
	p := newTestPool(t)
	mover := &fakeMover{}

	for _, amount := range []int64{0, -5} {
		if err := p.Fund(context.Background(), mover, uuid.New(), pool.SlotA, amount); err == nil {
			t.Errorf("Fund(%d) should fail", amount)
		}
	}
}

func TestFund_TransferFailureLeavesBooksUnchanged(t *testing.T) {
	p := newTestPool(t)
	mover := &fakeMover{failIn: true}
	dep := uuid.New()

	err := p.Fund(context.Background(), mover, dep, pool.SlotA, 500)
	if !errors.Is(err, pool.ErrTransferFailed) {
		t.Fatalf("want ErrTransferFailed, got %v", err)
	}

	if p.Claim(dep, pool.SlotA) != 0 || p.Reservoir(pool.SlotA) != 0 {
		t.Error("books mutated despite transfer failure")
	}
}

func TestDefund_ReturnsClaimAndShrinksReservoir(t *testing.T) {
	p := newTestPool(t)
	mover := &fakeMover{}
	dep := uuid.New()

	mustFund(t, p, mover, dep, pool.SlotA, 1000)

	if err := p.Defund(context.Background(), mover, dep, pool.SlotA, 400); err != nil {
		t.Fatalf("Defund failed: %v", err)
	}

	if got := p.Claim(dep, pool.SlotA); got != 600 {
		t.Errorf("claim: got %d, want 600", got)
	}
	if got := p.Reservoir(pool.SlotA); got != -600 {
		t.Errorf("reservoir: got %d, want -600", got)
	}
	if mover.out != 400 {
		t.Errorf("transfer out: got %d, want 400", mover.out)
	}
}

func TestDefund_InsufficientBalance(t *testing.T) {
	p := newTestPool(t)
	mover := &fakeMover{}
	dep := uuid.New()

	mustFund(t, p, mover, dep, pool.SlotA, 100)

	err := p.Defund(context.Background(), mover, dep, pool.SlotA, 101)
	if !errors.Is(err, pool.ErrInsufficientBalance) {
		t.Fatalf("want ErrInsufficientBalance, got %v", err)
	}
	if p.Claim(dep, pool.SlotA) != 100 {
		t.Error("claim mutated by rejected defund")
	}
}

func TestDefund_InsufficientUnmatchedLiquidity(t *testing.T) {
	p := newTestPool(t)
	mover := &fakeMover{}
	authority := &fakeAuthority{}
	dep := uuid.New()

	mustFund(t, p, mover, dep, pool.SlotB, 1000)

	// Front 700 to a position: only 300 of unmatched surplus remains
	pos := pool.NewPositionID(uuid.New(), salt(1))
	if _, err := p.Match(context.Background(), authority, pos, pool.SlotB, -700); err != nil {
		t.Fatalf("Match failed: %v", err)
	}

	// The depositor still has a claim of 1000 but only 300 is withdrawable
	err := p.Defund(context.Background(), mover, dep, pool.SlotB, 301)
	if !errors.Is(err, pool.ErrInsufficientUnmatchedLiquidity) {
		t.Fatalf("want ErrInsufficientUnmatchedLiquidity, got %v", err)
	}

	// Exactly the remaining surplus is fine
	if err := p.Defund(context.Background(), mover, dep, pool.SlotB, 300); err != nil {
		t.Fatalf("Defund of remaining surplus failed: %v", err)
	}
	if got := p.Reservoir(pool.SlotB); got != 0 {
		t.Errorf("reservoir: got %d, want 0", got)
	}
}

func TestDefund_TransferFailureLeavesBooksUnchanged(t *testing.T) {
	p := newTestPool(t)
	mover := &fakeMover{}
	dep := uuid.New()

	mustFund(t, p, mover, dep, pool.SlotA, 1000)
	mover.failOut = true

	err := p.Defund(context.Background(), mover, dep, pool.SlotA, 400)
	if !errors.Is(err, pool.ErrTransferFailed) {
		t.Fatalf("want ErrTransferFailed, got %v", err)
	}
	if p.Claim(dep, pool.SlotA) != 1000 || p.Reservoir(pool.SlotA) != -1000 {
		t.Error("books mutated despite transfer failure")
	}
}

func TestFundDefund_SequenceSumsAndNeverNegative(t *testing.T) {
	p := newTestPool(t)
	mover := &fakeMover{}
	dep := uuid.New()

	steps := []struct {
		fund   bool
		amount int64
		ok     bool
	}{
		{true, 500, true},
		{false, 200, true},
		{false, 400, false}, // would go negative
		{true, 100, true},
		{false, 400, true},
		{false, 1, false},
	}

	var want int64
	for i, s := range steps {
		var err error
		if s.fund {
			err = p.Fund(context.Background(), mover, dep, pool.SlotA, s.amount)
		} else {
			err = p.Defund(context.Background(), mover, dep, pool.SlotA, s.amount)
		}
		if s.ok && err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
		if !s.ok && !errors.Is(err, pool.ErrInsufficientBalance) {
			t.Fatalf("step %d: want ErrInsufficientBalance, got %v", i, err)
		}
		if s.ok {
			if s.fund {
				want += s.amount
			} else {
				want -= s.amount
			}
		}
		if got := p.Claim(dep, pool.SlotA); got != want || got < 0 {
			t.Fatalf("step %d: claim=%d, want %d (>= 0)", i, got, want)
		}
	}
}

// ============================================================================
// Test: Conservation
// ============================================================================

func TestConservation_AcrossFullLifecycle(t *testing.T) {
	p := newTestPool(t)
	mover := &fakeMover{}
	authority := &fakeAuthority{}
	dep := uuid.New()
	pos1 := pool.NewPositionID(uuid.New(), salt(1))
	pos2 := pool.NewPositionID(uuid.New(), salt(2))
	ctx := context.Background()

	check := func(label string) {
		t.Helper()
		if err := p.CheckConservation(); err != nil {
			t.Fatalf("%s: %v", label, err)
		}
	}

	mustFund(t, p, mover, dep, pool.SlotB, 1000)
	check("after fund")

	if _, err := p.Match(ctx, authority, pos1, pool.SlotB, -400); err != nil {
		t.Fatal(err)
	}
	check("after full match")

	if _, err := p.Match(ctx, authority, pos2, pool.SlotB, -900); err != nil {
		t.Fatal(err)
	}
	check("after partial match")

	if _, err := p.Unwind(ctx, authority, pos1, pool.SlotB, 250); err != nil {
		t.Fatal(err)
	}
	check("after partial unwind")

	if _, err := p.Unwind(ctx, authority, pos1, pool.SlotB, 300); err != nil {
		t.Fatal(err)
	}
	check("after final unwind")

	if err := p.Defund(ctx, mover, dep, pool.SlotB, 400); err != nil {
		t.Fatal(err)
	}
	check("after defund")
}

// ============================================================================
// Helpers
// ============================================================================

func mustFund(t *testing.T, p *pool.Pool, mover *fakeMover, dep uuid.UUID, slot pool.Slot, amount int64) {
	t.Helper()
	if err := p.Fund(context.Background(), mover, dep, slot, amount); err != nil {
		t.Fatalf("Fund(%d) failed: %v", amount, err)
	}
}

func salt(n byte) [32]byte {
	var s [32]byte
	s[31] = n
	return s
}

func TestPositionID_DistinctKeys(t *testing.T) {
	controller := uuid.New()
	a := pool.NewPositionID(controller, salt(1))
	b := pool.NewPositionID(controller, salt(2))
	c := pool.NewPositionID(uuid.New(), salt(1))

	if a == b || a == c {
		t.Error("distinct (controller, salt) pairs must not collide")
	}

	again := pool.NewPositionID(controller, salt(1))
	if a != again {
		t.Error("same (controller, salt) must resolve to the same position")
	}
}

func TestManager_BindAndGet(t *testing.T) {
	m := pool.NewManager()
	id := uuid.New()

	if _, err := m.Bind(id, assetUSDC, assetWETH); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if _, err := m.Bind(id, assetUSDC, assetWETH); !errors.Is(err, pool.ErrPoolExists) {
		t.Errorf("duplicate bind: want ErrPoolExists, got %v", err)
	}
	if _, err := m.Bind(uuid.New(), assetUSDC, assetUSDC); err == nil {
		t.Error("binding identical assets should fail")
	}
	if _, err := m.Get(id); err != nil {
		t.Errorf("Get failed: %v", err)
	}
	if _, err := m.Get(uuid.New()); !errors.Is(err, pool.ErrUnknownPool) {
		t.Errorf("unknown pool: want ErrUnknownPool, got %v", err)
	}
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	p := newTestPool(t)
	mover := &fakeMover{}
	authority := &fakeAuthority{}
	dep := uuid.New()
	pos := pool.NewPositionID(uuid.New(), salt(7))
	ctx := context.Background()

	mustFund(t, p, mover, dep, pool.SlotB, 1000)
	if _, err := p.Match(ctx, authority, pos, pool.SlotB, -400); err != nil {
		t.Fatal(err)
	}

	restored := pool.RestoreState(p.SnapshotState())

	if restored.Reservoir(pool.SlotB) != p.Reservoir(pool.SlotB) {
		t.Error("reservoir not restored")
	}
	if restored.Claim(dep, pool.SlotB) != 1000 {
		t.Error("claim not restored")
	}
	if restored.Debt(pos, pool.SlotB) != -400 {
		t.Error("debt not restored")
	}
	if err := restored.CheckConservation(); err != nil {
		t.Errorf("restored pool fails conservation: %v", err)
	}
}

func TestInstruction_Parse(t *testing.T) {
	cases := []struct {
		in   string
		want pool.Instruction
		ok   bool
	}{
		{"", pool.InstructionNone, true},
		{"none", pool.InstructionNone, true},
		{"match_a", pool.InstructionMatchA, true},
		{"match_b", pool.InstructionMatchB, true},
		{"match_c", 0, false},
		{"MATCH_A", 0, false},
	}

	for _, c := range cases {
		got, err := pool.ParseInstruction(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("ParseInstruction(%q) = %v, %v; want %v", c.in, got, err, c.want)
		}
		if !c.ok && !errors.Is(err, pool.ErrInvalidAssetSelection) {
			t.Errorf("ParseInstruction(%q): want ErrInvalidAssetSelection, got %v", c.in, err)
		}
	}
}

func ExamplePool_Fund() {
	p := pool.NewPool(uuid.New(), assetUSDC, assetWETH)
	mover := &fakeMover{}
	_ = p.Fund(context.Background(), mover, uuid.New(), pool.SlotB, 1000)
	fmt.Println(p.Reservoir(pool.SlotB))
	// Output: -1000
}
