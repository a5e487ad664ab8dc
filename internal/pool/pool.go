package pool

import (
	"context"
	"fmt"

	"SidePool/internal/ledger"
	fpmath "SidePool/internal/math"

	"github.com/google/uuid"
)

// Slot identifies one of the two assets bound to a pool.
type Slot uint8

const (
	SlotA Slot = 0
	SlotB Slot = 1
)

func (s Slot) String() string {
	if s == SlotA {
		return "a"
	}
	return "b"
}

// Other returns the counterpart slot
func (s Slot) Other() Slot {
	return 1 - s
}

type claimKey struct {
	Depositor uuid.UUID
	Slot      Slot
}

// Pool holds all mutable books for one bound pool. The three books are:
//
//   - reservoir: per-slot signed counter of engine-held surplus not attributed
//     to any position. Negative means surplus is available; matching drains it
//     toward zero and never past it.
//   - claims: per-depositor claimable balances, mutated only by Fund/Defund.
//   - debts: per-position signed record of how much of each asset the engine
//     fronted on behalf of that position. Entries are always <= 0; zero means
//     no outstanding debt.
//
// Pool is not safe for concurrent use: each instance is owned by the
// single-threaded deterministic core, and every operation runs to completion
// (books updated, settlement issued) before the next is accepted. Pools
// never share reservoirs.
type Pool struct {
	ID     uuid.UUID
	Assets [2]ledger.AssetID

	reservoir [2]int64
	claims    map[claimKey]int64
	debts     map[PositionID][2]int64

	// net fund minus defund per slot, kept for conservation checking
	netFunded [2]int64
}

// NewPool binds a pool over a pair of assets with empty books
func NewPool(id uuid.UUID, assetA, assetB ledger.AssetID) *Pool {
	return &Pool{
		ID:     id,
		Assets: [2]ledger.AssetID{assetA, assetB},
		claims: make(map[claimKey]int64),
		debts:  make(map[PositionID][2]int64),
	}
}

// SlotOf resolves an asset to its slot in this pool
func (p *Pool) SlotOf(asset ledger.AssetID) (Slot, bool) {
	switch asset {
	case p.Assets[SlotA]:
		return SlotA, true
	case p.Assets[SlotB]:
		return SlotB, true
	default:
		return SlotA, false
	}
}

// Reservoir returns the signed unmatched-surplus counter for a slot
func (p *Pool) Reservoir(slot Slot) int64 {
	return p.reservoir[slot]
}

// Claim returns a depositor's claimable balance for a slot
func (p *Pool) Claim(depositor uuid.UUID, slot Slot) int64 {
	return p.claims[claimKey{Depositor: depositor, Slot: slot}]
}

// Debt returns the signed fronted debt recorded against a position for a slot
func (p *Pool) Debt(pos PositionID, slot Slot) int64 {
	return p.debts[pos][slot]
}

// NetFunded returns total funded minus total defunded for a slot
func (p *Pool) NetFunded(slot Slot) int64 {
	return p.netFunded[slot]
}

// Fund credits a depositor's claimable balance and grows the reservoir surplus.
// The external transfer into engine custody must succeed before any book is
// touched, so a rejected transfer leaves the pool unchanged.
func (p *Pool) Fund(ctx context.Context, mover Mover, depositor uuid.UUID, slot Slot, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("fund amount must be positive, got %d", amount)
	}

	key := claimKey{Depositor: depositor, Slot: slot}
	newClaim, err := fpmath.AddInt64(p.claims[key], amount)
	if err != nil {
		return fmt.Errorf("fund claim: %w", err)
	}
	newReservoir, err := fpmath.SubInt64(p.reservoir[slot], amount)
	if err != nil {
		return fmt.Errorf("fund reservoir: %w", err)
	}

	if err := mover.TransferIn(ctx, p.Assets[slot], depositor, amount); err != nil {
		return fmt.Errorf("%w: transfer in %d of asset %d: %v", ErrTransferFailed, amount, p.Assets[slot], err)
	}

	p.claims[key] = newClaim
	p.reservoir[slot] = newReservoir
	p.netFunded[slot] += amount

	return nil
}

// Defund returns amount to the depositor, shrinking the reservoir surplus.
// It fails if the depositor's claim is too small, or if the withdrawal would
// leave more of the asset claimed as matched debt than remains unmatched
// (amount + reservoir must stay <= 0).
func (p *Pool) Defund(ctx context.Context, mover Mover, depositor uuid.UUID, slot Slot, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("defund amount must be positive, got %d", amount)
	}

	key := claimKey{Depositor: depositor, Slot: slot}
	claim := p.claims[key]
	if claim < amount {
		return fmt.Errorf("%w: claim=%d, requested=%d", ErrInsufficientBalance, claim, amount)
	}

	newReservoir, err := fpmath.AddInt64(p.reservoir[slot], amount)
	if err != nil {
		return fmt.Errorf("defund reservoir: %w", err)
	}
	if newReservoir > 0 {
		return fmt.Errorf("%w: reservoir=%d, requested=%d", ErrInsufficientUnmatchedLiquidity, p.reservoir[slot], amount)
	}

	if err := mover.TransferOut(ctx, p.Assets[slot], depositor, amount); err != nil {
		return fmt.Errorf("%w: transfer out %d of asset %d: %v", ErrTransferFailed, amount, p.Assets[slot], err)
	}

	p.claims[key] = claim - amount
	p.reservoir[slot] = newReservoir
	p.netFunded[slot] -= amount

	return nil
}

// CheckConservation verifies that matching and unwinding only ever move value
// between the reservoir and position debt: for each slot, reservoir plus the
// sum of all live position debts must equal the negated net funded amount.
func (p *Pool) CheckConservation() error {
	for _, slot := range []Slot{SlotA, SlotB} {
		total := p.reservoir[slot]
		for _, d := range p.debts {
			total += d[slot]
		}
		if total != -p.netFunded[slot] {
			return fmt.Errorf("pool %s slot %s: reservoir+debt=%d, want %d",
				p.ID, slot, total, -p.netFunded[slot])
		}
	}
	return nil
}

// ClaimsSnapshot returns a copy of all claimable balances keyed by account path fragments
type ClaimEntry struct {
	Depositor uuid.UUID
	Slot      Slot
	Amount    int64
}

// DebtEntry is a serializable position debt record
type DebtEntry struct {
	Position PositionID
	DebtA    int64
	DebtB    int64
}

// State is a serializable copy of all pool books, used for snapshots
type State struct {
	ID        uuid.UUID
	AssetA    ledger.AssetID
	AssetB    ledger.AssetID
	Reservoir [2]int64
	NetFunded [2]int64
	Claims    []ClaimEntry
	Debts     []DebtEntry
}

// SnapshotState copies all books into a serializable form
func (p *Pool) SnapshotState() State {
	st := State{
		ID:        p.ID,
		AssetA:    p.Assets[SlotA],
		AssetB:    p.Assets[SlotB],
		Reservoir: p.reservoir,
		NetFunded: p.netFunded,
		Claims:    make([]ClaimEntry, 0, len(p.claims)),
		Debts:     make([]DebtEntry, 0, len(p.debts)),
	}
	for k, v := range p.claims {
		st.Claims = append(st.Claims, ClaimEntry{Depositor: k.Depositor, Slot: k.Slot, Amount: v})
	}
	for pos, d := range p.debts {
		st.Debts = append(st.Debts, DebtEntry{Position: pos, DebtA: d[SlotA], DebtB: d[SlotB]})
	}
	return st
}

// RestoreState rebuilds a pool from a snapshot
func RestoreState(st State) *Pool {
	p := NewPool(st.ID, st.AssetA, st.AssetB)
	p.reservoir = st.Reservoir
	p.netFunded = st.NetFunded
	for _, c := range st.Claims {
		p.claims[claimKey{Depositor: c.Depositor, Slot: c.Slot}] = c.Amount
	}
	for _, d := range st.Debts {
		p.debts[d.Position] = [2]int64{d.DebtA, d.DebtB}
	}
	return p
}
