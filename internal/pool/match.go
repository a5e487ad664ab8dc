package pool

import (
	"context"
	"fmt"

	fpmath "SidePool/internal/math"

	"github.com/google/uuid"
)

// Delta is a signed per-slot amount pair, the engine's correction to the
// deltas reported by the AMM position engine. Negative means the engine paid
// the amount out on the position's behalf; positive means it took the amount
// back.
type Delta struct {
	A int64
	B int64
}

// IsZero reports whether both legs are zero
func (d Delta) IsZero() bool {
	return d.A == 0 && d.B == 0
}

// Get returns the leg for a slot
func (d Delta) Get(slot Slot) int64 {
	if slot == SlotA {
		return d.A
	}
	return d.B
}

func deltaFor(slot Slot, amount int64) Delta {
	if slot == SlotA {
		return Delta{A: amount}
	}
	return Delta{B: amount}
}

// Match covers a single-sided contribution's counter-asset requirement from the
// reservoir. need is the matched-asset delta reported by the position engine
// and must be negative (the position requires that asset to be supplied).
//
// The match is full when the reservoir holds at least |need| of surplus, in
// which case the whole requirement is fronted. Otherwise whatever surplus
// remains (possibly nothing) is fronted and the reservoir is left at zero; the
// uncovered remainder is deliberately NOT recorded anywhere here; it falls
// through to the position engine's ordinary settlement for directly-supplied
// liquidity, which must be covered by the caller.
//
// The fronted amount (<= 0) is added to the position's debt and its magnitude
// settled to the settlement authority. A settlement failure reverses the book
// mutations so the operation is all-or-nothing.
func (p *Pool) Match(ctx context.Context, authority SettlementAuthority, pos PositionID, slot Slot, need int64) (int64, error) {
	if need >= 0 {
		return 0, fmt.Errorf("match need must be negative, got %d", need)
	}

	prevReservoir := p.reservoir[slot]

	var fronted int64
	if prevReservoir <= need {
		// Full match: surplus covers the whole requirement
		fronted = need
		p.reservoir[slot] = prevReservoir - need
	} else {
		// Partial match: drain whatever surplus remains
		fronted = prevReservoir
		p.reservoir[slot] = 0
	}

	if fronted == 0 {
		return 0, nil
	}

	debt := p.debts[pos]
	newDebt, err := fpmath.AddInt64(debt[slot], fronted)
	if err != nil {
		p.reservoir[slot] = prevReservoir
		return 0, fmt.Errorf("match debt: %w", err)
	}
	debt[slot] = newDebt
	p.debts[pos] = debt

	if err := authority.Settle(ctx, p.Assets[slot], -fronted); err != nil {
		// Reverse so no partial commit is observable
		p.reservoir[slot] = prevReservoir
		debt[slot] -= fronted
		p.debts[pos] = debt
		return 0, fmt.Errorf("%w: settle %d of asset %d: %v", ErrTransferFailed, -fronted, p.Assets[slot], err)
	}

	return fronted, nil
}

// Unwind reclaims previously fronted debt as a position is reduced. amount is
// the positive withdrawal delta reported by the position engine for the slot.
//
// If the withdrawal covers the whole outstanding debt, exactly the debt is
// reclaimed and the entry returns to zero; otherwise the entire withdrawal is
// reclaimed and the debt shrinks by that amount. Either way the reclaimed
// value replenishes the reservoir and is taken back from the settlement
// authority. reclaimed never exceeds amount and the debt never turns positive,
// so arbitrarily many partial reductions in any order converge to zero debt
// once the original fronted magnitude has been reclaimed in aggregate.
func (p *Pool) Unwind(ctx context.Context, authority SettlementAuthority, pos PositionID, slot Slot, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("unwind amount must be positive, got %d", amount)
	}

	debt := p.debts[pos]
	prevDebt := debt[slot]

	residual, err := fpmath.AddInt64(amount, prevDebt)
	if err != nil {
		return 0, fmt.Errorf("unwind residual: %w", err)
	}

	var reclaimed int64
	if residual >= 0 {
		// Withdrawal covers the whole debt
		reclaimed = -prevDebt
		debt[slot] = 0
	} else {
		// Withdrawal smaller than the debt: reclaim all of it
		reclaimed = amount
		debt[slot] = residual
	}

	if reclaimed == 0 {
		return 0, nil
	}

	prevReservoir := p.reservoir[slot]
	newReservoir, err := fpmath.SubInt64(prevReservoir, reclaimed)
	if err != nil {
		return 0, fmt.Errorf("unwind reservoir: %w", err)
	}
	p.debts[pos] = debt
	p.reservoir[slot] = newReservoir

	if err := authority.Take(ctx, p.Assets[slot], reclaimed); err != nil {
		debt[slot] = prevDebt
		p.debts[pos] = debt
		p.reservoir[slot] = prevReservoir
		return 0, fmt.Errorf("%w: take %d of asset %d: %v", ErrTransferFailed, reclaimed, p.Assets[slot], err)
	}

	return reclaimed, nil
}

// ApplyPositionChange processes one position-change notification from the AMM
// position engine and returns the engine's correction delta. The instruction
// selects which asset to source from (or return to) the reservoir; the sign of
// that asset's reported delta decides between matching and unwinding. With no
// instruction the engine stays out of the way and reports a zero correction.
func (p *Pool) ApplyPositionChange(
	ctx context.Context,
	authority SettlementAuthority,
	controller uuid.UUID,
	salt [32]byte,
	deltaA, deltaB int64,
	instr Instruction,
) (Delta, error) {
	slot, ok := instr.Slot()
	if !ok {
		return Delta{}, nil
	}

	pos := NewPositionID(controller, salt)

	delta := deltaA
	if slot == SlotB {
		delta = deltaB
	}

	switch {
	case delta < 0:
		fronted, err := p.Match(ctx, authority, pos, slot, delta)
		if err != nil {
			return Delta{}, err
		}
		return deltaFor(slot, fronted), nil

	case delta > 0:
		reclaimed, err := p.Unwind(ctx, authority, pos, slot, delta)
		if err != nil {
			return Delta{}, err
		}
		return deltaFor(slot, reclaimed), nil

	default:
		return Delta{}, nil
	}
}
