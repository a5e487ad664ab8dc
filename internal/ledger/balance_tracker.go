package ledger

import (
	"fmt"

	"github.com/google/uuid"
)

// BalanceTracker maintains in-memory account balances
type BalanceTracker struct {
	balances map[AccountKey]int64
}

func NewBalanceTracker() *BalanceTracker {
	return &BalanceTracker{
		balances: make(map[AccountKey]int64),
	}
}

// ApplyJournal applies a single journal entry to balances
func (bt *BalanceTracker) ApplyJournal(j Journal) {
	bt.balances[j.DebitAccount] += j.Amount
	bt.balances[j.CreditAccount] -= j.Amount
}

// ApplyBatch applies all journals in a batch
func (bt *BalanceTracker) ApplyBatch(batch *Batch) error {
	if err := batch.Validate(); err != nil {
		return fmt.Errorf("invalid batch: %w", err)
	}

	for _, j := range batch.Journals {
		bt.ApplyJournal(j)
	}

	return nil
}

// GetBalance returns the current balance for an account
func (bt *BalanceTracker) GetBalance(key AccountKey) int64 {
	return bt.balances[key]
}

// === Depositor Queries ===

// GetDepositorClaim returns a depositor's claimable balance for an asset
func (bt *BalanceTracker) GetDepositorClaim(depositorID uuid.UUID, assetID AssetID) int64 {
	return bt.GetBalance(NewDepositorAccountKey(depositorID, assetID))
}

// === Pool Queries ===

// GetPoolReservoir returns the pool's reservoir book: the net amount the
// reservoir has fronted to positions and not yet been repaid (credit-negative).
// It always offsets the position-debt book exactly.
func (bt *BalanceTracker) GetPoolReservoir(poolID uuid.UUID, assetID AssetID) int64 {
	return bt.GetBalance(NewPoolAccountKey(poolID, SubTypeReservoir, assetID))
}

// GetPoolPositionDebt returns the aggregate fronted debt booked against a pool
func (bt *BalanceTracker) GetPoolPositionDebt(poolID uuid.UUID, assetID AssetID) int64 {
	return bt.GetBalance(NewPoolAccountKey(poolID, SubTypePositionDebt, assetID))
}

// === Invariant Checks ===

// ValidateClaimNonNegative checks a depositor claim balance >= 0
func (bt *BalanceTracker) ValidateClaimNonNegative(depositorID uuid.UUID, assetID AssetID) error {
	claim := bt.GetDepositorClaim(depositorID, assetID)
	if claim < 0 {
		return fmt.Errorf("depositor %s has negative claim for asset %d: %d",
			depositorID.String(), assetID, claim)
	}
	return nil
}

// ValidateSufficientClaim checks if a depositor can defund the requested amount
func (bt *BalanceTracker) ValidateSufficientClaim(depositorID uuid.UUID, assetID AssetID, required int64) error {
	claim := bt.GetDepositorClaim(depositorID, assetID)
	if claim < required {
		return fmt.Errorf("insufficient claim balance: have=%d, need=%d", claim, required)
	}
	return nil
}

// ComputeGlobalBalance sums all account balances (should be 0 for zero-sum ledger)
func (bt *BalanceTracker) ComputeGlobalBalance() map[AssetID]int64 {
	totals := make(map[AssetID]int64)

	for key, balance := range bt.balances {
		totals[key.AssetID] += balance
	}

	return totals
}

// ValidateNonNegative checks that a specific account balance is >= 0
func (bt *BalanceTracker) ValidateNonNegative(key AccountKey) error {
	balance := bt.GetBalance(key)
	if balance < 0 {
		return fmt.Errorf("account %s has negative balance: %d", key.AccountPath(), balance)
	}
	return nil
}

// Snapshot returns a copy of all balances (for state hashing)
func (bt *BalanceTracker) Snapshot() map[AccountKey]int64 {
	snapshot := make(map[AccountKey]int64, len(bt.balances))
	for k, v := range bt.balances {
		snapshot[k] = v
	}
	return snapshot
}

// Restore replaces all balances from a snapshot (recovery path)
func (bt *BalanceTracker) Restore(balances map[AccountKey]int64) {
	bt.balances = make(map[AccountKey]int64, len(balances))
	for k, v := range balances {
		bt.balances[k] = v
	}
}
