package ledger

import (
	"fmt"

	"github.com/google/uuid"
)

// InvariantValidator checks ledger invariants
type InvariantValidator struct {
	tracker *BalanceTracker
}

func NewInvariantValidator(tracker *BalanceTracker) *InvariantValidator {
	return &InvariantValidator{
		tracker: tracker,
	}
}

// ValidateBatchBalance verifies batch is balanced
func (v *InvariantValidator) ValidateBatchBalance(batch *Batch) error {
	return batch.Validate()
}

// ValidateDepositorClaimNonNegative checks a depositor claim >= 0
func (v *InvariantValidator) ValidateDepositorClaimNonNegative(depositorID uuid.UUID, assetID AssetID) error {
	key := NewDepositorAccountKey(depositorID, assetID)
	return v.tracker.ValidateNonNegative(key)
}

// ValidatePoolBooksOffset verifies a pool's reservoir and position-debt
// accounts offset each other exactly: matching and unwinding move value
// between the two books and never create or destroy it.
func (v *InvariantValidator) ValidatePoolBooksOffset(poolID uuid.UUID, assetID AssetID) error {
	reservoir := v.tracker.GetPoolReservoir(poolID, assetID)
	debt := v.tracker.GetPoolPositionDebt(poolID, assetID)

	if reservoir+debt != 0 {
		return fmt.Errorf("pool %s asset %d: reservoir=%d debt=%d, books do not offset",
			poolID, assetID, reservoir, debt)
	}

	return nil
}

// ValidateGlobalBalance verifies system is zero-sum
func (v *InvariantValidator) ValidateGlobalBalance() error {
	totals := v.tracker.ComputeGlobalBalance()

	for assetID, total := range totals {
		if total != 0 {
			assetName, _ := GetAssetName(assetID)
			return fmt.Errorf("global balance for %s is non-zero: %d", assetName, total)
		}
	}

	return nil
}
