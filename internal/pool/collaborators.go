package pool

import (
	"context"

	"SidePool/internal/ledger"

	"github.com/google/uuid"
)

// Mover physically moves asset units between a depositor and engine custody.
// Both calls are synchronous sub-calls of the triggering operation: a failure
// aborts the whole operation and no ledger state is committed.
type Mover interface {
	TransferIn(ctx context.Context, asset ledger.AssetID, from uuid.UUID, amount int64) error
	TransferOut(ctx context.Context, asset ledger.AssetID, to uuid.UUID, amount int64) error
}

// SettlementAuthority is the AMM engine's balance-accounting surface.
// Settle pays amount of asset into the authority; Take withdraws amount
// from it. Both are atomic and synchronous with the triggering operation.
type SettlementAuthority interface {
	Settle(ctx context.Context, asset ledger.AssetID, amount int64) error
	Take(ctx context.Context, asset ledger.AssetID, amount int64) error
}
