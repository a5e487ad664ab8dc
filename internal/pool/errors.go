package pool

import "errors"

var (
	// ErrInsufficientBalance rejects a defund exceeding the depositor's claimable amount
	ErrInsufficientBalance = errors.New("insufficient claimable balance")

	// ErrInsufficientUnmatchedLiquidity rejects a defund that would withdraw surplus
	// already fronted to live positions. The engine has no mechanism to forcibly
	// unwind other positions' debt to satisfy a defund; the caller must retry with
	// a smaller amount once debt has been repaid.
	ErrInsufficientUnmatchedLiquidity = errors.New("insufficient unmatched liquidity")

	// ErrInvalidAssetSelection rejects a matching instruction that names neither
	// of the pool's two assets
	ErrInvalidAssetSelection = errors.New("invalid asset selection")

	// ErrTransferFailed wraps a rejection from the value-transfer collaborator
	// or the settlement authority; the triggering operation is aborted with no
	// ledger mutation
	ErrTransferFailed = errors.New("transfer failed")

	// ErrUnknownPool rejects an operation addressed to a pool that was never bound
	ErrUnknownPool = errors.New("unknown pool")

	// ErrPoolExists rejects binding a pool ID twice
	ErrPoolExists = errors.New("pool already bound")
)
