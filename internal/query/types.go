package query

import "github.com/google/uuid"

// DepositorBalanceResponse represents a depositor's claimable balance in one
// pool for one asset.
type DepositorBalanceResponse struct {
	DepositorID  uuid.UUID `json:"depositor_id"`
	PoolID       uuid.UUID `json:"pool_id"`
	Asset        string    `json:"asset"`
	Amount       int64     `json:"amount"`
	AsOfSequence int64     `json:"as_of_sequence"`
}

// ReservoirLevelResponse represents one pool-asset reservoir book.
// Surplus is the derived non-negative view (-reservoir).
type ReservoirLevelResponse struct {
	PoolID       uuid.UUID `json:"pool_id"`
	Asset        string    `json:"asset"`
	Reservoir    int64     `json:"reservoir"`
	Surplus      int64     `json:"surplus"`
	NetFunded    int64     `json:"net_funded"`
	AsOfSequence int64     `json:"as_of_sequence"`
}

// PositionDebtResponse represents one position's debt in one asset.
type PositionDebtResponse struct {
	PoolID       uuid.UUID `json:"pool_id"`
	Controller   uuid.UUID `json:"controller"`
	Salt         string    `json:"salt"` // hex-encoded
	Asset        string    `json:"asset"`
	Debt         int64     `json:"debt"`
	AsOfSequence int64     `json:"as_of_sequence"`
}

// OperationResponse represents one processed pool operation.
type OperationResponse struct {
	Sequence    int64      `json:"sequence"`
	PoolID      *uuid.UUID `json:"pool_id,omitempty"`
	EventType   string     `json:"event_type"`
	CorrectionA *int64     `json:"correction_a,omitempty"`
	CorrectionB *int64     `json:"correction_b,omitempty"`
	TimestampUs int64      `json:"timestamp_us"`
}

// JournalHistoryEntry represents a journal entry for API queries.
type JournalHistoryEntry struct {
	JournalID     string `json:"journal_id"`
	BatchID       string `json:"batch_id"`
	EventRef      string `json:"event_ref"`
	Sequence      int64  `json:"sequence"`
	DebitAccount  string `json:"debit_account"`
	CreditAccount string `json:"credit_account"`
	AssetID       uint16 `json:"asset_id"`
	Amount        int64  `json:"amount"`
	JournalType   int32  `json:"journal_type"`
	Timestamp     int64  `json:"timestamp"`
}

// IntegrityReport is the result of an integrity verification check.
type IntegrityReport struct {
	IsHealthy        bool              `json:"is_healthy"`
	HashChainBreaks  []int64           `json:"hash_chain_breaks,omitempty"`
	UnbalancedAssets []UnbalancedAsset `json:"unbalanced_assets,omitempty"`
}

// UnbalancedAsset represents an asset with non-zero global balance sum.
type UnbalancedAsset struct {
	AssetID   uint16 `json:"asset_id"`
	Imbalance int64  `json:"imbalance"`
}
