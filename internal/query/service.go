package query

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// QueryService provides read-only access to projection tables.
// Queries are served via gRPC and HTTP/JSON (gRPC-Gateway), reading from
// PostgreSQL projection tables. All responses include as_of_sequence for
// freshness semantics.
type QueryService struct {
	db *sql.DB
}

func NewQueryService(db *sql.DB) *QueryService {
	return &QueryService{db: db}
}

// GetDepositorBalance returns a depositor's claimable balance in one pool.
func (qs *QueryService) GetDepositorBalance(
	ctx context.Context,
	depositorID, poolID uuid.UUID,
	asset string,
) (*DepositorBalanceResponse, error) {
	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, fmt.Errorf("watermark: %w", err)
	}

	var amount int64
	err = qs.db.QueryRowContext(ctx, `
		SELECT COALESCE(amount, 0) FROM projections.depositor_balances
		WHERE depositor_id = $1 AND pool_id = $2 AND asset = $3
	`, depositorID, poolID, asset).Scan(&amount)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	return &DepositorBalanceResponse{
		DepositorID:  depositorID,
		PoolID:       poolID,
		Asset:        asset,
		Amount:       amount,
		AsOfSequence: asOfSeq,
	}, nil
}

// GetReservoirLevels returns both reservoir books for a pool.
func (qs *QueryService) GetReservoirLevels(
	ctx context.Context,
	poolID uuid.UUID,
) ([]ReservoirLevelResponse, error) {
	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := qs.db.QueryContext(ctx, `
		SELECT asset, reservoir, net_funded
		FROM projections.reservoir_levels
		WHERE pool_id = $1
		ORDER BY asset
	`, poolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var levels []ReservoirLevelResponse
	for rows.Next() {
		var l ReservoirLevelResponse
		l.PoolID = poolID
		l.AsOfSequence = asOfSeq
		if err := rows.Scan(&l.Asset, &l.Reservoir, &l.NetFunded); err != nil {
			return nil, err
		}
		l.Surplus = -l.Reservoir
		levels = append(levels, l)
	}

	return levels, rows.Err()
}

// GetPositionDebts returns live position debts for a pool, optionally
// filtered by controller. Fully repaid positions (zero debt) are skipped.
func (qs *QueryService) GetPositionDebts(
	ctx context.Context,
	poolID uuid.UUID,
	controller *uuid.UUID,
	limit int,
) ([]PositionDebtResponse, error) {
	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT controller, salt, asset, debt
		FROM projections.position_debts
		WHERE pool_id = $1 AND debt != 0
	`
	args := []interface{}{poolID}
	argIdx := 2

	if controller != nil {
		query += fmt.Sprintf(" AND controller = $%d", argIdx)
		args = append(args, *controller)
		argIdx++
	}

	query += " ORDER BY controller, salt"
	query += fmt.Sprintf(" LIMIT $%d", argIdx)
	args = append(args, limit)

	rows, err := qs.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var debts []PositionDebtResponse
	for rows.Next() {
		var d PositionDebtResponse
		d.PoolID = poolID
		d.AsOfSequence = asOfSeq
		if err := rows.Scan(&d.Controller, &d.Salt, &d.Asset, &d.Debt); err != nil {
			return nil, err
		}
		debts = append(debts, d)
	}

	return debts, rows.Err()
}

// GetOperations returns processed operations for a pool with cursor-based
// pagination (afterSequence walks backwards).
func (qs *QueryService) GetOperations(
	ctx context.Context,
	poolID uuid.UUID,
	limit int,
	afterSequence *int64,
) ([]OperationResponse, error) {
	query := `
		SELECT sequence, pool_id, event_type, correction_a, correction_b, timestamp_us
		FROM projections.pool_operations
		WHERE pool_id = $1
	`
	args := []interface{}{poolID}
	argIdx := 2

	if afterSequence != nil {
		query += fmt.Sprintf(" AND sequence < $%d", argIdx)
		args = append(args, *afterSequence)
		argIdx++
	}

	query += " ORDER BY sequence DESC"
	query += fmt.Sprintf(" LIMIT $%d", argIdx)
	args = append(args, limit)

	rows, err := qs.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ops []OperationResponse
	for rows.Next() {
		var op OperationResponse
		if err := rows.Scan(
			&op.Sequence, &op.PoolID, &op.EventType,
			&op.CorrectionA, &op.CorrectionB, &op.TimestampUs,
		); err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}

	return ops, rows.Err()
}

// GetJournalHistory returns journal entries touching a depositor's accounts,
// with cursor-based pagination.
func (qs *QueryService) GetJournalHistory(
	ctx context.Context,
	depositorID uuid.UUID,
	limit int,
	afterSequence *int64,
) ([]JournalHistoryEntry, error) {
	accountPrefix := fmt.Sprintf("depositor:%s:%%", depositorID)

	query := `
		SELECT journal_id, batch_id, event_ref, sequence,
		       debit_account, credit_account, asset_id, amount, journal_type, timestamp
		FROM event_log.journal
		WHERE (debit_account LIKE $1 OR credit_account LIKE $1)
	`
	args := []interface{}{accountPrefix}
	argIdx := 2

	if afterSequence != nil {
		query += fmt.Sprintf(" AND sequence < $%d", argIdx)
		args = append(args, *afterSequence)
		argIdx++
	}

	query += " ORDER BY sequence DESC"
	query += fmt.Sprintf(" LIMIT $%d", argIdx)
	args = append(args, limit)

	rows, err := qs.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []JournalHistoryEntry
	for rows.Next() {
		var e JournalHistoryEntry
		if err := rows.Scan(
			&e.JournalID, &e.BatchID, &e.EventRef, &e.Sequence,
			&e.DebitAccount, &e.CreditAccount, &e.AssetID, &e.Amount,
			&e.JournalType, &e.Timestamp,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// --- Admin APIs ---

// VerifyIntegrity checks hash chain continuity and the global zero-sum
// invariant across projected balances.
func (qs *QueryService) VerifyIntegrity(ctx context.Context) (*IntegrityReport, error) {
	report := &IntegrityReport{}

	rows, err := qs.db.QueryContext(ctx, `
		SELECT e1.sequence
		FROM event_log.events e1
		LEFT JOIN event_log.events e2 ON e2.sequence = e1.sequence - 1
		WHERE e1.sequence > 0 AND e1.prev_hash != COALESCE(e2.state_hash, e1.prev_hash)
		LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var seq int64
		if err := rows.Scan(&seq); err != nil {
			return nil, err
		}
		report.HashChainBreaks = append(report.HashChainBreaks, seq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	balanceRows, err := qs.db.QueryContext(ctx, `
		SELECT asset_id, SUM(balance) as total
		FROM projections.balances
		GROUP BY asset_id
		HAVING SUM(balance) != 0
	`)
	if err != nil {
		return nil, err
	}
	defer balanceRows.Close()

	for balanceRows.Next() {
		var assetID uint16
		var total int64
		if err := balanceRows.Scan(&assetID, &total); err != nil {
			return nil, err
		}
		report.UnbalancedAssets = append(report.UnbalancedAssets, UnbalancedAsset{
			AssetID:   assetID,
			Imbalance: total,
		})
	}
	if err := balanceRows.Err(); err != nil {
		return nil, err
	}

	report.IsHealthy = len(report.HashChainBreaks) == 0 && len(report.UnbalancedAssets) == 0
	return report, nil
}

// --- helpers ---

func (qs *QueryService) getWatermark(ctx context.Context) (int64, error) {
	var seq int64
	err := qs.db.QueryRowContext(ctx, `
		SELECT COALESCE(last_sequence, 0) FROM projections.watermark WHERE worker_id = 'main'
	`).Scan(&seq)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return seq, err
}
