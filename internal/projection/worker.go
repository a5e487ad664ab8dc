package projection

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"

	"SidePool/internal/event"
	"SidePool/internal/ledger"
	"SidePool/internal/pool"

	"github.com/google/uuid"
)

// ProjectionOutput mirrors the data needed by projection workers.
// The orchestrator bridges between core.CoreOutput and this.
type ProjectionOutput struct {
	Sequence       int64
	EventType      string
	PoolID         *string
	Payload        []byte // JSON-encoded event payload
	CorrectionA    *int64
	CorrectionB    *int64
	JournalEntries []JournalEntry
	Timestamp      int64
}

// JournalEntry is a simplified journal for projection consumption.
type JournalEntry struct {
	DebitAccount  string
	CreditAccount string
	AssetID       uint16
	Amount        int64
	JournalType   int32
}

// ProjectionWorker updates projection tables from processed events.
// The projection channel is non-blocking with drop: if projections fall
// behind, they can be rebuilt from the event log.
type ProjectionWorker struct {
	db        *sql.DB
	inputChan <-chan ProjectionOutput
	recent    *OperationsProjection
	lastSeq   int64
}

func NewProjectionWorker(db *sql.DB, inputChan <-chan ProjectionOutput) *ProjectionWorker {
	return &ProjectionWorker{
		db:        db,
		inputChan: inputChan,
		recent:    NewOperationsProjection(1024),
	}
}

// Recent exposes the in-memory operations ring. Safe for concurrent readers.
func (pw *ProjectionWorker) Recent() *OperationsProjection {
	return pw.recent
}

// Run starts the projection worker loop.
func (pw *ProjectionWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case output, ok := <-pw.inputChan:
			if !ok {
				return nil
			}

			if err := pw.processOutput(ctx, output); err != nil {
				log.Printf("WARN: projection update failed at seq=%d: %v", output.Sequence, err)
				// Continue; projections are eventually consistent
				// and can be rebuilt from the event log
			}

			pw.lastSeq = output.Sequence
			pw.recordRecent(output)
		}
	}
}

func (pw *ProjectionWorker) recordRecent(output ProjectionOutput) {
	if output.PoolID == nil {
		return
	}
	poolID, err := uuid.Parse(*output.PoolID)
	if err != nil {
		return
	}
	entry := OperationEntry{
		Sequence:  output.Sequence,
		PoolID:    poolID,
		EventType: output.EventType,
		Timestamp: output.Timestamp,
	}
	if output.CorrectionA != nil {
		entry.CorrectionA = *output.CorrectionA
	}
	if output.CorrectionB != nil {
		entry.CorrectionB = *output.CorrectionB
	}
	pw.recent.Add(entry)
}

func (pw *ProjectionWorker) processOutput(ctx context.Context, output ProjectionOutput) error {
	tx, err := pw.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, j := range output.JournalEntries {
		if err := pw.updateBalanceProjection(ctx, tx, output.Sequence, j); err != nil {
			return fmt.Errorf("balance projection: %w", err)
		}
	}

	switch output.EventType {
	case "fund_requested":
		err = pw.applyLiquidityChange(ctx, tx, output, +1)
	case "defund_requested":
		err = pw.applyLiquidityChange(ctx, tx, output, -1)
	case "position_changed":
		err = pw.applyPositionChange(ctx, tx, output)
	}
	if err != nil {
		return err
	}

	if err := pw.recordOperation(ctx, tx, output); err != nil {
		return fmt.Errorf("operation log: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.watermark (worker_id, last_sequence, updated_at)
		VALUES ('main', $1, NOW())
		ON CONFLICT (worker_id) DO UPDATE SET last_sequence = $1, updated_at = NOW()
	`, output.Sequence); err != nil {
		return fmt.Errorf("watermark update: %w", err)
	}

	return tx.Commit()
}

// updateBalanceProjection keeps projections.balances in sync with the ledger
// convention: debit increases a balance, credit decreases it.
func (pw *ProjectionWorker) updateBalanceProjection(ctx context.Context, tx *sql.Tx, seq int64, j JournalEntry) error {
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.balances (account_path, asset_id, balance, last_sequence)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (account_path, asset_id)
		DO UPDATE SET balance = projections.balances.balance + $3, last_sequence = $4
	`, j.DebitAccount, j.AssetID, j.Amount, seq); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.balances (account_path, asset_id, balance, last_sequence)
		VALUES ($1, $2, -$3, $4)
		ON CONFLICT (account_path, asset_id)
		DO UPDATE SET balance = projections.balances.balance - $3, last_sequence = $4
	`, j.CreditAccount, j.AssetID, j.Amount, seq); err != nil {
		return err
	}

	return nil
}

// applyLiquidityChange maintains depositor_balances and reservoir_levels
// from fund (sign=+1) and defund (sign=-1) events.
func (pw *ProjectionWorker) applyLiquidityChange(ctx context.Context, tx *sql.Tx, output ProjectionOutput, sign int64) error {
	var evt event.FundRequested // DefundRequested shares the wire shape
	if err := json.Unmarshal(output.Payload, &evt); err != nil {
		return fmt.Errorf("decode liquidity payload: %w", err)
	}

	delta := sign * evt.Amount

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.depositor_balances (depositor_id, pool_id, asset, amount, last_sequence)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (depositor_id, pool_id, asset)
		DO UPDATE SET amount = projections.depositor_balances.amount + $4, last_sequence = $5
	`, evt.DepositorID, evt.Pool, evt.Asset, delta, output.Sequence); err != nil {
		return fmt.Errorf("depositor balance: %w", err)
	}

	// Funding grows the reservoir surplus (reservoir is <= 0, surplus = -reservoir)
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.reservoir_levels (pool_id, asset, reservoir, net_funded, last_sequence)
		VALUES ($1, $2, -$3, $3, $4)
		ON CONFLICT (pool_id, asset)
		DO UPDATE SET
			reservoir = projections.reservoir_levels.reservoir - $3,
			net_funded = projections.reservoir_levels.net_funded + $3,
			last_sequence = $4
	`, evt.Pool, evt.Asset, delta, output.Sequence); err != nil {
		return fmt.Errorf("reservoir level: %w", err)
	}

	return nil
}

// applyPositionChange maintains position_debts and reservoir_levels from the
// engine's correction delta. For both matching and unwinding, the matched
// asset's debt moves by the correction and the reservoir moves opposite it.
func (pw *ProjectionWorker) applyPositionChange(ctx context.Context, tx *sql.Tx, output ProjectionOutput) error {
	var evt event.PositionChanged
	if err := json.Unmarshal(output.Payload, &evt); err != nil {
		return fmt.Errorf("decode position payload: %w", err)
	}

	slot, ok := evt.Instruction.Slot()
	if !ok {
		return nil // no matching requested, books unchanged
	}

	var correction int64
	if slot == pool.SlotA && output.CorrectionA != nil {
		correction = *output.CorrectionA
	} else if slot == pool.SlotB && output.CorrectionB != nil {
		correction = *output.CorrectionB
	}
	if correction == 0 {
		return nil
	}

	// A non-zero correction always carries journals; their asset is the
	// matched asset.
	if len(output.JournalEntries) == 0 {
		return fmt.Errorf("correction %d with no journals at seq %d", correction, output.Sequence)
	}
	assetName, ok := ledger.GetAssetName(ledger.AssetID(output.JournalEntries[0].AssetID))
	if !ok {
		return fmt.Errorf("unknown asset id %d at seq %d", output.JournalEntries[0].AssetID, output.Sequence)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.position_debts (pool_id, controller, salt, asset, debt, last_sequence)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (pool_id, controller, salt, asset)
		DO UPDATE SET debt = projections.position_debts.debt + $5, last_sequence = $6
	`, evt.Pool, evt.Controller, hex.EncodeToString(evt.Salt[:]), assetName, correction, output.Sequence); err != nil {
		return fmt.Errorf("position debt: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.reservoir_levels (pool_id, asset, reservoir, net_funded, last_sequence)
		VALUES ($1, $2, -$3, 0, $4)
		ON CONFLICT (pool_id, asset)
		DO UPDATE SET
			reservoir = projections.reservoir_levels.reservoir - $3,
			last_sequence = $4
	`, evt.Pool, assetName, correction, output.Sequence); err != nil {
		return fmt.Errorf("reservoir level: %w", err)
	}

	return nil
}

// RebuildProjections rebuilds the balance projection from the event log and
// clears the derived tables so the worker repopulates them on replay.
func RebuildProjections(ctx context.Context, db *sql.DB) error {
	truncateStatements := []string{
		`TRUNCATE projections.balances`,
		`TRUNCATE projections.depositor_balances`,
		`TRUNCATE projections.reservoir_levels`,
		`TRUNCATE projections.position_debts`,
		`TRUNCATE projections.pool_operations`,
		`DELETE FROM projections.watermark WHERE worker_id = 'main'`,
	}

	for _, stmt := range truncateStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("truncate failed: %w", err)
		}
	}

	// Balances rebuild directly from journals: debit adds, credit subtracts
	_, err := db.ExecContext(ctx, `
		INSERT INTO projections.balances (account_path, asset_id, balance, last_sequence)
		SELECT
			debit_account AS account_path,
			asset_id,
			SUM(amount) AS balance,
			MAX(sequence) AS last_sequence
		FROM event_log.journal
		GROUP BY debit_account, asset_id
	`)
	if err != nil {
		return fmt.Errorf("rebuild debit balances: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO projections.balances (account_path, asset_id, balance, last_sequence)
		SELECT
			credit_account AS account_path,
			asset_id,
			-SUM(amount) AS balance,
			MAX(sequence) AS last_sequence
		FROM event_log.journal
		GROUP BY credit_account, asset_id
		ON CONFLICT (account_path, asset_id) DO UPDATE
			SET balance = projections.balances.balance + EXCLUDED.balance,
			    last_sequence = GREATEST(projections.balances.last_sequence, EXCLUDED.last_sequence)
	`)
	if err != nil {
		return fmt.Errorf("rebuild credit balances: %w", err)
	}

	log.Println("INFO: projection rebuild complete")
	return nil
}

func (pw *ProjectionWorker) recordOperation(ctx context.Context, tx *sql.Tx, output ProjectionOutput) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO projections.pool_operations
			(sequence, pool_id, event_type, correction_a, correction_b, payload, timestamp_us)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (sequence) DO NOTHING
	`, output.Sequence, output.PoolID, output.EventType,
		output.CorrectionA, output.CorrectionB, output.Payload, output.Timestamp)
	return err
}
