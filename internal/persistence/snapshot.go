package persistence

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"SidePool/internal/ledger"
	"SidePool/internal/pool"

	"github.com/google/uuid"
)

// SnapshotManager handles creating and loading state snapshots for recovery.
// Snapshots contain ledger balances, pool books, sequence cursors, recent
// idempotency keys, and the hash-chain tip.
type SnapshotManager struct {
	db *sql.DB
}

// SnapshotData contains the full in-memory state at a point in time.
type SnapshotData struct {
	Sequence        int64            `json:"sequence"`
	StateHash       []byte           `json:"state_hash"`
	PrevHash        []byte           `json:"prev_hash"`
	Balances        map[string]int64 `json:"balances"` // AccountPath -> balance
	Pools           []PoolSnapshot   `json:"pools"`
	SequenceState   map[string]int64 `json:"sequence_state"`   // partition -> next expected seq
	IdempotencyKeys []string         `json:"idempotency_keys"` // Recent keys for LRU warming
	CreatedAt       time.Time        `json:"created_at"`
}

// PoolSnapshot is a serializable copy of one pool's books.
type PoolSnapshot struct {
	PoolID    string          `json:"pool_id"`
	AssetA    uint16          `json:"asset_a"`
	AssetB    uint16          `json:"asset_b"`
	Reservoir [2]int64        `json:"reservoir"`
	NetFunded [2]int64        `json:"net_funded"`
	Claims    []ClaimSnapshot `json:"claims"`
	Debts     []DebtSnapshot  `json:"debts"`
}

// ClaimSnapshot is a serializable depositor claim.
type ClaimSnapshot struct {
	Depositor string `json:"depositor"`
	Slot      int32  `json:"slot"`
	Amount    int64  `json:"amount"`
}

// DebtSnapshot is a serializable position debt record. Salt is hex-encoded.
type DebtSnapshot struct {
	Controller string `json:"controller"`
	Salt       string `json:"salt"`
	DebtA      int64  `json:"debt_a"`
	DebtB      int64  `json:"debt_b"`
}

// PoolSnapshotFromState converts a pool.State into its wire form.
func PoolSnapshotFromState(st pool.State) PoolSnapshot {
	snap := PoolSnapshot{
		PoolID:    st.ID.String(),
		AssetA:    uint16(st.AssetA),
		AssetB:    uint16(st.AssetB),
		Reservoir: st.Reservoir,
		NetFunded: st.NetFunded,
		Claims:    make([]ClaimSnapshot, 0, len(st.Claims)),
		Debts:     make([]DebtSnapshot, 0, len(st.Debts)),
	}
	for _, c := range st.Claims {
		snap.Claims = append(snap.Claims, ClaimSnapshot{
			Depositor: c.Depositor.String(),
			Slot:      int32(c.Slot),
			Amount:    c.Amount,
		})
	}
	for _, d := range st.Debts {
		snap.Debts = append(snap.Debts, DebtSnapshot{
			Controller: d.Position.Controller.String(),
			Salt:       hex.EncodeToString(d.Position.Salt[:]),
			DebtA:      d.DebtA,
			DebtB:      d.DebtB,
		})
	}
	return snap
}

// ToPoolState converts back into the engine's snapshot form.
func (ps PoolSnapshot) ToPoolState() (pool.State, error) {
	poolID, err := uuid.Parse(ps.PoolID)
	if err != nil {
		return pool.State{}, fmt.Errorf("parse pool_id: %w", err)
	}

	st := pool.State{
		ID:        poolID,
		AssetA:    ledger.AssetID(ps.AssetA),
		AssetB:    ledger.AssetID(ps.AssetB),
		Reservoir: ps.Reservoir,
		NetFunded: ps.NetFunded,
		Claims:    make([]pool.ClaimEntry, 0, len(ps.Claims)),
		Debts:     make([]pool.DebtEntry, 0, len(ps.Debts)),
	}

	for _, c := range ps.Claims {
		depositor, err := uuid.Parse(c.Depositor)
		if err != nil {
			return pool.State{}, fmt.Errorf("parse depositor: %w", err)
		}
		st.Claims = append(st.Claims, pool.ClaimEntry{
			Depositor: depositor,
			Slot:      pool.Slot(c.Slot),
			Amount:    c.Amount,
		})
	}

	for _, d := range ps.Debts {
		controller, err := uuid.Parse(d.Controller)
		if err != nil {
			return pool.State{}, fmt.Errorf("parse controller: %w", err)
		}
		salt, err := pool.ParseSalt(d.Salt)
		if err != nil {
			return pool.State{}, fmt.Errorf("parse salt: %w", err)
		}
		st.Debts = append(st.Debts, pool.DebtEntry{
			Position: pool.NewPositionID(controller, salt),
			DebtA:    d.DebtA,
			DebtB:    d.DebtB,
		})
	}

	return st, nil
}

func NewSnapshotManager(db *sql.DB) *SnapshotManager {
	return &SnapshotManager{db: db}
}

// SaveSnapshot persists a snapshot to Postgres. Snapshots are taken
// periodically and verified by replaying events from the snapshot sequence
// forward before being trusted for recovery.
func (sm *SnapshotManager) SaveSnapshot(ctx context.Context, snap *SnapshotData) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	snapshotID := uuid.New()
	sizeBytes := len(data)
	formatVersion := int32(1) // v1: JSON-encoded SnapshotData

	_, err = sm.db.ExecContext(ctx, `
		INSERT INTO event_log.snapshots
			(snapshot_id, sequence, data, state_hash, format_version, size_bytes, verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7)
		ON CONFLICT (sequence) DO UPDATE SET data = $3, state_hash = $4, size_bytes = $6
	`, snapshotID, snap.Sequence, data, snap.StateHash, formatVersion, sizeBytes, snap.CreatedAt)

	return err
}

// LoadLatestSnapshot loads the most recent verified snapshot.
// On warm restart, load the snapshot then replay events from sequence+1.
func (sm *SnapshotManager) LoadLatestSnapshot(ctx context.Context) (*SnapshotData, error) {
	row := sm.db.QueryRowContext(ctx, `
		SELECT data FROM event_log.snapshots
		WHERE verified = TRUE
		ORDER BY sequence DESC
		LIMIT 1
	`)

	var data []byte
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No snapshot, cold start
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snap SnapshotData
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &snap, nil
}

// MarkVerified marks a snapshot as verified after integrity check.
func (sm *SnapshotManager) MarkVerified(ctx context.Context, sequence int64) error {
	_, err := sm.db.ExecContext(ctx, `
		UPDATE event_log.snapshots SET verified = TRUE WHERE sequence = $1
	`, sequence)
	return err
}

// LoadEventsFrom loads events from a given sequence for replay, used for both
// warm restart (replay from snapshot) and cold restart (replay all).
func (sm *SnapshotManager) LoadEventsFrom(ctx context.Context, fromSequence int64, limit int) ([]EventRow, error) {
	rows, err := sm.db.QueryContext(ctx, `
		SELECT sequence, event_type, idempotency_key, pool_id, payload,
		       state_hash, prev_hash, timestamp, source_sequence
		FROM event_log.events
		WHERE sequence >= $1
		ORDER BY sequence ASC
		LIMIT $2
	`, fromSequence, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []EventRow
	for rows.Next() {
		var e EventRow
		if err := rows.Scan(
			&e.Sequence, &e.EventType, &e.IdempotencyKey, &e.PoolID,
			&e.Payload, &e.StateHash, &e.PrevHash, &e.Timestamp, &e.SourceSequence,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// GetLatestSequence returns the highest sequence in the event log.
func (sm *SnapshotManager) GetLatestSequence(ctx context.Context) (int64, error) {
	var seq sql.NullInt64
	err := sm.db.QueryRowContext(ctx, `
		SELECT MAX(sequence) FROM event_log.events
	`).Scan(&seq)
	if err != nil {
		return 0, err
	}
	if !seq.Valid {
		return 0, nil // Empty event log
	}
	return seq.Int64, nil
}
