package query_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"SidePool/internal/persistence"
	"SidePool/internal/query"
	"SidePool/internal/testutil"
)

func setupQueryDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()
	testutil.RequireIntegration(t)

	db, cleanup := testutil.SetupTestDB(t)
	if err := persistence.NewMigrator(db, "../../migrations").Up(context.Background()); err != nil {
		cleanup()
		t.Fatalf("run migrations: %v", err)
	}
	return db, cleanup
}

func mustExec(t *testing.T, db *sql.DB, q string, args ...interface{}) {
	t.Helper()
	if _, err := db.Exec(q, args...); err != nil {
		t.Fatalf("exec %q: %v", q, err)
	}
}

func TestGetDepositorBalance(t *testing.T) {
	db, cleanup := setupQueryDB(t)
	defer cleanup()

	depositor := uuid.New()
	pool := uuid.New()

	mustExec(t, db, `
		INSERT INTO projections.watermark (worker_id, last_sequence, updated_at)
		VALUES ('main', 17, NOW())
	`)
	mustExec(t, db, `
		INSERT INTO projections.depositor_balances (depositor_id, pool_id, asset, amount, last_sequence)
		VALUES ($1, $2, 'USDC', 5000, 17)
	`, depositor, pool)

	svc := query.NewQueryService(db)
	resp, err := svc.GetDepositorBalance(context.Background(), depositor, pool, "USDC")
	if err != nil {
		t.Fatalf("GetDepositorBalance: %v", err)
	}
	if resp.Amount != 5000 {
		t.Errorf("amount = %d, want 5000", resp.Amount)
	}
	if resp.AsOfSequence != 17 {
		t.Errorf("as_of_sequence = %d, want 17", resp.AsOfSequence)
	}

	// Unknown depositor reads as zero, not an error.
	resp, err = svc.GetDepositorBalance(context.Background(), uuid.New(), pool, "USDC")
	if err != nil {
		t.Fatalf("GetDepositorBalance (unknown): %v", err)
	}
	if resp.Amount != 0 {
		t.Errorf("unknown depositor amount = %d, want 0", resp.Amount)
	}
}

func TestGetReservoirLevels(t *testing.T) {
	db, cleanup := setupQueryDB(t)
	defer cleanup()

	pool := uuid.New()

	mustExec(t, db, `
		INSERT INTO projections.reservoir_levels (pool_id, asset, reservoir, net_funded, last_sequence)
		VALUES ($1, 'DAI', -120, 900, 3), ($1, 'USDC', 40, 200, 3)
	`, pool)

	svc := query.NewQueryService(db)
	levels, err := svc.GetReservoirLevels(context.Background(), pool)
	if err != nil {
		t.Fatalf("GetReservoirLevels: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("got %d levels, want 2", len(levels))
	}

	// Ordered by asset; surplus is the negated reservoir.
	if levels[0].Asset != "DAI" || levels[0].Reservoir != -120 || levels[0].Surplus != 120 {
		t.Errorf("DAI level = %+v", levels[0])
	}
	if levels[1].Asset != "USDC" || levels[1].Reservoir != 40 || levels[1].Surplus != -40 {
		t.Errorf("USDC level = %+v", levels[1])
	}
}

func TestGetPositionDebtsSkipsRepaid(t *testing.T) {
	db, cleanup := setupQueryDB(t)
	defer cleanup()

	pool := uuid.New()
	controller := uuid.New()

	mustExec(t, db, `
		INSERT INTO projections.position_debts (pool_id, controller, salt, asset, debt, last_sequence)
		VALUES ($1, $2, 'aa', 'USDC', 300, 5),
		       ($1, $2, 'bb', 'USDC', 0, 6),
		       ($1, $3, 'cc', 'DAI', 75, 7)
	`, pool, controller, uuid.New())

	svc := query.NewQueryService(db)

	debts, err := svc.GetPositionDebts(context.Background(), pool, nil, 100)
	if err != nil {
		t.Fatalf("GetPositionDebts: %v", err)
	}
	if len(debts) != 2 {
		t.Fatalf("got %d debts, want 2 (zero-debt position must be skipped)", len(debts))
	}

	filtered, err := svc.GetPositionDebts(context.Background(), pool, &controller, 100)
	if err != nil {
		t.Fatalf("GetPositionDebts (filtered): %v", err)
	}
	if len(filtered) != 1 {
		t.Fatalf("got %d filtered debts, want 1", len(filtered))
	}
	if filtered[0].Salt != "aa" || filtered[0].Debt != 300 {
		t.Errorf("filtered debt = %+v", filtered[0])
	}
}

func TestGetOperationsPagination(t *testing.T) {
	db, cleanup := setupQueryDB(t)
	defer cleanup()

	pool := uuid.New()

	for seq := int64(1); seq <= 5; seq++ {
		mustExec(t, db, `
			INSERT INTO projections.pool_operations
				(sequence, pool_id, event_type, correction_a, correction_b, payload, timestamp_us)
			VALUES ($1, $2, 'position_changed', $3, NULL, '{}', $4)
		`, seq, pool, seq*10, 1000000+seq)
	}

	svc := query.NewQueryService(db)

	page, err := svc.GetOperations(context.Background(), pool, 2, nil)
	if err != nil {
		t.Fatalf("GetOperations: %v", err)
	}
	if len(page) != 2 || page[0].Sequence != 5 || page[1].Sequence != 4 {
		t.Fatalf("first page = %+v, want sequences [5 4]", page)
	}

	cursor := page[1].Sequence
	page, err = svc.GetOperations(context.Background(), pool, 2, &cursor)
	if err != nil {
		t.Fatalf("GetOperations (cursor): %v", err)
	}
	if len(page) != 2 || page[0].Sequence != 3 || page[1].Sequence != 2 {
		t.Fatalf("second page = %+v, want sequences [3 2]", page)
	}
}

func TestVerifyIntegrityEmptyLog(t *testing.T) {
	db, cleanup := setupQueryDB(t)
	defer cleanup()

	svc := query.NewQueryService(db)
	report, err := svc.VerifyIntegrity(context.Background())
	if err != nil {
		t.Fatalf("VerifyIntegrity: %v", err)
	}
	if !report.IsHealthy {
		t.Errorf("empty log should be healthy: %+v", report)
	}
}
