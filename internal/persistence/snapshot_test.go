package persistence

import (
	"encoding/json"
	"testing"

	"SidePool/internal/ledger"
	"SidePool/internal/pool"

	"github.com/google/uuid"
)

func TestPoolSnapshotRoundTrip(t *testing.T) {
	depositor := uuid.New()
	controller := uuid.New()
	salt := [32]byte{0xde, 0xad}

	st := pool.State{
		ID:        uuid.New(),
		AssetA:    ledger.AssetUSDC,
		AssetB:    ledger.AssetWETH,
		Reservoir: [2]int64{-600, 0},
		NetFunded: [2]int64{1000, 0},
		Claims: []pool.ClaimEntry{
			{Depositor: depositor, Slot: pool.SlotA, Amount: 1000},
		},
		Debts: []pool.DebtEntry{
			{Position: pool.NewPositionID(controller, salt), DebtA: -400, DebtB: 0},
		},
	}

	snap := PoolSnapshotFromState(st)

	// Survives JSON, which is how snapshots are stored
	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded PoolSnapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got, err := decoded.ToPoolState()
	if err != nil {
		t.Fatalf("to pool state: %v", err)
	}

	if got.ID != st.ID || got.AssetA != st.AssetA || got.AssetB != st.AssetB {
		t.Errorf("identity mismatch: got %v/%v/%v", got.ID, got.AssetA, got.AssetB)
	}
	if got.Reservoir != st.Reservoir {
		t.Errorf("reservoir = %v, want %v", got.Reservoir, st.Reservoir)
	}
	if got.NetFunded != st.NetFunded {
		t.Errorf("net funded = %v, want %v", got.NetFunded, st.NetFunded)
	}
	if len(got.Claims) != 1 || got.Claims[0].Depositor != depositor || got.Claims[0].Amount != 1000 {
		t.Errorf("claims = %+v", got.Claims)
	}
	if len(got.Debts) != 1 {
		t.Fatalf("debts = %+v", got.Debts)
	}
	if got.Debts[0].Position != pool.NewPositionID(controller, salt) {
		t.Error("position identity did not survive the round trip")
	}
	if got.Debts[0].DebtA != -400 {
		t.Errorf("debt A = %d, want -400", got.Debts[0].DebtA)
	}
}

func TestPoolSnapshot_BadSaltRejected(t *testing.T) {
	snap := PoolSnapshot{
		PoolID: uuid.New().String(),
		Debts: []DebtSnapshot{
			{Controller: uuid.New().String(), Salt: "zz", DebtA: 0},
		},
	}
	if _, err := snap.ToPoolState(); err == nil {
		t.Fatal("expected error for malformed salt")
	}
}
