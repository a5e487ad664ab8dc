package ledger_test

import (
	"testing"

	"SidePool/internal/ledger"

	"github.com/google/uuid"
)

// ============================================================================
// Test: AccountKey
// ============================================================================

func TestAccountKey_DepositorPath(t *testing.T) {
	depositorID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	assetID, _ := ledger.GetAssetID("USDC")
	key := ledger.NewDepositorAccountKey(depositorID, assetID)

	path := key.AccountPath()
	expected := "depositor:550e8400-e29b-41d4-a716-446655440000:claim:USDC"
	if path != expected {
		t.Errorf("got %q, want %q", path, expected)
	}
}

func TestAccountKey_PoolPath(t *testing.T) {
	poolID := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	assetID, _ := ledger.GetAssetID("WETH")
	key := ledger.NewPoolAccountKey(poolID, ledger.SubTypeReservoir, assetID)

	path := key.AccountPath()
	expected := "pool:11111111-2222-3333-4444-555555555555:reservoir:WETH"
	if path != expected {
		t.Errorf("got %q, want %q", path, expected)
	}
}

func TestAccountKey_ExternalPath(t *testing.T) {
	assetID, _ := ledger.GetAssetID("USDC")
	key := ledger.NewExternalAccountKey(ledger.SubTypeExternalVault, assetID)

	path := key.AccountPath()
	if path != "external:vault:USDC" {
		t.Errorf("got %q, want %q", path, "external:vault:USDC")
	}
}

func TestParseAccountPath_RoundTrip(t *testing.T) {
	depositorID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	poolID := uuid.MustParse("11111111-2222-3333-4444-555555555555")

	keys := []ledger.AccountKey{
		ledger.NewDepositorAccountKey(depositorID, ledger.AssetUSDC),
		ledger.NewPoolAccountKey(poolID, ledger.SubTypeReservoir, ledger.AssetWETH),
		ledger.NewPoolAccountKey(poolID, ledger.SubTypePositionDebt, ledger.AssetDAI),
		ledger.NewExternalAccountKey(ledger.SubTypeExternalVault, ledger.AssetUSDT),
		ledger.NewExternalAccountKey(ledger.SubTypeExternalSettlement, ledger.AssetWBTC),
	}

	for _, key := range keys {
		path := key.AccountPath()
		parsed, err := ledger.ParseAccountPath(path)
		if err != nil {
			t.Errorf("ParseAccountPath(%q): %v", path, err)
			continue
		}
		if parsed != key {
			t.Errorf("round trip %q: got %+v, want %+v", path, parsed, key)
		}
	}
}

func TestParseAccountPath_Malformed(t *testing.T) {
	paths := []string{
		"",
		"depositor",
		"depositor:not-a-uuid:claim:USDC",
		"depositor:550e8400-e29b-41d4-a716-446655440000:claim",
		"depositor:550e8400-e29b-41d4-a716-446655440000:margin:USDC",
		"pool:11111111-2222-3333-4444-555555555555:reservoir:DOGE",
		"external:vault",
		"treasury:vault:USDC",
	}

	for _, path := range paths {
		if _, err := ledger.ParseAccountPath(path); err == nil {
			t.Errorf("ParseAccountPath(%q) should fail", path)
		}
	}
}

func TestGetAssetID_Known(t *testing.T) {
	id, ok := ledger.GetAssetID("USDC")
	if !ok {
		t.Fatal("USDC should be a known asset")
	}
	if id == 0 {
		t.Error("USDC asset ID should be non-zero")
	}
}

func TestGetAssetID_Unknown(t *testing.T) {
	_, ok := ledger.GetAssetID("DOGE")
	if ok {
		t.Error("DOGE should not be a known asset")
	}
}

// ============================================================================
// Test: BalanceTracker
// ============================================================================

func TestBalanceTracker_InitialBalanceZero(t *testing.T) {
	bt := ledger.NewBalanceTracker()
	depositorID := uuid.New()
	assetID, _ := ledger.GetAssetID("USDC")

	if got := bt.GetDepositorClaim(depositorID, assetID); got != 0 {
		t.Errorf("initial claim should be 0, got %d", got)
	}
}

func TestBalanceTracker_FundBatch(t *testing.T) {
	bt := ledger.NewBalanceTracker()
	jg := ledger.NewJournalGenerator(0)
	depositorID := uuid.New()
	assetID, _ := ledger.GetAssetID("USDC")

	batch := jg.GenerateFund("fund-1", depositorID, assetID, 1_000_000, 0)
	if err := bt.ApplyBatch(batch); err != nil {
		t.Fatalf("ApplyBatch failed: %v", err)
	}

	if got := bt.GetDepositorClaim(depositorID, assetID); got != 1_000_000 {
		t.Errorf("claim: got %d, want 1_000_000", got)
	}
}

func TestBalanceTracker_GlobalBalanceZeroSum(t *testing.T) {
	bt := ledger.NewBalanceTracker()
	jg := ledger.NewJournalGenerator(0)
	validator := ledger.NewInvariantValidator(bt)
	depositorID := uuid.New()
	poolID := uuid.New()
	assetID, _ := ledger.GetAssetID("WETH")

	for _, batch := range []*ledger.Batch{
		jg.GenerateFund("fund-1", depositorID, assetID, 1_000, 0),
		jg.GenerateMatch("change-1", poolID, assetID, -400, 0),
		jg.GenerateUnwind("change-2", poolID, assetID, 250, 0),
		jg.GenerateDefund("defund-1", depositorID, assetID, 100, 0),
	} {
		if err := bt.ApplyBatch(batch); err != nil {
			t.Fatalf("ApplyBatch failed: %v", err)
		}
	}

	if err := validator.ValidateGlobalBalance(); err != nil {
		t.Errorf("ledger not zero-sum: %v", err)
	}
}

func TestBalanceTracker_MatchAndUnwindBooks(t *testing.T) {
	bt := ledger.NewBalanceTracker()
	jg := ledger.NewJournalGenerator(0)
	validator := ledger.NewInvariantValidator(bt)
	poolID := uuid.New()
	assetID, _ := ledger.GetAssetID("USDC")

	if err := bt.ApplyBatch(jg.GenerateMatch("change-1", poolID, assetID, -400, 0)); err != nil {
		t.Fatal(err)
	}

	if got := bt.GetPoolPositionDebt(poolID, assetID); got != 400 {
		t.Errorf("position debt book: got %d, want 400", got)
	}
	if got := bt.GetPoolReservoir(poolID, assetID); got != -400 {
		t.Errorf("reservoir book: got %d, want -400", got)
	}
	if err := validator.ValidatePoolBooksOffset(poolID, assetID); err != nil {
		t.Error(err)
	}

	if err := bt.ApplyBatch(jg.GenerateUnwind("change-2", poolID, assetID, 400, 0)); err != nil {
		t.Fatal(err)
	}

	if got := bt.GetPoolPositionDebt(poolID, assetID); got != 0 {
		t.Errorf("position debt book after unwind: got %d, want 0", got)
	}
	if err := validator.ValidatePoolBooksOffset(poolID, assetID); err != nil {
		t.Error(err)
	}
}

// ============================================================================
// Test: Batch validation
// ============================================================================

func TestBatch_RejectsNonPositiveAmount(t *testing.T) {
	assetID, _ := ledger.GetAssetID("USDC")
	batchID := uuid.New()

	batch := &ledger.Batch{
		BatchID: batchID,
		Journals: []ledger.Journal{
			{
				JournalID:     uuid.New(),
				BatchID:       batchID,
				DebitAccount:  ledger.NewDepositorAccountKey(uuid.New(), assetID),
				CreditAccount: ledger.NewExternalAccountKey(ledger.SubTypeExternalVault, assetID),
				AssetID:       assetID,
				Amount:        0,
			},
		},
	}

	if err := batch.Validate(); err == nil {
		t.Error("zero-amount journal should fail validation")
	}
}

func TestBatch_RejectsSelfTransfer(t *testing.T) {
	assetID, _ := ledger.GetAssetID("USDC")
	batchID := uuid.New()
	key := ledger.NewExternalAccountKey(ledger.SubTypeExternalVault, assetID)

	batch := &ledger.Batch{
		BatchID: batchID,
		Journals: []ledger.Journal{
			{
				JournalID:     uuid.New(),
				BatchID:       batchID,
				DebitAccount:  key,
				CreditAccount: key,
				AssetID:       assetID,
				Amount:        100,
			},
		},
	}

	if err := batch.Validate(); err == nil {
		t.Error("self-transfer journal should fail validation")
	}
}

func TestBatch_RejectsEmpty(t *testing.T) {
	batch := &ledger.Batch{BatchID: uuid.New()}
	if err := batch.Validate(); err == nil {
		t.Error("empty batch should fail validation")
	}
}

func TestGenerator_ZeroMatchProducesEmptyBatch(t *testing.T) {
	jg := ledger.NewJournalGenerator(0)
	poolID := uuid.New()
	assetID, _ := ledger.GetAssetID("USDC")

	batch := jg.GenerateMatch("change-1", poolID, assetID, 0, 0)
	if len(batch.Journals) != 0 {
		t.Errorf("zero match should produce no journals, got %d", len(batch.Journals))
	}
}
