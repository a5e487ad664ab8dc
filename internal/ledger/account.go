package ledger

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// AccountScope represents the top-level account namespace
type AccountScope uint8

const (
	AccountScopeDepositor AccountScope = iota
	AccountScopePool
	AccountScopeExternal
)

// AccountSubType represents the account purpose
type AccountSubType uint8

const (
	// Depositor sub-types
	SubTypeClaim AccountSubType = iota

	// Pool sub-types
	SubTypeReservoir
	SubTypePositionDebt

	// External sub-types
	SubTypeExternalVault
	SubTypeExternalSettlement
)

// AssetID maps asset strings to numeric IDs for performance
type AssetID uint16

const (
	AssetUSDC AssetID = 1
	AssetUSDT AssetID = 2
	AssetWETH AssetID = 3
	AssetWBTC AssetID = 4
	AssetDAI  AssetID = 5
)

var (
	assetToID = map[string]AssetID{
		"USDC": AssetUSDC,
		"USDT": AssetUSDT,
		"WETH": AssetWETH,
		"WBTC": AssetWBTC,
		"DAI":  AssetDAI,
	}
	idToAsset = map[AssetID]string{
		AssetUSDC: "USDC",
		AssetUSDT: "USDT",
		AssetWETH: "WETH",
		AssetWBTC: "WBTC",
		AssetDAI:  "DAI",
	}
)

func GetAssetID(asset string) (AssetID, bool) {
	id, ok := assetToID[asset]
	return id, ok
}

func GetAssetName(id AssetID) (string, bool) {
	name, ok := idToAsset[id]
	return name, ok
}

// AccountKey is the in-memory key for balance tracking (21 bytes, cache-friendly)
type AccountKey struct {
	Scope    AccountScope
	EntityID [16]byte // depositor UUID or pool UUID; zero for external accounts
	SubType  AccountSubType
	AssetID  AssetID
}

// NewDepositorAccountKey creates a key for a depositor's claimable balance
func NewDepositorAccountKey(depositorID uuid.UUID, assetID AssetID) AccountKey {
	return AccountKey{
		Scope:    AccountScopeDepositor,
		EntityID: depositorID,
		SubType:  SubTypeClaim,
		AssetID:  assetID,
	}
}

// NewPoolAccountKey creates a key for one of a pool's internal books
// (unmatched reservoir surplus or aggregate fronted position debt)
func NewPoolAccountKey(poolID uuid.UUID, subType AccountSubType, assetID AssetID) AccountKey {
	return AccountKey{
		Scope:    AccountScopePool,
		EntityID: poolID,
		SubType:  subType,
		AssetID:  assetID,
	}
}

// NewExternalAccountKey creates a key for external boundary accounts
func NewExternalAccountKey(subType AccountSubType, assetID AssetID) AccountKey {
	return AccountKey{
		Scope:   AccountScopeExternal,
		SubType: subType,
		AssetID: assetID,
	}
}

// AccountPath returns the string representation for storage/logging
func (k AccountKey) AccountPath() string {
	assetName, _ := GetAssetName(k.AssetID)

	switch k.Scope {
	case AccountScopeDepositor:
		uid := uuid.UUID(k.EntityID)
		return fmt.Sprintf("depositor:%s:%s:%s", uid.String(), k.subTypeName(), assetName)
	case AccountScopePool:
		pid := uuid.UUID(k.EntityID)
		return fmt.Sprintf("pool:%s:%s:%s", pid.String(), k.subTypeName(), assetName)
	case AccountScopeExternal:
		return fmt.Sprintf("external:%s:%s", k.subTypeName(), assetName)
	}
	return "unknown"
}

// ParseAccountPath is the inverse of AccountPath, used when restoring
// balances from a snapshot. Malformed paths return an error rather than
// a zero key so corruption is caught at restore time.
func ParseAccountPath(path string) (AccountKey, error) {
	parts := strings.Split(path, ":")

	switch parts[0] {
	case "depositor", "pool":
		if len(parts) != 4 {
			return AccountKey{}, fmt.Errorf("malformed account path: %s", path)
		}
		entityID, err := uuid.Parse(parts[1])
		if err != nil {
			return AccountKey{}, fmt.Errorf("account path %s: %w", path, err)
		}
		subType, ok := subTypeFromName(parts[2])
		if !ok {
			return AccountKey{}, fmt.Errorf("account path %s: unknown sub-type %s", path, parts[2])
		}
		assetID, ok := GetAssetID(parts[3])
		if !ok {
			return AccountKey{}, fmt.Errorf("account path %s: unknown asset %s", path, parts[3])
		}
		scope := AccountScopeDepositor
		if parts[0] == "pool" {
			scope = AccountScopePool
		}
		return AccountKey{Scope: scope, EntityID: entityID, SubType: subType, AssetID: assetID}, nil

	case "external":
		if len(parts) != 3 {
			return AccountKey{}, fmt.Errorf("malformed account path: %s", path)
		}
		subType, ok := subTypeFromName(parts[1])
		if !ok {
			return AccountKey{}, fmt.Errorf("account path %s: unknown sub-type %s", path, parts[1])
		}
		assetID, ok := GetAssetID(parts[2])
		if !ok {
			return AccountKey{}, fmt.Errorf("account path %s: unknown asset %s", path, parts[2])
		}
		return AccountKey{Scope: AccountScopeExternal, SubType: subType, AssetID: assetID}, nil
	}

	return AccountKey{}, fmt.Errorf("unknown account scope in path: %s", path)
}

func subTypeFromName(name string) (AccountSubType, bool) {
	switch name {
	case "claim":
		return SubTypeClaim, true
	case "reservoir":
		return SubTypeReservoir, true
	case "position_debt":
		return SubTypePositionDebt, true
	case "vault":
		return SubTypeExternalVault, true
	case "settlement":
		return SubTypeExternalSettlement, true
	}
	return 0, false
}

func (k AccountKey) subTypeName() string {
	switch k.SubType {
	case SubTypeClaim:
		return "claim"
	case SubTypeReservoir:
		return "reservoir"
	case SubTypePositionDebt:
		return "position_debt"
	case SubTypeExternalVault:
		return "vault"
	case SubTypeExternalSettlement:
		return "settlement"
	default:
		return "unknown"
	}
}
