package custody

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"SidePool/internal/ledger"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// Subjects for the custody vault and the AMM settlement authority.
// Both are request/reply services on core NATS (not JetStream): the
// deterministic core needs a synchronous answer before it commits an event.
const (
	SubjectTransferIn  = "sidepool.custody.transfer.in"
	SubjectTransferOut = "sidepool.custody.transfer.out"
	SubjectSettle      = "sidepool.amm.settle"
	SubjectTake        = "sidepool.amm.take"
)

// DefaultRequestTimeout bounds every custody round trip. The core is stalled
// while a request is in flight, so this is also the per-event latency ceiling.
const DefaultRequestTimeout = 5 * time.Second

type transferRequest struct {
	Asset  string `json:"asset"`
	Party  string `json:"party"`
	Amount int64  `json:"amount"`
}

type settlementRequest struct {
	Asset  string `json:"asset"`
	Amount int64  `json:"amount"`
}

type custodyReply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// VaultClient moves asset units between depositors and engine custody over
// NATS request/reply. It implements pool.Mover.
type VaultClient struct {
	nc      *nats.Conn
	timeout time.Duration
}

func NewVaultClient(nc *nats.Conn, timeout time.Duration) *VaultClient {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &VaultClient{nc: nc, timeout: timeout}
}

func (c *VaultClient) TransferIn(ctx context.Context, asset ledger.AssetID, from uuid.UUID, amount int64) error {
	return c.transfer(ctx, SubjectTransferIn, asset, from, amount)
}

func (c *VaultClient) TransferOut(ctx context.Context, asset ledger.AssetID, to uuid.UUID, amount int64) error {
	return c.transfer(ctx, SubjectTransferOut, asset, to, amount)
}

func (c *VaultClient) transfer(ctx context.Context, subject string, asset ledger.AssetID, party uuid.UUID, amount int64) error {
	assetName, ok := ledger.GetAssetName(asset)
	if !ok {
		return fmt.Errorf("unknown asset id %d", asset)
	}

	req := transferRequest{
		Asset:  assetName,
		Party:  party.String(),
		Amount: amount,
	}

	return request(ctx, c.nc, subject, req, c.timeout)
}

// SettlementClient talks to the AMM engine's balance-accounting surface over
// NATS request/reply. It implements pool.SettlementAuthority.
type SettlementClient struct {
	nc      *nats.Conn
	timeout time.Duration
}

func NewSettlementClient(nc *nats.Conn, timeout time.Duration) *SettlementClient {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &SettlementClient{nc: nc, timeout: timeout}
}

func (c *SettlementClient) Settle(ctx context.Context, asset ledger.AssetID, amount int64) error {
	return c.settlement(ctx, SubjectSettle, asset, amount)
}

func (c *SettlementClient) Take(ctx context.Context, asset ledger.AssetID, amount int64) error {
	return c.settlement(ctx, SubjectTake, asset, amount)
}

func (c *SettlementClient) settlement(ctx context.Context, subject string, asset ledger.AssetID, amount int64) error {
	assetName, ok := ledger.GetAssetName(asset)
	if !ok {
		return fmt.Errorf("unknown asset id %d", asset)
	}

	req := settlementRequest{
		Asset:  assetName,
		Amount: amount,
	}

	return request(ctx, c.nc, subject, req, c.timeout)
}

func request(ctx context.Context, nc *nats.Conn, subject string, payload interface{}, timeout time.Duration) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", subject, err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	msg, err := nc.RequestWithContext(reqCtx, subject, data)
	if err != nil {
		return fmt.Errorf("request %s: %w", subject, err)
	}

	var reply custodyReply
	if err := json.Unmarshal(msg.Data, &reply); err != nil {
		return fmt.Errorf("decode %s reply: %w", subject, err)
	}

	if !reply.OK {
		return fmt.Errorf("%s rejected: %s", subject, reply.Error)
	}

	return nil
}
