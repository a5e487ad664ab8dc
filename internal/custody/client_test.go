package custody

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"SidePool/internal/ledger"
	"SidePool/internal/testutil"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

func connectTestNATS(t *testing.T) *nats.Conn {
	t.Helper()
	testutil.RequireIntegration(t)

	nc, err := nats.Connect(testutil.TestNATSURL())
	if err != nil {
		t.Skipf("test nats not available: %v", err)
	}
	t.Cleanup(nc.Close)
	return nc
}

func respondWith(t *testing.T, nc *nats.Conn, subject string, reply custodyReply) *nats.Subscription {
	t.Helper()
	sub, err := nc.Subscribe(subject, func(msg *nats.Msg) {
		data, _ := json.Marshal(reply)
		msg.Respond(data)
	})
	if err != nil {
		t.Fatalf("subscribe %s: %v", subject, err)
	}
	t.Cleanup(func() { sub.Unsubscribe() })
	return sub
}

func TestVaultClient_TransferIn(t *testing.T) {
	nc := connectTestNATS(t)

	var got transferRequest
	sub, err := nc.Subscribe(SubjectTransferIn, func(msg *nats.Msg) {
		json.Unmarshal(msg.Data, &got)
		data, _ := json.Marshal(custodyReply{OK: true})
		msg.Respond(data)
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer sub.Unsubscribe()

	client := NewVaultClient(nc, 2*time.Second)
	depositor := uuid.New()

	if err := client.TransferIn(context.Background(), ledger.AssetUSDC, depositor, 1500); err != nil {
		t.Fatalf("transfer in: %v", err)
	}

	if got.Asset != "USDC" || got.Party != depositor.String() || got.Amount != 1500 {
		t.Errorf("request = %+v, want asset=USDC party=%s amount=1500", got, depositor)
	}
}

func TestVaultClient_RejectedTransfer(t *testing.T) {
	nc := connectTestNATS(t)
	respondWith(t, nc, SubjectTransferOut, custodyReply{OK: false, Error: "frozen account"})

	client := NewVaultClient(nc, 2*time.Second)

	err := client.TransferOut(context.Background(), ledger.AssetUSDC, uuid.New(), 100)
	if err == nil {
		t.Fatal("expected error from rejected transfer")
	}
}

func TestSettlementClient_SettleAndTake(t *testing.T) {
	nc := connectTestNATS(t)
	respondWith(t, nc, SubjectSettle, custodyReply{OK: true})
	respondWith(t, nc, SubjectTake, custodyReply{OK: true})

	client := NewSettlementClient(nc, 2*time.Second)

	if err := client.Settle(context.Background(), ledger.AssetWETH, 400); err != nil {
		t.Errorf("settle: %v", err)
	}
	if err := client.Take(context.Background(), ledger.AssetWETH, 250); err != nil {
		t.Errorf("take: %v", err)
	}
}

func TestVaultClient_TimeoutWhenNoResponder(t *testing.T) {
	nc := connectTestNATS(t)

	client := NewVaultClient(nc, 200*time.Millisecond)

	err := client.TransferIn(context.Background(), ledger.AssetDAI, uuid.New(), 1)
	if err == nil {
		t.Fatal("expected timeout with no responder")
	}
}
