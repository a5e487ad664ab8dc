package ingestion

import (
	"context"
	"fmt"
	"time"

	"SidePool/internal/event"

	"github.com/google/uuid"
)

// GRPCIngestService provides admin/manual event injection via gRPC.
// This surface is for admin operations and backfills, not for
// high-throughput ingestion (use NATS for that).
type GRPCIngestService struct {
	eventChan chan<- event.Event
}

func NewGRPCIngestService(eventChan chan<- event.Event) *GRPCIngestService {
	return &GRPCIngestService{eventChan: eventChan}
}

// EventChan exposes the injection channel for callers that build
// events themselves (the gRPC server's SubmitEvent path).
func (s *GRPCIngestService) EventChan() chan<- event.Event {
	return s.eventChan
}

// InjectPoolBinding manually binds a pool over an asset pair.
func (s *GRPCIngestService) InjectPoolBinding(
	ctx context.Context,
	poolID uuid.UUID,
	assetA, assetB string,
) error {
	if assetA == assetB {
		return fmt.Errorf("pool assets must differ")
	}

	evt := &event.PoolBound{
		Pool:      poolID,
		AssetA:    assetA,
		AssetB:    assetB,
		Sequence:  0,
		Timestamp: time.Now(),
	}

	select {
	case s.eventChan <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// InjectFund manually injects a FundRequested event.
func (s *GRPCIngestService) InjectFund(
	ctx context.Context,
	poolID, depositorID uuid.UUID,
	asset string,
	amount int64,
	sequence int64,
) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	evt := &event.FundRequested{
		RequestID:   uuid.New(),
		Pool:        poolID,
		DepositorID: depositorID,
		Asset:       asset,
		Amount:      amount,
		Sequence:    sequence,
		Timestamp:   time.Now(),
	}

	select {
	case s.eventChan <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// InjectDefund manually injects a DefundRequested event.
func (s *GRPCIngestService) InjectDefund(
	ctx context.Context,
	poolID, depositorID uuid.UUID,
	asset string,
	amount int64,
	sequence int64,
) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	evt := &event.DefundRequested{
		RequestID:   uuid.New(),
		Pool:        poolID,
		DepositorID: depositorID,
		Asset:       asset,
		Amount:      amount,
		Sequence:    sequence,
		Timestamp:   time.Now(),
	}

	select {
	case s.eventChan <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
