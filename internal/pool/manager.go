package pool

import (
	"fmt"

	"SidePool/internal/ledger"

	"github.com/google/uuid"
)

// Manager owns all bound pools. Like every core structure it is accessed only
// from the single-threaded deterministic core.
type Manager struct {
	pools map[uuid.UUID]*Pool
}

func NewManager() *Manager {
	return &Manager{
		pools: make(map[uuid.UUID]*Pool),
	}
}

// Bind creates a pool over a pair of assets. Binding the same pool ID twice
// is rejected; state persists for the pool's lifetime.
func (m *Manager) Bind(id uuid.UUID, assetA, assetB ledger.AssetID) (*Pool, error) {
	if _, exists := m.pools[id]; exists {
		return nil, fmt.Errorf("%w: %s", ErrPoolExists, id)
	}
	if assetA == assetB {
		return nil, fmt.Errorf("pool %s: assets must differ", id)
	}

	p := NewPool(id, assetA, assetB)
	m.pools[id] = p
	return p, nil
}

// Get returns a bound pool or ErrUnknownPool
func (m *Manager) Get(id uuid.UUID) (*Pool, error) {
	p, ok := m.pools[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPool, id)
	}
	return p, nil
}

// All returns every bound pool (snapshot/validation walks)
func (m *Manager) All() []*Pool {
	out := make([]*Pool, 0, len(m.pools))
	for _, p := range m.pools {
		out = append(out, p)
	}
	return out
}

// Restore rebuilds the registry from snapshot state
func (m *Manager) Restore(states []State) {
	m.pools = make(map[uuid.UUID]*Pool, len(states))
	for _, st := range states {
		m.pools[st.ID] = RestoreState(st)
	}
}
