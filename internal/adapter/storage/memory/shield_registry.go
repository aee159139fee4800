package memory

import (
	"sync"

	"cerebro-wallet/internal/core/domain"
)

// ShieldRegistry holds configured shields in registration order.
type ShieldRegistry struct {
	mu      sync.RWMutex
	byID    map[string]int
	shields []domain.Shield
}

// NewShieldRegistry creates an empty shield registry.
func NewShieldRegistry() *ShieldRegistry {
	return &ShieldRegistry{byID: make(map[string]int)}
}

// Register adds or replaces a shield definition.
func (r *ShieldRegistry) Register(shield domain.Shield) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if idx, ok := r.byID[shield.ID]; ok {
		r.shields[idx] = shield
		return
	}
	r.byID[shield.ID] = len(r.shields)
	r.shields = append(r.shields, shield)
}

func (r *ShieldRegistry) Get(id string) (domain.Shield, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byID[id]
	if !ok {
		return domain.Shield{}, false
	}
	return r.shields[idx], true
}

// SetEnabled toggles a shield without replacing its rule. Reports whether
// the shield exists.
func (r *ShieldRegistry) SetEnabled(id string, enabled bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx, ok := r.byID[id]
	if !ok {
		return false
	}
	r.shields[idx].Enabled = enabled
	return true
}

func (r *ShieldRegistry) List() []domain.Shield {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Shield(nil), r.shields...)
}
