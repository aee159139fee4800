package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"cerebro-wallet/internal/core/domain"
)

// WalletStore is the reference in-memory wallet store.
type WalletStore struct {
	mu      sync.RWMutex
	wallets map[string]*domain.Wallet
}

// NewWalletStore creates an empty in-memory wallet store.
func NewWalletStore() *WalletStore {
	return &WalletStore{wallets: make(map[string]*domain.Wallet)}
}

func (s *WalletStore) Create(_ context.Context, w *domain.Wallet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.wallets[w.OwnerID]; ok {
		return fmt.Errorf("wallet %s already exists", w.OwnerID)
	}
	cp := *w
	s.wallets[w.OwnerID] = &cp
	return nil
}

func (s *WalletStore) Get(_ context.Context, ownerID string) (*domain.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.wallets[ownerID]
	if !ok {
		return nil, nil
	}
	cp := *w
	cp.ActiveShieldIDs = append([]string(nil), w.ActiveShieldIDs...)
	return &cp, nil
}

func (s *WalletStore) Update(_ context.Context, w *domain.Wallet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.wallets[w.OwnerID]; !ok {
		return fmt.Errorf("wallet %s not found", w.OwnerID)
	}
	cp := *w
	cp.ActiveShieldIDs = append([]string(nil), w.ActiveShieldIDs...)
	s.wallets[w.OwnerID] = &cp
	return nil
}

func (s *WalletStore) List(_ context.Context) ([]domain.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Wallet, 0, len(s.wallets))
	for _, w := range s.wallets {
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OwnerID < out[j].OwnerID })
	return out, nil
}
