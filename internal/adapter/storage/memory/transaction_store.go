package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"cerebro-wallet/internal/core/domain"

	"github.com/google/uuid"
)

type effectKey struct {
	txID   uuid.UUID
	status domain.TransactionStatus
}

// TransactionStore is the reference in-memory transaction store. Effect
// tracking lives here per the store contract so the ledger and the record
// of what it applied cannot diverge.
type TransactionStore struct {
	mu           sync.RWMutex
	transactions map[uuid.UUID]*domain.Transaction
	effects      map[effectKey]struct{}
}

// NewTransactionStore creates an empty in-memory transaction store.
func NewTransactionStore() *TransactionStore {
	return &TransactionStore{
		transactions: make(map[uuid.UUID]*domain.Transaction),
		effects:      make(map[effectKey]struct{}),
	}
}

func (s *TransactionStore) Create(_ context.Context, t *domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[t.ID]; ok {
		return fmt.Errorf("transaction %s already exists", t.ID)
	}
	cp := *t
	s.transactions[t.ID] = &cp
	return nil
}

func (s *TransactionStore) Get(_ context.Context, id uuid.UUID) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transactions[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (s *TransactionStore) UpdateStatus(_ context.Context, id uuid.UUID, status domain.TransactionStatus, processedAt *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.transactions[id]
	if !ok {
		return fmt.Errorf("transaction %s not found", id)
	}
	t.Status = status
	if processedAt != nil {
		at := *processedAt
		t.ProcessedAt = &at
	}
	return nil
}

func (s *TransactionStore) ListByWallet(_ context.Context, walletID string) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Transaction
	for _, t := range s.transactions {
		if t.FromWalletID == walletID || t.ToWalletID == walletID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// MarkEffect records the effect for (id, status) and reports whether this
// call was the first.
func (s *TransactionStore) MarkEffect(_ context.Context, id uuid.UUID, status domain.TransactionStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := effectKey{txID: id, status: status}
	if _, ok := s.effects[k]; ok {
		return false, nil
	}
	s.effects[k] = struct{}{}
	return true, nil
}

func (s *TransactionStore) EffectApplied(_ context.Context, id uuid.UUID, status domain.TransactionStatus) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.effects[effectKey{txID: id, status: status}]
	return ok, nil
}
