package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"cerebro-wallet/internal/core/domain"

	"github.com/google/uuid"
)

// SubsidyStore is the reference in-memory subsidy store. Acceptances are
// append-only.
type SubsidyStore struct {
	mu          sync.RWMutex
	subsidies   map[uuid.UUID]*domain.Subsidy
	acceptances []domain.SubsidyAcceptance
}

// NewSubsidyStore creates an empty in-memory subsidy store.
func NewSubsidyStore() *SubsidyStore {
	return &SubsidyStore{subsidies: make(map[uuid.UUID]*domain.Subsidy)}
}

func (s *SubsidyStore) Create(_ context.Context, sub *domain.Subsidy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subsidies[sub.ID]; ok {
		return fmt.Errorf("subsidy %s already exists", sub.ID)
	}
	cp := *sub
	s.subsidies[sub.ID] = &cp
	return nil
}

func (s *SubsidyStore) Get(_ context.Context, id uuid.UUID) (*domain.Subsidy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.subsidies[id]
	if !ok {
		return nil, nil
	}
	cp := *sub
	return &cp, nil
}

func (s *SubsidyStore) List(_ context.Context) ([]domain.Subsidy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Subsidy, 0, len(s.subsidies))
	for _, sub := range s.subsidies {
		out = append(out, *sub)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *SubsidyStore) CreateAcceptance(_ context.Context, acc *domain.SubsidyAcceptance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.acceptances = append(s.acceptances, *acc)
	return nil
}

func (s *SubsidyStore) ListAcceptances(_ context.Context, subsidyID uuid.UUID) ([]domain.SubsidyAcceptance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.SubsidyAcceptance
	for _, acc := range s.acceptances {
		if acc.SubsidyID == subsidyID {
			out = append(out, acc)
		}
	}
	return out, nil
}
