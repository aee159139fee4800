package service

import (
	"context"
	"sync"

	"cerebro-wallet/internal/core/domain"
	"cerebro-wallet/internal/core/ports"
)

// TerritoryZone is one monitored area with its current traffic-light state.
type TerritoryZone struct {
	ID      string
	Center  domain.GeoPoint
	RadiusM float64
	State   domain.TerritoryState
	Reason  string
}

// StaticTerritorySemaphore implements ports.TerritorySemaphore over a
// configured zone table. Locations outside every zone report green.
type StaticTerritorySemaphore struct {
	mu    sync.RWMutex
	zones []TerritoryZone
}

// NewStaticTerritorySemaphore creates a semaphore over the given zones.
func NewStaticTerritorySemaphore(zones []TerritoryZone) *StaticTerritorySemaphore {
	return &StaticTerritorySemaphore{zones: zones}
}

// SetZoneState updates a zone's state at runtime. Reports whether the zone
// exists.
func (s *StaticTerritorySemaphore) SetZoneState(id string, state domain.TerritoryState, reason string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.zones {
		if s.zones[i].ID == id {
			s.zones[i].State = state
			s.zones[i].Reason = reason
			return true
		}
	}
	return false
}

func (s *StaticTerritorySemaphore) GetState(_ context.Context, loc domain.GeoPoint) (ports.SemaphoreState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, z := range s.zones {
		zone := domain.RedZone{ID: z.ID, Center: z.Center, RadiusM: z.RadiusM}
		if zone.Contains(loc) {
			return ports.SemaphoreState{State: z.State, Reason: z.Reason}, nil
		}
	}
	return ports.SemaphoreState{State: domain.TerritoryStateGreen}, nil
}
