// Package store keeps the canonical collections in memory. Each sync
// replaces its collection wholesale; there is no incremental merge and
// no persistence (the presentation layer owns that).
package store

import (
	"sync"

	"github.com/admferramentastudo-hash/cobradash-app/internal/models"
)

type MemoryStore struct {
	mu      sync.RWMutex
	sales   []models.Sale
	leads   []models.Lead
	traffic []models.TrafficInvestment
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) ReplaceSales(sales []models.Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = sales
}

func (s *MemoryStore) ReplaceLeads(leads []models.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = leads
}

func (s *MemoryStore) ReplaceTraffic(traffic []models.TrafficInvestment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.traffic = traffic
}

// Sales returns a copy; callers may sort and slice freely.
func (s *MemoryStore) Sales() []models.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Sale, len(s.sales))
	copy(out, s.sales)
	return out
}

func (s *MemoryStore) Leads() []models.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Lead, len(s.leads))
	copy(out, s.leads)
	return out
}

func (s *MemoryStore) Traffic() []models.TrafficInvestment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TrafficInvestment, len(s.traffic))
	copy(out, s.traffic)
	return out
}
