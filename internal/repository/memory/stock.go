// Package memory implements the repositories in process memory with the same
// conditional-write semantics as the PostgreSQL ones. Used by tests and STORAGE_DRIVER=memory.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/relief_coordination_system/internal/models"
)

type stockKey struct {
	authorityID  models.AuthorityID
	resourceType models.ResourceType
}

// StockStore keeps ledger entries and reservations behind one mutex so Apply is atomic.
type StockStore struct {
	mu           sync.RWMutex
	entries      map[stockKey]models.StockEntry
	reservations map[uuid.UUID]models.Reservation
}

// NewStockStore returns an empty ledger store.
func NewStockStore() *StockStore {
	return &StockStore{
		entries:      make(map[stockKey]models.StockEntry),
		reservations: make(map[uuid.UUID]models.Reservation),
	}
}

// GetEntry returns a copy of the entry or models.ErrNotFound.
func (s *StockStore) GetEntry(_ context.Context, authorityID models.AuthorityID, resourceType models.ResourceType) (*models.StockEntry, error) {
	s.mu.RLock()
	entry, ok := s.entries[stockKey{authorityID, resourceType}]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("stock %s/%s: %w", authorityID, resourceType, models.ErrNotFound)
	}
	return &entry, nil
}

// ListEntries returns the stored entries of one authority ordered by resource type.
func (s *StockStore) ListEntries(_ context.Context, authorityID models.AuthorityID) ([]*models.StockEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.StockEntry, 0, len(models.AllResourceTypes()))
	for key, entry := range s.entries {
		if key.authorityID != authorityID {
			continue
		}
		e := entry
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ResourceType < out[j].ResourceType })
	return out, nil
}

// GetReservation returns a copy of the reservation or models.ErrNotFound.
func (s *StockStore) GetReservation(_ context.Context, token uuid.UUID) (*models.Reservation, error) {
	s.mu.RLock()
	res, ok := s.reservations[token]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("reservation %s: %w", token, models.ErrNotFound)
	}
	return &res, nil
}

// Apply checks every precondition first and writes only if all of them hold.
func (s *StockStore) Apply(_ context.Context, change models.LedgerChange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range change.Entries {
		stored, ok := s.entries[stockKey{entry.AuthorityID, entry.ResourceType}]
		if !ok && entry.Version != 0 {
			return models.ErrVersionConflict
		}
		if ok && stored.Version != entry.Version {
			return models.ErrVersionConflict
		}
		if entry.Available < 0 || entry.AllocatedOut < 0 {
			return fmt.Errorf("stock %s/%s would go negative", entry.AuthorityID, entry.ResourceType)
		}
	}
	if res := change.Reservation; res != nil {
		stored, ok := s.reservations[res.Token]
		switch {
		case change.ReservationFrom == "" && ok:
			return models.ErrVersionConflict
		case change.ReservationFrom != "" && (!ok || stored.State != change.ReservationFrom):
			return models.ErrVersionConflict
		}
	}

	now := time.Now().UTC()
	for _, entry := range change.Entries {
		entry.Version++
		entry.UpdatedAt = now
		s.entries[stockKey{entry.AuthorityID, entry.ResourceType}] = entry
	}
	if res := change.Reservation; res != nil {
		s.reservations[res.Token] = *res
	}
	return nil
}
