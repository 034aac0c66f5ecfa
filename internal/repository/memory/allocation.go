package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/relief_coordination_system/internal/models"
)

// AllocationStore keeps allocation requests in memory.
type AllocationStore struct {
	mu       sync.RWMutex
	requests map[uuid.UUID]models.AllocationRequest
}

// NewAllocationStore returns an empty allocation store.
func NewAllocationStore() *AllocationStore {
	return &AllocationStore{requests: make(map[uuid.UUID]models.AllocationRequest)}
}

func (s *AllocationStore) Create(_ context.Context, req *models.AllocationRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.requests[req.ID]; exists {
		return fmt.Errorf("allocation %s already exists: %w", req.ID, models.ErrConflict)
	}
	s.requests[req.ID] = cloneAllocation(*req)
	return nil
}

func (s *AllocationStore) GetByID(_ context.Context, id uuid.UUID) (*models.AllocationRequest, error) {
	s.mu.RLock()
	req, ok := s.requests[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("allocation %s: %w", id, models.ErrNotFound)
	}
	out := cloneAllocation(req)
	return &out, nil
}

// Update writes req only while the stored status still equals expected.
func (s *AllocationStore) Update(_ context.Context, req *models.AllocationRequest, expected models.AllocationStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.requests[req.ID]
	if !ok {
		return fmt.Errorf("allocation %s: %w", req.ID, models.ErrNotFound)
	}
	if stored.Status != expected {
		return fmt.Errorf("allocation %s is %s, expected %s: %w", req.ID, stored.Status, expected, models.ErrConflict)
	}
	s.requests[req.ID] = cloneAllocation(*req)
	return nil
}

// List returns matching requests first-come-first-served.
func (s *AllocationStore) List(_ context.Context, filter models.AllocationFilter) ([]*models.AllocationRequest, error) {
	s.mu.RLock()
	out := make([]*models.AllocationRequest, 0)
	for _, req := range s.requests {
		if !matchAllocation(req, filter) {
			continue
		}
		r := cloneAllocation(req)
		out = append(out, &r)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *AllocationStore) Count(_ context.Context, filter models.AllocationFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, req := range s.requests {
		if matchAllocation(req, filter) {
			n++
		}
	}
	return n, nil
}

func matchAllocation(req models.AllocationRequest, filter models.AllocationFilter) bool {
	if filter.TargetAuthorityID != "" && req.TargetAuthorityID != filter.TargetAuthorityID {
		return false
	}
	if filter.RequesterAuthorityID != "" && req.RequesterAuthorityID != filter.RequesterAuthorityID {
		return false
	}
	return filter.Status == "" || req.Status == filter.Status
}

func cloneAllocation(req models.AllocationRequest) models.AllocationRequest {
	if req.ReservationToken != nil {
		token := *req.ReservationToken
		req.ReservationToken = &token
	}
	req.DecidedAt = cloneTime(req.DecidedAt)
	req.FulfilledAt = cloneTime(req.FulfilledAt)
	req.CancelledAt = cloneTime(req.CancelledAt)
	return req
}
