package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shenikar/relief_coordination_system/internal/models"
)

// SOSStore keeps SOS requests in memory.
type SOSStore struct {
	mu       sync.RWMutex
	lastID   int64
	requests map[int64]models.SOSRequest
}

// NewSOSStore returns an empty SOS store.
func NewSOSStore() *SOSStore {
	return &SOSStore{requests: make(map[int64]models.SOSRequest)}
}

func (s *SOSStore) NextID(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	return s.lastID, nil
}

func (s *SOSStore) Create(_ context.Context, req *models.SOSRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.requests[req.ID]; exists {
		return fmt.Errorf("sos %d already exists: %w", req.ID, models.ErrConflict)
	}
	s.requests[req.ID] = cloneSOS(*req)
	return nil
}

func (s *SOSStore) GetByID(_ context.Context, id int64) (*models.SOSRequest, error) {
	s.mu.RLock()
	req, ok := s.requests[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("sos %d: %w", id, models.ErrNotFound)
	}
	out := cloneSOS(req)
	return &out, nil
}

// Update writes req only while the stored status still equals expected.
func (s *SOSStore) Update(_ context.Context, req *models.SOSRequest, expected models.SOSStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.requests[req.ID]
	if !ok {
		return fmt.Errorf("sos %d: %w", req.ID, models.ErrNotFound)
	}
	if stored.Status != expected {
		return fmt.Errorf("sos %d is %s, expected %s: %w", req.ID, stored.Status, expected, models.ErrConflict)
	}
	s.requests[req.ID] = cloneSOS(*req)
	return nil
}

// List orders by priority score, then by arrival.
func (s *SOSStore) List(_ context.Context, filter models.SOSFilter, page, pageSize int) ([]*models.SOSRequest, error) {
	s.mu.RLock()
	all := make([]*models.SOSRequest, 0)
	for _, req := range s.requests {
		if !matchSOS(req, filter) {
			continue
		}
		r := cloneSOS(req)
		all = append(all, &r)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].PriorityScore != all[j].PriorityScore {
			return all[i].PriorityScore > all[j].PriorityScore
		}
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})

	offset := (page - 1) * pageSize
	if offset >= len(all) {
		return []*models.SOSRequest{}, nil
	}
	end := offset + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (s *SOSStore) Count(_ context.Context, filter models.SOSFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, req := range s.requests {
		if matchSOS(req, filter) {
			n++
		}
	}
	return n, nil
}

func matchSOS(req models.SOSRequest, filter models.SOSFilter) bool {
	if filter.ProvinceID != 0 && req.ProvinceID != filter.ProvinceID {
		return false
	}
	if filter.DistrictID != 0 && req.DistrictID != filter.DistrictID {
		return false
	}
	if filter.Status != "" && req.Status != filter.Status {
		return false
	}
	return !filter.ActiveOnly || !req.Status.IsTerminal()
}

func cloneSOS(req models.SOSRequest) models.SOSRequest {
	req.TriagedAt = cloneTime(req.TriagedAt)
	req.AssignedAt = cloneTime(req.AssignedAt)
	req.ResolvedAt = cloneTime(req.ResolvedAt)
	req.CancelledAt = cloneTime(req.CancelledAt)
	return req
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
