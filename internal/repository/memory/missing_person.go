package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/shenikar/relief_coordination_system/internal/models"
)

// MissingPersonStore keeps missing-person cases in memory.
type MissingPersonStore struct {
	mu     sync.RWMutex
	lastID int64
	cases  map[int64]models.MissingPersonCase
}

// NewMissingPersonStore returns an empty case store.
func NewMissingPersonStore() *MissingPersonStore {
	return &MissingPersonStore{cases: make(map[int64]models.MissingPersonCase)}
}

func (s *MissingPersonStore) NextID(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	return s.lastID, nil
}

func (s *MissingPersonStore) Create(_ context.Context, c *models.MissingPersonCase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.cases[c.ID]; exists {
		return fmt.Errorf("missing person case %d already exists: %w", c.ID, models.ErrConflict)
	}
	s.cases[c.ID] = cloneCase(*c)
	return nil
}

func (s *MissingPersonStore) GetByID(_ context.Context, id int64) (*models.MissingPersonCase, error) {
	s.mu.RLock()
	c, ok := s.cases[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("missing person case %d: %w", id, models.ErrNotFound)
	}
	out := cloneCase(c)
	return &out, nil
}

func (s *MissingPersonStore) Update(_ context.Context, c *models.MissingPersonCase, expected models.MissingPersonStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.cases[c.ID]
	if !ok {
		return fmt.Errorf("missing person case %d: %w", c.ID, models.ErrNotFound)
	}
	if stored.Status != expected {
		return fmt.Errorf("missing person case %d is %s, expected %s: %w", c.ID, stored.Status, expected, models.ErrConflict)
	}
	s.cases[c.ID] = cloneCase(*c)
	return nil
}

func cloneCase(c models.MissingPersonCase) models.MissingPersonCase {
	if c.Age != nil {
		age := *c.Age
		c.Age = &age
	}
	if c.LastSeen != nil {
		loc := *c.LastSeen
		c.LastSeen = &loc
	}
	c.FoundAt = cloneTime(c.FoundAt)
	c.ClosedAt = cloneTime(c.ClosedAt)
	return c
}
