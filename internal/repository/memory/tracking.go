package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/shenikar/relief_coordination_system/internal/models"
)

type sequenceKey struct {
	caseType models.CaseType
	year     int
}

// TrackingStore keeps tracking records and per-(caseType, year) counters.
// Records are never removed.
type TrackingStore struct {
	mu        sync.RWMutex
	sequences map[sequenceKey]int64
	records   map[string]models.TrackingRecord
	byCNIC    map[string][]string
}

// NewTrackingStore returns an empty registry store.
func NewTrackingStore() *TrackingStore {
	return &TrackingStore{
		sequences: make(map[sequenceKey]int64),
		records:   make(map[string]models.TrackingRecord),
		byCNIC:    make(map[string][]string),
	}
}

func (s *TrackingStore) NextSequence(_ context.Context, caseType models.CaseType, year int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := sequenceKey{caseType, year}
	s.sequences[key]++
	return s.sequences[key], nil
}

func (s *TrackingStore) Create(_ context.Context, record *models.TrackingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[record.TrackingID]; exists {
		return fmt.Errorf("tracking id %s already issued: %w", record.TrackingID, models.ErrConflict)
	}
	s.records[record.TrackingID] = *record
	if record.CNIC != "" {
		s.byCNIC[record.CNIC] = append(s.byCNIC[record.CNIC], record.TrackingID)
	}
	return nil
}

func (s *TrackingStore) Get(_ context.Context, trackingID string) (*models.TrackingRecord, error) {
	s.mu.RLock()
	record, ok := s.records[trackingID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("tracking id %s: %w", trackingID, models.ErrNotFound)
	}
	return &record, nil
}

func (s *TrackingStore) ListByCNIC(_ context.Context, cnic string) ([]*models.TrackingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.byCNIC[cnic]
	out := make([]*models.TrackingRecord, 0, len(ids))
	for _, id := range ids {
		record := s.records[id]
		out = append(out, &record)
	}
	return out, nil
}
