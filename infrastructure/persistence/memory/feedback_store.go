package memory

import (
	"sync"

	"github.com/dkimh/Cybernetic-Design-Network/domain/core/valueobjects"
)

// FeedbackStore is the in-process feedback accumulator. Counters only
// grow and reset at process restart; there is no persistence by design.
// A mutex guards the map because feedback arrives on HTTP handler
// goroutines.
type FeedbackStore struct {
	mu      sync.RWMutex
	records map[valueobjects.NodeID]*valueobjects.FeedbackRecord
}

// NewFeedbackStore creates an empty feedback store
func NewFeedbackStore() *FeedbackStore {
	return &FeedbackStore{
		records: make(map[valueobjects.NodeID]*valueobjects.FeedbackRecord),
	}
}

// RecordVisit increments the visit counter for a node
func (s *FeedbackStore) RecordVisit(id valueobjects.NodeID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(id).Visits++
}

// RecordFeedback increments the counter for one feedback kind
func (s *FeedbackStore) RecordFeedback(id valueobjects.NodeID, kind valueobjects.FeedbackKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.record(id)
	switch kind {
	case valueobjects.FeedbackInsightful:
		record.Insightful++
	case valueobjects.FeedbackNeutral:
		record.Neutral++
	case valueobjects.FeedbackFamiliar:
		record.Familiar++
	}
}

// Record returns a snapshot of one node's counters. Unknown nodes
// report all-zero counters.
func (s *FeedbackStore) Record(id valueobjects.NodeID) valueobjects.FeedbackRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if record, ok := s.records[id]; ok {
		return *record
	}
	return valueobjects.FeedbackRecord{}
}

// Score derives the exploration score for one node
func (s *FeedbackStore) Score(id valueobjects.NodeID) float64 {
	return s.Record(id).Score()
}

// Snapshot returns a copy of every node's counters
func (s *FeedbackStore) Snapshot() map[valueobjects.NodeID]valueobjects.FeedbackRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[valueobjects.NodeID]valueobjects.FeedbackRecord, len(s.records))
	for id, record := range s.records {
		snapshot[id] = *record
	}
	return snapshot
}

// record returns the mutable record for a node, creating it on first
// use. Callers must hold the write lock.
func (s *FeedbackStore) record(id valueobjects.NodeID) *valueobjects.FeedbackRecord {
	if record, ok := s.records[id]; ok {
		return record
	}
	record := &valueobjects.FeedbackRecord{}
	s.records[id] = record
	return record
}
