package ports

import (
	"context"

	"github.com/dkimh/Cybernetic-Design-Network/domain/core/aggregates"
	"github.com/dkimh/Cybernetic-Design-Network/domain/core/valueobjects"
)

// GraphRepository provides the fixed design-factor graph for the
// process. Implementations load it once at startup.
type GraphRepository interface {
	// Graph returns the shared read-only graph aggregate
	Graph(ctx context.Context) (*aggregates.Graph, error)
}

// FeedbackStore accumulates per-node exploration feedback for the
// process lifetime. All operations are total: an unknown node behaves
// as a node with all-zero counters, never an error.
type FeedbackStore interface {
	// RecordVisit increments the visit counter; visits do not affect score
	RecordVisit(id valueobjects.NodeID)

	// RecordFeedback increments the counter for one feedback kind
	RecordFeedback(id valueobjects.NodeID, kind valueobjects.FeedbackKind)

	// Record returns a snapshot of one node's counters
	Record(id valueobjects.NodeID) valueobjects.FeedbackRecord

	// Score derives the exploration score for one node
	Score(id valueobjects.NodeID) float64

	// Snapshot returns a copy of every node's counters
	Snapshot() map[valueobjects.NodeID]valueobjects.FeedbackRecord
}
