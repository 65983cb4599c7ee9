package services

import (
	"math/rand"
	"sync"
	"time"

	"github.com/dkimh/Cybernetic-Design-Network/application/ports"
	"github.com/dkimh/Cybernetic-Design-Network/domain/core/aggregates"
	"github.com/dkimh/Cybernetic-Design-Network/domain/core/valueobjects"
	domainservices "github.com/dkimh/Cybernetic-Design-Network/domain/services"
	pkgerrors "github.com/dkimh/Cybernetic-Design-Network/pkg/errors"
)

// Session is one exploration of the design network: an active node, the
// current and previous layerings, the cybernetic-mode flag, a
// session-local edge set and the latest committed layout. All state
// changes happen under one mutex, and position maps and layerings are
// swapped whole so readers never see a half-updated snapshot. Feedback
// is deliberately not session state; it accumulates process-wide.
type Session struct {
	id        string
	createdAt time.Time

	mu         sync.RWMutex
	graph      *aggregates.Graph
	edges      []aggregates.Edge
	layout     *domainservices.LayoutService
	traversal  *domainservices.TraversalService
	feedback   ports.FeedbackStore
	rng        *rand.Rand
	minDegree  int
	activeNode valueobjects.NodeID
	cybernetic bool
	current    valueobjects.Layering
	previous   valueobjects.Layering
	positions  map[valueobjects.NodeID]valueobjects.Position
}

// Snapshot is the read model of a session's state
type Snapshot struct {
	ID             string                 `json:"id"`
	CreatedAt      time.Time              `json:"created_at"`
	ActiveNode     string                 `json:"active_node,omitempty"`
	CyberneticMode bool                   `json:"cybernetic_mode"`
	EdgeCount      int                    `json:"edge_count"`
	Current        *valueobjects.Layering `json:"current_layering,omitempty"`
	Previous       *valueobjects.Layering `json:"previous_layering,omitempty"`
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Snapshot returns the current session state
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := Snapshot{
		ID:             s.id,
		CreatedAt:      s.createdAt,
		CyberneticMode: s.cybernetic,
		EdgeCount:      len(s.edges),
	}
	if !s.activeNode.IsZero() {
		snapshot.ActiveNode = s.activeNode.String()
	}
	if !s.current.IsEmpty() {
		current := s.current
		snapshot.Current = &current
	}
	if !s.previous.IsEmpty() {
		previous := s.previous
		snapshot.Previous = &previous
	}
	return snapshot
}

// Positions returns the latest committed layout. Committed maps are
// never mutated after publication, so the map is safe to share.
func (s *Session) Positions() map[valueobjects.NodeID]valueobjects.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.positions
}

// Edges returns a copy of the session's current edge set
func (s *Session) Edges() []aggregates.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	edges := make([]aggregates.Edge, len(s.edges))
	copy(edges, s.edges)
	return edges
}

// ComputeLayout runs the force simulation over the session's edge set
// and atomically publishes the result as the committed layout
func (s *Session) ComputeLayout(randomize bool) map[valueobjects.NodeID]valueobjects.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.computeLayoutLocked(randomize)
}

func (s *Session) computeLayoutLocked(randomize bool) map[valueobjects.NodeID]valueobjects.Position {
	positions := s.layout.Layout(s.graph.NodeIDs(), s.edges, randomize)
	s.positions = positions
	return positions
}

// ActivateNode makes a node the exploration focus: records a visit,
// traverses from it under the current mode, and shifts the layering
// history (current becomes previous)
func (s *Session) ActivateNode(id valueobjects.NodeID) (valueobjects.Layering, error) {
	if !s.graph.HasNode(id) {
		return valueobjects.Layering{}, pkgerrors.NewNotFoundError("node " + id.String())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.feedback.RecordVisit(id)
	layering := s.traversal.Traverse(id, s.edges, s.feedback.Score, s.cybernetic)
	s.previous = s.current
	s.current = layering
	s.activeNode = id
	return layering, nil
}

// SubmitFeedback records one piece of feedback for a node
func (s *Session) SubmitFeedback(id valueobjects.NodeID, kind valueobjects.FeedbackKind) error {
	if !s.graph.HasNode(id) {
		return pkgerrors.NewNotFoundError("node " + id.String())
	}
	s.feedback.RecordFeedback(id, kind)
	return nil
}

// SetCyberneticMode toggles adaptive traversal. When a node is active
// the path is recomputed under the new mode so the UI reflects the
// toggle immediately.
func (s *Session) SetCyberneticMode(enabled bool) valueobjects.Layering {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cybernetic = enabled
	if s.activeNode.IsZero() {
		return s.current
	}
	layering := s.traversal.Traverse(s.activeNode, s.edges, s.feedback.Score, s.cybernetic)
	s.previous = s.current
	s.current = layering
	return layering
}

// CyberneticMode reports whether adaptive traversal is on
func (s *Session) CyberneticMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cybernetic
}

// RandomizeLinks replaces the session's edge set with a freshly
// generated one (targeting the original edge count under the
// minimum-degree guarantees), publishes a new randomized layout and,
// when a node is active, re-traverses from it over the new edges
func (s *Session) RandomizeLinks() map[valueobjects.NodeID]valueobjects.Position {
	s.mu.Lock()
	defer s.mu.Unlock()

	targetCount := s.graph.EdgeCount()
	s.edges = s.graph.RandomizeEdges(targetCount, s.minDegree, s.rng)

	if !s.activeNode.IsZero() {
		layering := s.traversal.Traverse(s.activeNode, s.edges, s.feedback.Score, s.cybernetic)
		s.previous = s.current
		s.current = layering
	}
	return s.computeLayoutLocked(true)
}
