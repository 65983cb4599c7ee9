package aggregates

import (
	"fmt"
	"math/rand"

	"github.com/dkimh/Cybernetic-Design-Network/domain/core/entities"
	"github.com/dkimh/Cybernetic-Design-Network/domain/core/valueobjects"
	pkgerrors "github.com/dkimh/Cybernetic-Design-Network/pkg/errors"
)

// Edge is a directed relationship between two design factors
type Edge struct {
	SourceID valueobjects.NodeID `json:"source"`
	TargetID valueobjects.NodeID `json:"target"`
}

// edgeKey identifies a (source, target) pair for duplicate detection
type edgeKey struct {
	source valueobjects.NodeID
	target valueobjects.NodeID
}

// Graph is the aggregate root for the design-factor network. The node
// set is fixed for the life of the aggregate; edge sets can be
// regenerated but individual nodes and edges are never edited in place.
// Self-loops and duplicate (source, target) pairs are rejected.
type Graph struct {
	nodes   map[valueobjects.NodeID]*entities.Node
	order   []valueobjects.NodeID // dataset order, kept for stable iteration
	edges   []Edge
	edgeSet map[edgeKey]struct{}
}

// NewGraph creates a graph aggregate from a fixed node set
func NewGraph(nodes []*entities.Node) (*Graph, error) {
	if len(nodes) == 0 {
		return nil, pkgerrors.NewValidationError("graph requires at least one node")
	}

	g := &Graph{
		nodes:   make(map[valueobjects.NodeID]*entities.Node, len(nodes)),
		order:   make([]valueobjects.NodeID, 0, len(nodes)),
		edgeSet: make(map[edgeKey]struct{}),
	}
	for _, node := range nodes {
		if _, exists := g.nodes[node.ID()]; exists {
			return nil, pkgerrors.NewConflictError(
				fmt.Sprintf("duplicate node ID %q", node.ID()))
		}
		g.nodes[node.ID()] = node
		g.order = append(g.order, node.ID())
	}
	return g, nil
}

// AddEdge adds a directed edge between two existing nodes
func (g *Graph) AddEdge(sourceID, targetID valueobjects.NodeID) error {
	if _, exists := g.nodes[sourceID]; !exists {
		return pkgerrors.NewNotFoundError(fmt.Sprintf("source node %q", sourceID))
	}
	if _, exists := g.nodes[targetID]; !exists {
		return pkgerrors.NewNotFoundError(fmt.Sprintf("target node %q", targetID))
	}
	if sourceID.Equals(targetID) {
		return pkgerrors.NewValidationError("self-loops are not allowed")
	}
	key := edgeKey{source: sourceID, target: targetID}
	if _, exists := g.edgeSet[key]; exists {
		return pkgerrors.NewConflictError(
			fmt.Sprintf("edge %q -> %q already exists", sourceID, targetID))
	}

	g.edgeSet[key] = struct{}{}
	g.edges = append(g.edges, Edge{SourceID: sourceID, TargetID: targetID})
	return nil
}

// Node looks up a node by ID
func (g *Graph) Node(id valueobjects.NodeID) (*entities.Node, bool) {
	node, ok := g.nodes[id]
	return node, ok
}

// HasNode reports whether a node exists in the graph
func (g *Graph) HasNode(id valueobjects.NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns all nodes in dataset order
func (g *Graph) Nodes() []*entities.Node {
	nodes := make([]*entities.Node, 0, len(g.order))
	for _, id := range g.order {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

// NodeIDs returns all node IDs in dataset order
func (g *Graph) NodeIDs() []valueobjects.NodeID {
	ids := make([]valueobjects.NodeID, len(g.order))
	copy(ids, g.order)
	return ids
}

// Edges returns a copy of the current edge set
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

// HasEdge reports whether a directed edge exists
func (g *Graph) HasEdge(sourceID, targetID valueobjects.NodeID) bool {
	_, ok := g.edgeSet[edgeKey{source: sourceID, target: targetID}]
	return ok
}

// NodeCount returns the number of nodes
func (g *Graph) NodeCount() int {
	return len(g.order)
}

// EdgeCount returns the number of edges
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Density returns edge count over the maximum possible directed edges
func (g *Graph) Density() float64 {
	n := len(g.order)
	if n < 2 {
		return 0
	}
	return float64(len(g.edges)) / float64(n*(n-1))
}

// RandomizeEdges generates a fresh randomized edge set over this graph's
// nodes without mutating the aggregate. Every node is first guaranteed
// minDegree outgoing and minDegree incoming edges by rejection sampling;
// the set is then filled with random distinct pairs until it reaches
// targetCount or the attempt budget (targetCount x 10) runs out. Under
// saturation the result may fall short of targetCount; that is a
// best-effort outcome, not an error. No self-loops, no duplicates.
func (g *Graph) RandomizeEdges(targetCount, minDegree int, rng *rand.Rand) []Edge {
	n := len(g.order)
	edges := make([]Edge, 0, targetCount)
	seen := make(map[edgeKey]struct{}, targetCount)
	outDegree := make(map[valueobjects.NodeID]int, n)
	inDegree := make(map[valueobjects.NodeID]int, n)

	tryAdd := func(sourceID, targetID valueobjects.NodeID) bool {
		if sourceID.Equals(targetID) {
			return false
		}
		key := edgeKey{source: sourceID, target: targetID}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
		edges = append(edges, Edge{SourceID: sourceID, TargetID: targetID})
		outDegree[sourceID]++
		inDegree[targetID]++
		return true
	}

	// The degree guarantee needs minDegree distinct non-self targets per
	// node, so it is only satisfiable when n > minDegree. Each rejected
	// draw leaves at least one valid candidate, so these loops terminate.
	if n > minDegree {
		for _, sourceID := range g.order {
			for outDegree[sourceID] < minDegree {
				tryAdd(sourceID, g.order[rng.Intn(n)])
			}
		}
		for _, targetID := range g.order {
			for inDegree[targetID] < minDegree {
				tryAdd(g.order[rng.Intn(n)], targetID)
			}
		}
	}

	// Fill to the target size under a fixed attempt budget so saturation
	// cannot turn this into an infinite loop.
	for attempts := 0; len(edges) < targetCount && attempts < targetCount*10; attempts++ {
		tryAdd(g.order[rng.Intn(n)], g.order[rng.Intn(n)])
	}

	return edges
}
