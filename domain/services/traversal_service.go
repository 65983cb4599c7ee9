package services

import (
	"sort"

	"github.com/dkimh/Cybernetic-Design-Network/domain/core/aggregates"
	"github.com/dkimh/Cybernetic-Design-Network/domain/core/valueobjects"
)

// ScoreFunc resolves the exploration score for a node. Nodes without
// accumulated feedback score zero.
type ScoreFunc func(valueobjects.NodeID) float64

// DefaultChunkSize is how many nodes share a level in adaptive mode
const DefaultChunkSize = 3

// TraversalService extracts a layered exploration path from a start
// node over directed edges. In strict mode layers follow BFS distance;
// in cybernetic (adaptive) mode the reachable set is re-ranked by
// exploration score so well-received factors surface early regardless
// of hop distance.
type TraversalService struct {
	chunkSize int
}

// NewTraversalService creates a traversal service
func NewTraversalService(chunkSize int) *TraversalService {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &TraversalService{chunkSize: chunkSize}
}

// Traverse builds a layering from startID. The edge list defines the
// successor order: for each expanded node its outgoing edges are
// followed in edge-list order, and a node joins the layer of its first
// discovery. A start node with no outgoing edges yields a single layer
// containing only itself.
func (s *TraversalService) Traverse(
	startID valueobjects.NodeID,
	edges []aggregates.Edge,
	score ScoreFunc,
	adaptive bool,
) valueobjects.Layering {
	adjacency := buildAdjacency(edges)

	if adaptive {
		return s.traverseAdaptive(startID, adjacency, score)
	}
	return s.traverseStrict(startID, adjacency)
}

// traverseStrict is visited-set BFS layering: each layer holds the
// not-yet-seen direct successors of the previous layer, first
// discovery wins.
func (s *TraversalService) traverseStrict(
	startID valueobjects.NodeID,
	adjacency map[valueobjects.NodeID][]valueobjects.NodeID,
) valueobjects.Layering {
	visited := map[valueobjects.NodeID]bool{startID: true}
	layers := []valueobjects.Layer{{Level: 0, Nodes: []valueobjects.NodeID{startID}}}
	frontier := []valueobjects.NodeID{startID}

	for len(frontier) > 0 {
		var next []valueobjects.NodeID
		for _, id := range frontier {
			for _, successor := range adjacency[id] {
				if !visited[successor] {
					visited[successor] = true
					next = append(next, successor)
				}
			}
		}
		if len(next) == 0 {
			break
		}
		layers = append(layers, valueobjects.Layer{Level: len(layers), Nodes: next})
		frontier = next
	}

	return valueobjects.Layering{Start: startID, Layers: layers}
}

// traverseAdaptive collects the full reachable set in BFS discovery
// order, keeps the start node alone at level 0, stable-sorts the rest
// descending by exploration score and chunks them into levels. Ties
// keep their discovery order, so unscored nodes stay put at score zero.
func (s *TraversalService) traverseAdaptive(
	startID valueobjects.NodeID,
	adjacency map[valueobjects.NodeID][]valueobjects.NodeID,
	score ScoreFunc,
) valueobjects.Layering {
	if score == nil {
		score = func(valueobjects.NodeID) float64 { return 0 }
	}

	visited := map[valueobjects.NodeID]bool{startID: true}
	order := []valueobjects.NodeID{startID}
	queue := []valueobjects.NodeID{startID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, successor := range adjacency[current] {
			if !visited[successor] {
				visited[successor] = true
				order = append(order, successor)
				queue = append(queue, successor)
			}
		}
	}

	rest := order[1:]
	sort.SliceStable(rest, func(i, j int) bool {
		return score(rest[i]) > score(rest[j])
	})

	layers := []valueobjects.Layer{{Level: 0, Nodes: []valueobjects.NodeID{startID}}}
	for offset := 0; offset < len(rest); offset += s.chunkSize {
		end := offset + s.chunkSize
		if end > len(rest) {
			end = len(rest)
		}
		layers = append(layers, valueobjects.Layer{
			Level: len(layers),
			Nodes: rest[offset:end],
		})
	}

	return valueobjects.Layering{Start: startID, Layers: layers}
}

// buildAdjacency groups outgoing edges by source, preserving edge-list
// order within each source
func buildAdjacency(edges []aggregates.Edge) map[valueobjects.NodeID][]valueobjects.NodeID {
	adjacency := make(map[valueobjects.NodeID][]valueobjects.NodeID)
	for _, edge := range edges {
		adjacency[edge.SourceID] = append(adjacency[edge.SourceID], edge.TargetID)
	}
	return adjacency
}
