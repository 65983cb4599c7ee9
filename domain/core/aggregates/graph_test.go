package aggregates

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkimh/Cybernetic-Design-Network/domain/core/entities"
	"github.com/dkimh/Cybernetic-Design-Network/domain/core/valueobjects"
)

func buildTestGraph(t *testing.T, count int) *Graph {
	t.Helper()
	nodes := make([]*entities.Node, 0, count)
	for i := 0; i < count; i++ {
		node, err := entities.NewNode(
			valueobjects.MustNodeID(fmt.Sprintf("n%d", i)),
			fmt.Sprintf("Node %d", i),
		)
		require.NoError(t, err)
		nodes = append(nodes, node)
	}
	graph, err := NewGraph(nodes)
	require.NoError(t, err)
	return graph
}

func TestNewGraph_RejectsDuplicateIDs(t *testing.T) {
	a, err := entities.NewNode(valueobjects.MustNodeID("a"), "A")
	require.NoError(t, err)
	dup, err := entities.NewNode(valueobjects.MustNodeID("a"), "A again")
	require.NoError(t, err)

	_, err = NewGraph([]*entities.Node{a, dup})
	assert.Error(t, err)
}

func TestNewGraph_RejectsEmptyNodeSet(t *testing.T) {
	_, err := NewGraph(nil)
	assert.Error(t, err)
}

func TestAddEdge_Validation(t *testing.T) {
	graph := buildTestGraph(t, 3)
	n0 := valueobjects.MustNodeID("n0")
	n1 := valueobjects.MustNodeID("n1")

	// Valid edge
	require.NoError(t, graph.AddEdge(n0, n1))
	assert.True(t, graph.HasEdge(n0, n1))
	assert.False(t, graph.HasEdge(n1, n0))

	// Duplicate pair rejected
	assert.Error(t, graph.AddEdge(n0, n1))

	// Self-loop rejected
	assert.Error(t, graph.AddEdge(n0, n0))

	// Unknown endpoints rejected
	assert.Error(t, graph.AddEdge(n0, valueobjects.MustNodeID("ghost")))
	assert.Error(t, graph.AddEdge(valueobjects.MustNodeID("ghost"), n1))

	assert.Equal(t, 1, graph.EdgeCount())
}

func TestRandomizeEdges_MinimumDegreeGuarantee(t *testing.T) {
	// Arrange
	graph := buildTestGraph(t, 12)
	rng := rand.New(rand.NewSource(7))

	// Act
	edges := graph.RandomizeEdges(60, 3, rng)

	// Assert: no self-loops, no duplicate pairs
	seen := make(map[string]bool)
	outDegree := make(map[valueobjects.NodeID]int)
	inDegree := make(map[valueobjects.NodeID]int)
	for _, edge := range edges {
		assert.False(t, edge.SourceID.Equals(edge.TargetID), "self-loop generated")
		key := edge.SourceID.String() + "->" + edge.TargetID.String()
		assert.False(t, seen[key], "duplicate edge %s", key)
		seen[key] = true
		outDegree[edge.SourceID]++
		inDegree[edge.TargetID]++
	}

	// Every node meets the degree minimum
	for _, id := range graph.NodeIDs() {
		assert.GreaterOrEqual(t, outDegree[id], 3, "out-degree of %s", id)
		assert.GreaterOrEqual(t, inDegree[id], 3, "in-degree of %s", id)
	}

	assert.Len(t, edges, 60)
}

func TestRandomizeEdges_TerminatesUnderSaturation(t *testing.T) {
	// 4 nodes allow at most 12 directed edges; asking for 100 must
	// terminate with a best-effort result
	graph := buildTestGraph(t, 4)
	rng := rand.New(rand.NewSource(1))

	edges := graph.RandomizeEdges(100, 3, rng)

	// The degree guarantee alone saturates a 4-node graph completely
	assert.Len(t, edges, 12)
}

func TestRandomizeEdges_SkipsUnsatisfiableMinimum(t *testing.T) {
	// 3 nodes cannot give every node out-degree 3 without self-loops;
	// the guarantee phase is skipped rather than spinning forever
	graph := buildTestGraph(t, 3)
	rng := rand.New(rand.NewSource(3))

	edges := graph.RandomizeEdges(6, 3, rng)

	assert.LessOrEqual(t, len(edges), 6)
	for _, edge := range edges {
		assert.False(t, edge.SourceID.Equals(edge.TargetID))
	}
}

func TestDensity(t *testing.T) {
	graph := buildTestGraph(t, 4)
	require.NoError(t, graph.AddEdge(valueobjects.MustNodeID("n0"), valueobjects.MustNodeID("n1")))
	require.NoError(t, graph.AddEdge(valueobjects.MustNodeID("n1"), valueobjects.MustNodeID("n2")))
	require.NoError(t, graph.AddEdge(valueobjects.MustNodeID("n2"), valueobjects.MustNodeID("n3")))

	// 3 of 12 possible directed edges
	assert.InDelta(t, 0.25, graph.Density(), 1e-9)
}
