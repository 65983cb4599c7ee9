package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EmbeddedDataset(t *testing.T) {
	// The embedded dataset is the product; it must always load clean
	graph, err := Parse(embeddedDataset)
	require.NoError(t, err)

	assert.Greater(t, graph.NodeCount(), 20)
	assert.Greater(t, graph.EdgeCount(), graph.NodeCount())

	// Every node participates in at least one edge
	connected := make(map[string]bool)
	for _, edge := range graph.Edges() {
		connected[edge.SourceID.String()] = true
		connected[edge.TargetID.String()] = true
	}
	for _, id := range graph.NodeIDs() {
		assert.True(t, connected[id.String()], "node %s is isolated", id)
	}
}

func TestParse_RejectsInvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{nodes: [}`))
	assert.Error(t, err)
}

func TestParse_RejectsMissingFields(t *testing.T) {
	_, err := Parse([]byte(`{"nodes":[{"id":"a"}],"links":[]}`))
	assert.Error(t, err, "node without label must be rejected")

	_, err = Parse([]byte(`{"nodes":[],"links":[]}`))
	assert.Error(t, err, "empty node set must be rejected")
}

func TestParse_RejectsDuplicateNodeIDs(t *testing.T) {
	data := []byte(`{
		"nodes": [
			{"id": "a", "label": "A"},
			{"id": "a", "label": "A again"}
		],
		"links": []
	}`)
	_, err := Parse(data)
	assert.Error(t, err)
}

func TestParse_RejectsDanglingLinks(t *testing.T) {
	data := []byte(`{
		"nodes": [{"id": "a", "label": "A"}, {"id": "b", "label": "B"}],
		"links": [{"source": "a", "target": "ghost"}]
	}`)
	_, err := Parse(data)
	assert.Error(t, err)
}

func TestParse_RejectsSelfLoops(t *testing.T) {
	data := []byte(`{
		"nodes": [{"id": "a", "label": "A"}],
		"links": [{"source": "a", "target": "a"}]
	}`)
	_, err := Parse(data)
	assert.Error(t, err)
}

func TestLoad_EmptyPathUsesEmbedded(t *testing.T) {
	graph, err := Load("")
	require.NoError(t, err)
	assert.Greater(t, graph.NodeCount(), 0)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/dataset.json")
	assert.Error(t, err)
}
