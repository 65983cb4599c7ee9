package memory

import (
	"context"

	"github.com/dkimh/Cybernetic-Design-Network/domain/core/aggregates"
	pkgerrors "github.com/dkimh/Cybernetic-Design-Network/pkg/errors"
)

// GraphRepository serves the fixed design-factor graph loaded at
// startup. The aggregate is shared read-only data; sessions that
// randomize links hold their own edge sets and never mutate it.
type GraphRepository struct {
	graph *aggregates.Graph
}

// NewGraphRepository creates a repository around a loaded graph
func NewGraphRepository(graph *aggregates.Graph) *GraphRepository {
	return &GraphRepository{graph: graph}
}

// Graph returns the shared graph aggregate
func (r *GraphRepository) Graph(ctx context.Context) (*aggregates.Graph, error) {
	if r.graph == nil {
		return nil, pkgerrors.NewInternalError("graph dataset was not loaded")
	}
	return r.graph, nil
}
