package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dkimh/Cybernetic-Design-Network/application/ports"
	"github.com/dkimh/Cybernetic-Design-Network/application/queries"
	"github.com/dkimh/Cybernetic-Design-Network/application/queries/bus"
	pkgerrors "github.com/dkimh/Cybernetic-Design-Network/pkg/errors"
)

// GetGraphDataHandler handles the GetGraphDataQuery
type GetGraphDataHandler struct {
	graphRepo ports.GraphRepository
	logger    *zap.Logger
}

// NewGetGraphDataHandler creates a new handler instance
func NewGetGraphDataHandler(graphRepo ports.GraphRepository, logger *zap.Logger) *GetGraphDataHandler {
	return &GetGraphDataHandler{graphRepo: graphRepo, logger: logger}
}

// Handle executes the get graph data query
func (h *GetGraphDataHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	if _, ok := query.(queries.GetGraphDataQuery); !ok {
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("unexpected query type %T", query))
	}

	graph, err := h.graphRepo.Graph(ctx)
	if err != nil {
		return nil, err
	}

	result := queries.GetGraphDataResult{
		Nodes: make([]queries.GraphNode, 0, graph.NodeCount()),
		Edges: make([]queries.GraphEdge, 0, graph.EdgeCount()),
		Stats: queries.GraphStats{
			NodeCount: graph.NodeCount(),
			EdgeCount: graph.EdgeCount(),
			Density:   graph.Density(),
		},
	}

	for _, node := range graph.Nodes() {
		result.Nodes = append(result.Nodes, queries.GraphNode{
			ID:          node.ID().String(),
			Label:       node.Label(),
			Description: node.Description(),
		})
	}
	for _, edge := range graph.Edges() {
		result.Edges = append(result.Edges, queries.GraphEdge{
			Source: edge.SourceID.String(),
			Target: edge.TargetID.String(),
		})
	}

	return result, nil
}
