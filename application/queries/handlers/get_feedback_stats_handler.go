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

// GetFeedbackStatsHandler handles the GetFeedbackStatsQuery
type GetFeedbackStatsHandler struct {
	graphRepo ports.GraphRepository
	feedback  ports.FeedbackStore
	logger    *zap.Logger
}

// NewGetFeedbackStatsHandler creates a new handler instance
func NewGetFeedbackStatsHandler(
	graphRepo ports.GraphRepository,
	feedback ports.FeedbackStore,
	logger *zap.Logger,
) *GetFeedbackStatsHandler {
	return &GetFeedbackStatsHandler{graphRepo: graphRepo, feedback: feedback, logger: logger}
}

// Handle executes the get feedback stats query. Nodes are reported in
// dataset order; nodes with no activity at all are omitted from the
// per-node list but counted in the totals.
func (h *GetFeedbackStatsHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	if _, ok := query.(queries.GetFeedbackStatsQuery); !ok {
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("unexpected query type %T", query))
	}

	graph, err := h.graphRepo.Graph(ctx)
	if err != nil {
		return nil, err
	}

	result := queries.GetFeedbackStatsResult{
		TotalNodes: graph.NodeCount(),
	}

	for _, id := range graph.NodeIDs() {
		record := h.feedback.Record(id)
		result.TotalVisits += record.Visits
		result.TotalInsightful += record.Insightful
		result.TotalNeutral += record.Neutral
		result.TotalFamiliar += record.Familiar

		if record.Visits > 0 {
			result.VisitedNodes++
		}
		if record.Visits == 0 && record.Total() == 0 {
			continue
		}
		result.Nodes = append(result.Nodes, queries.NodeFeedback{
			NodeID:     id.String(),
			Visits:     record.Visits,
			Insightful: record.Insightful,
			Neutral:    record.Neutral,
			Familiar:   record.Familiar,
			Score:      record.Score(),
		})
	}

	if result.TotalNodes > 0 {
		result.CoveragePercent = 100 * float64(result.VisitedNodes) / float64(result.TotalNodes)
	}
	return result, nil
}
