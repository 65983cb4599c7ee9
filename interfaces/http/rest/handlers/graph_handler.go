package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/dkimh/Cybernetic-Design-Network/application/queries"
	querybus "github.com/dkimh/Cybernetic-Design-Network/application/queries/bus"
	"github.com/dkimh/Cybernetic-Design-Network/pkg/common"
	pkgerrors "github.com/dkimh/Cybernetic-Design-Network/pkg/errors"
)

// GraphHandler handles graph-related HTTP requests
type GraphHandler struct {
	queryBus *querybus.QueryBus
	logger   *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(queryBus *querybus.QueryBus, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{queryBus: queryBus, logger: logger}
}

// GetGraphData handles GET /graph
func (h *GraphHandler) GetGraphData(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetGraphDataQuery{})
	if err != nil {
		h.logger.Error("Failed to get graph data", zap.Error(err))
		if pkgerrors.IsAppError(err) {
			common.RespondAppError(w, err)
			return
		}
		common.RespondError(w, http.StatusInternalServerError, "INTERNAL", "Failed to get graph data")
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
