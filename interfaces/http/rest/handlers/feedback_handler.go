package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/dkimh/Cybernetic-Design-Network/application/queries"
	querybus "github.com/dkimh/Cybernetic-Design-Network/application/queries/bus"
	"github.com/dkimh/Cybernetic-Design-Network/pkg/common"
	pkgerrors "github.com/dkimh/Cybernetic-Design-Network/pkg/errors"
)

// FeedbackHandler handles feedback statistics requests
type FeedbackHandler struct {
	queryBus *querybus.QueryBus
	logger   *zap.Logger
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(queryBus *querybus.QueryBus, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{queryBus: queryBus, logger: logger}
}

// GetStats handles GET /feedback/stats
func (h *FeedbackHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetFeedbackStatsQuery{})
	if err != nil {
		h.logger.Error("Failed to get feedback stats", zap.Error(err))
		if pkgerrors.IsAppError(err) {
			common.RespondAppError(w, err)
			return
		}
		common.RespondError(w, http.StatusInternalServerError, "INTERNAL", "Failed to get feedback stats")
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
