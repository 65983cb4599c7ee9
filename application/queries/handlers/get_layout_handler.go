package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dkimh/Cybernetic-Design-Network/application/queries"
	"github.com/dkimh/Cybernetic-Design-Network/application/queries/bus"
	"github.com/dkimh/Cybernetic-Design-Network/application/services"
	"github.com/dkimh/Cybernetic-Design-Network/domain/core/valueobjects"
	pkgerrors "github.com/dkimh/Cybernetic-Design-Network/pkg/errors"
)

// GetLayoutHandler handles the GetLayoutQuery
type GetLayoutHandler struct {
	sessions *services.SessionManager
	logger   *zap.Logger
}

// NewGetLayoutHandler creates a new handler instance
func NewGetLayoutHandler(sessions *services.SessionManager, logger *zap.Logger) *GetLayoutHandler {
	return &GetLayoutHandler{sessions: sessions, logger: logger}
}

// Handle executes the get layout query. The committed layout is
// returned as-is unless the query asks for a recompute (or a randomized
// restart, which implies one).
func (h *GetLayoutHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	layoutQuery, ok := query.(queries.GetLayoutQuery)
	if !ok {
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("unexpected query type %T", query))
	}

	session, found := h.sessions.Get(layoutQuery.SessionID)
	if !found {
		return nil, pkgerrors.NewNotFoundError("session " + layoutQuery.SessionID)
	}

	var positions map[valueobjects.NodeID]valueobjects.Position
	if layoutQuery.Recompute || layoutQuery.Randomize {
		positions = session.ComputeLayout(layoutQuery.Randomize)
	} else {
		positions = session.Positions()
	}

	result := queries.GetLayoutResult{
		SessionID:  layoutQuery.SessionID,
		Randomized: layoutQuery.Randomize,
		Positions:  make(map[string]valueobjects.Position, len(positions)),
	}
	for id, position := range positions {
		result.Positions[id.String()] = position
	}
	return result, nil
}
