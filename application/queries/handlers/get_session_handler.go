package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dkimh/Cybernetic-Design-Network/application/queries"
	"github.com/dkimh/Cybernetic-Design-Network/application/queries/bus"
	"github.com/dkimh/Cybernetic-Design-Network/application/services"
	pkgerrors "github.com/dkimh/Cybernetic-Design-Network/pkg/errors"
)

// GetSessionHandler handles the GetSessionQuery
type GetSessionHandler struct {
	sessions *services.SessionManager
	logger   *zap.Logger
}

// NewGetSessionHandler creates a new handler instance
func NewGetSessionHandler(sessions *services.SessionManager, logger *zap.Logger) *GetSessionHandler {
	return &GetSessionHandler{sessions: sessions, logger: logger}
}

// Handle executes the get session query
func (h *GetSessionHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	sessionQuery, ok := query.(queries.GetSessionQuery)
	if !ok {
		return nil, pkgerrors.NewInternalError(fmt.Sprintf("unexpected query type %T", query))
	}

	session, found := h.sessions.Get(sessionQuery.SessionID)
	if !found {
		return nil, pkgerrors.NewNotFoundError("session " + sessionQuery.SessionID)
	}

	return session.Snapshot(), nil
}
