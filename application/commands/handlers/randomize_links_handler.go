package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dkimh/Cybernetic-Design-Network/application/commands"
	"github.com/dkimh/Cybernetic-Design-Network/application/commands/bus"
	"github.com/dkimh/Cybernetic-Design-Network/application/services"
	pkgerrors "github.com/dkimh/Cybernetic-Design-Network/pkg/errors"
)

// RandomizeLinksHandler handles the RandomizeLinksCommand
type RandomizeLinksHandler struct {
	sessions *services.SessionManager
	logger   *zap.Logger
}

// NewRandomizeLinksHandler creates a new handler instance
func NewRandomizeLinksHandler(sessions *services.SessionManager, logger *zap.Logger) *RandomizeLinksHandler {
	return &RandomizeLinksHandler{sessions: sessions, logger: logger}
}

// Handle executes the randomize links command
func (h *RandomizeLinksHandler) Handle(ctx context.Context, cmd bus.Command) error {
	command, ok := cmd.(commands.RandomizeLinksCommand)
	if !ok {
		return pkgerrors.NewInternalError(fmt.Sprintf("unexpected command type %T", cmd))
	}

	session, found := h.sessions.Get(command.SessionID)
	if !found {
		return pkgerrors.NewNotFoundError("session " + command.SessionID)
	}

	session.RandomizeLinks()

	h.logger.Info("links randomized",
		zap.String("sessionID", command.SessionID),
		zap.Int("edgeCount", len(session.Edges())),
	)
	return nil
}
