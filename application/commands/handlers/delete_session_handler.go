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

// DeleteSessionHandler handles the DeleteSessionCommand
type DeleteSessionHandler struct {
	sessions *services.SessionManager
	logger   *zap.Logger
}

// NewDeleteSessionHandler creates a new handler instance
func NewDeleteSessionHandler(sessions *services.SessionManager, logger *zap.Logger) *DeleteSessionHandler {
	return &DeleteSessionHandler{sessions: sessions, logger: logger}
}

// Handle executes the delete session command
func (h *DeleteSessionHandler) Handle(ctx context.Context, cmd bus.Command) error {
	command, ok := cmd.(commands.DeleteSessionCommand)
	if !ok {
		return pkgerrors.NewInternalError(fmt.Sprintf("unexpected command type %T", cmd))
	}

	if !h.sessions.Delete(command.SessionID) {
		return pkgerrors.NewNotFoundError("session " + command.SessionID)
	}

	h.logger.Info("session deleted", zap.String("sessionID", command.SessionID))
	return nil
}
