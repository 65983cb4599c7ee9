package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dkimh/Cybernetic-Design-Network/application/commands"
	"github.com/dkimh/Cybernetic-Design-Network/application/commands/bus"
	"github.com/dkimh/Cybernetic-Design-Network/application/services"
	"github.com/dkimh/Cybernetic-Design-Network/domain/core/valueobjects"
	pkgerrors "github.com/dkimh/Cybernetic-Design-Network/pkg/errors"
)

// ActivateNodeHandler handles the ActivateNodeCommand
type ActivateNodeHandler struct {
	sessions *services.SessionManager
	logger   *zap.Logger
}

// NewActivateNodeHandler creates a new handler instance
func NewActivateNodeHandler(sessions *services.SessionManager, logger *zap.Logger) *ActivateNodeHandler {
	return &ActivateNodeHandler{sessions: sessions, logger: logger}
}

// Handle executes the activate node command
func (h *ActivateNodeHandler) Handle(ctx context.Context, cmd bus.Command) error {
	command, ok := cmd.(commands.ActivateNodeCommand)
	if !ok {
		return pkgerrors.NewInternalError(fmt.Sprintf("unexpected command type %T", cmd))
	}

	session, found := h.sessions.Get(command.SessionID)
	if !found {
		return pkgerrors.NewNotFoundError("session " + command.SessionID)
	}

	nodeID, err := valueobjects.NewNodeID(command.NodeID)
	if err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}

	layering, err := session.ActivateNode(nodeID)
	if err != nil {
		return err
	}

	h.logger.Info("node activated",
		zap.String("sessionID", command.SessionID),
		zap.String("nodeID", command.NodeID),
		zap.Int("layers", len(layering.Layers)),
		zap.Bool("cybernetic", session.CyberneticMode()),
	)
	return nil
}
