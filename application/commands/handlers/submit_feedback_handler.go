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

// SubmitFeedbackHandler handles the SubmitFeedbackCommand
type SubmitFeedbackHandler struct {
	sessions *services.SessionManager
	logger   *zap.Logger
}

// NewSubmitFeedbackHandler creates a new handler instance
func NewSubmitFeedbackHandler(sessions *services.SessionManager, logger *zap.Logger) *SubmitFeedbackHandler {
	return &SubmitFeedbackHandler{sessions: sessions, logger: logger}
}

// Handle executes the submit feedback command
func (h *SubmitFeedbackHandler) Handle(ctx context.Context, cmd bus.Command) error {
	command, ok := cmd.(commands.SubmitFeedbackCommand)
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
	kind, err := valueobjects.ParseFeedbackKind(command.Kind)
	if err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}

	if err := session.SubmitFeedback(nodeID, kind); err != nil {
		return err
	}

	h.logger.Info("feedback recorded",
		zap.String("sessionID", command.SessionID),
		zap.String("nodeID", command.NodeID),
		zap.String("kind", command.Kind),
	)
	return nil
}
