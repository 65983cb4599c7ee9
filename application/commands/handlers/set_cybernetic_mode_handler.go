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

// SetCyberneticModeHandler handles the SetCyberneticModeCommand
type SetCyberneticModeHandler struct {
	sessions *services.SessionManager
	logger   *zap.Logger
}

// NewSetCyberneticModeHandler creates a new handler instance
func NewSetCyberneticModeHandler(sessions *services.SessionManager, logger *zap.Logger) *SetCyberneticModeHandler {
	return &SetCyberneticModeHandler{sessions: sessions, logger: logger}
}

// Handle executes the set cybernetic mode command
func (h *SetCyberneticModeHandler) Handle(ctx context.Context, cmd bus.Command) error {
	command, ok := cmd.(commands.SetCyberneticModeCommand)
	if !ok {
		return pkgerrors.NewInternalError(fmt.Sprintf("unexpected command type %T", cmd))
	}

	session, found := h.sessions.Get(command.SessionID)
	if !found {
		return pkgerrors.NewNotFoundError("session " + command.SessionID)
	}

	session.SetCyberneticMode(command.Enabled)

	h.logger.Info("cybernetic mode set",
		zap.String("sessionID", command.SessionID),
		zap.Bool("enabled", command.Enabled),
	)
	return nil
}
