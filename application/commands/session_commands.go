package commands

import (
	"errors"

	"github.com/dkimh/Cybernetic-Design-Network/domain/core/valueobjects"
)

// ActivateNodeCommand makes a node the exploration focus of a session
type ActivateNodeCommand struct {
	SessionID string `json:"session_id"`
	NodeID    string `json:"node_id"`
}

// Validate validates the command
func (c ActivateNodeCommand) Validate() error {
	if c.SessionID == "" {
		return errors.New("sessionID is required")
	}
	if c.NodeID == "" {
		return errors.New("nodeID is required")
	}
	return nil
}

// SubmitFeedbackCommand records one piece of feedback for a node
type SubmitFeedbackCommand struct {
	SessionID string `json:"session_id"`
	NodeID    string `json:"node_id"`
	Kind      string `json:"kind"`
}

// Validate validates the command
func (c SubmitFeedbackCommand) Validate() error {
	if c.SessionID == "" {
		return errors.New("sessionID is required")
	}
	if c.NodeID == "" {
		return errors.New("nodeID is required")
	}
	if _, err := valueobjects.ParseFeedbackKind(c.Kind); err != nil {
		return err
	}
	return nil
}

// RandomizeLinksCommand regenerates a session's edge set and layout
type RandomizeLinksCommand struct {
	SessionID string `json:"session_id"`
}

// Validate validates the command
func (c RandomizeLinksCommand) Validate() error {
	if c.SessionID == "" {
		return errors.New("sessionID is required")
	}
	return nil
}

// SetCyberneticModeCommand toggles adaptive traversal for a session
type SetCyberneticModeCommand struct {
	SessionID string `json:"session_id"`
	Enabled   bool   `json:"enabled"`
}

// Validate validates the command
func (c SetCyberneticModeCommand) Validate() error {
	if c.SessionID == "" {
		return errors.New("sessionID is required")
	}
	return nil
}

// DeleteSessionCommand drops a session
type DeleteSessionCommand struct {
	SessionID string `json:"session_id"`
}

// Validate validates the command
func (c DeleteSessionCommand) Validate() error {
	if c.SessionID == "" {
		return errors.New("sessionID is required")
	}
	return nil
}
