package queries

import (
	"errors"

	"github.com/dkimh/Cybernetic-Design-Network/domain/core/valueobjects"
)

// GetLayoutQuery requests a session's node positions. Recompute forces
// a fresh simulation run; Randomize additionally starts from random
// placement (and implies Recompute).
type GetLayoutQuery struct {
	SessionID string `json:"session_id"`
	Recompute bool   `json:"recompute,omitempty"`
	Randomize bool   `json:"randomize,omitempty"`
}

// Validate validates the query
func (q GetLayoutQuery) Validate() error {
	if q.SessionID == "" {
		return errors.New("sessionID is required")
	}
	return nil
}

// GetLayoutResult is the committed layout for a session
type GetLayoutResult struct {
	SessionID  string                           `json:"session_id"`
	Randomized bool                             `json:"randomized"`
	Positions  map[string]valueobjects.Position `json:"positions"`
}
