package queries

import "errors"

// GetSessionQuery requests a session's state snapshot
type GetSessionQuery struct {
	SessionID string `json:"session_id"`
}

// Validate validates the query
func (q GetSessionQuery) Validate() error {
	if q.SessionID == "" {
		return errors.New("sessionID is required")
	}
	return nil
}
