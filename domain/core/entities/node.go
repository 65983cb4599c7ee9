package entities

import (
	"strings"

	"github.com/dkimh/Cybernetic-Design-Network/domain/core/valueobjects"
	pkgerrors "github.com/dkimh/Cybernetic-Design-Network/pkg/errors"
)

// Node is a design factor in the cybernetic network. Nodes are immutable
// for the lifetime of a session; the only state that moves is the
// simulated position, which lives outside the entity in the layout
// result so partially-converged coordinates never leak out.
type Node struct {
	id          valueobjects.NodeID
	label       string
	description string
}

// NewNode creates a node with validation
func NewNode(id valueobjects.NodeID, label string) (*Node, error) {
	if id.IsZero() {
		return nil, pkgerrors.NewValidationError("node ID cannot be empty")
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, pkgerrors.NewValidationError("node label cannot be empty")
	}
	return &Node{id: id, label: label}, nil
}

// ID returns the node identifier
func (n *Node) ID() valueobjects.NodeID {
	return n.id
}

// Label returns the human-readable name of the design factor
func (n *Node) Label() string {
	return n.label
}

// Description returns the optional long-form description
func (n *Node) Description() string {
	return n.description
}

// SetDescription attaches a long-form description to the node
func (n *Node) SetDescription(description string) {
	n.description = strings.TrimSpace(description)
}
