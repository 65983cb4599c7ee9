package valueobjects

// Layer is one level of a traversal: an ordered group of nodes at the
// same distance (or feedback rank) from the start node.
type Layer struct {
	Level int      `json:"level"`
	Nodes []NodeID `json:"nodes"`
}

// Layering is the ordered sequence of layers produced by one traversal.
// Level 0 always contains exactly the start node, and a node appears in
// at most one layer.
type Layering struct {
	Start  NodeID  `json:"start"`
	Layers []Layer `json:"layers"`
}

// NodeCount returns the total number of nodes across all layers
func (l Layering) NodeCount() int {
	count := 0
	for _, layer := range l.Layers {
		count += len(layer.Nodes)
	}
	return count
}

// Contains reports whether a node appears anywhere in the layering
func (l Layering) Contains(id NodeID) bool {
	_, ok := l.LevelOf(id)
	return ok
}

// LevelOf returns the level a node was placed at
func (l Layering) LevelOf(id NodeID) (int, bool) {
	for _, layer := range l.Layers {
		for _, nodeID := range layer.Nodes {
			if nodeID.Equals(id) {
				return layer.Level, true
			}
		}
	}
	return 0, false
}

// IsEmpty reports whether the layering has no layers
func (l Layering) IsEmpty() bool {
	return len(l.Layers) == 0
}
