package queries

// GetGraphDataQuery requests the full dataset graph for visualization
type GetGraphDataQuery struct{}

// Validate validates the query
func (q GetGraphDataQuery) Validate() error {
	return nil
}

// GraphNode is a node as rendered by the frontend
type GraphNode struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// GraphEdge is a directed edge as rendered by the frontend
type GraphEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// GraphStats contains graph statistics
type GraphStats struct {
	NodeCount int     `json:"node_count"`
	EdgeCount int     `json:"edge_count"`
	Density   float64 `json:"density"`
}

// GetGraphDataResult is the complete graph data for visualization
type GetGraphDataResult struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
	Stats GraphStats  `json:"stats"`
}
