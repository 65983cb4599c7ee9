package queries

// GetFeedbackStatsQuery requests aggregate feedback statistics
type GetFeedbackStatsQuery struct{}

// Validate validates the query
func (q GetFeedbackStatsQuery) Validate() error {
	return nil
}

// NodeFeedback is one node's accumulated feedback with derived score
type NodeFeedback struct {
	NodeID     string  `json:"node_id"`
	Visits     int     `json:"visits"`
	Insightful int     `json:"insightful"`
	Neutral    int     `json:"neutral"`
	Familiar   int     `json:"familiar"`
	Score      float64 `json:"score"`
}

// GetFeedbackStatsResult aggregates feedback across the whole network
type GetFeedbackStatsResult struct {
	TotalNodes      int            `json:"total_nodes"`
	VisitedNodes    int            `json:"visited_nodes"`
	CoveragePercent float64        `json:"coverage_percent"`
	TotalVisits     int            `json:"total_visits"`
	TotalInsightful int            `json:"total_insightful"`
	TotalNeutral    int            `json:"total_neutral"`
	TotalFamiliar   int            `json:"total_familiar"`
	Nodes           []NodeFeedback `json:"nodes"`
}
