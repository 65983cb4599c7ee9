package valueobjects

import "fmt"

// FeedbackKind classifies a single piece of exploration feedback
type FeedbackKind string

const (
	FeedbackInsightful FeedbackKind = "insightful"
	FeedbackNeutral    FeedbackKind = "neutral"
	FeedbackFamiliar   FeedbackKind = "familiar"
)

// ParseFeedbackKind validates a raw feedback kind string
func ParseFeedbackKind(s string) (FeedbackKind, error) {
	switch FeedbackKind(s) {
	case FeedbackInsightful, FeedbackNeutral, FeedbackFamiliar:
		return FeedbackKind(s), nil
	default:
		return "", fmt.Errorf("unknown feedback kind %q", s)
	}
}

// String returns the string representation
func (k FeedbackKind) String() string {
	return string(k)
}

// FeedbackRecord accumulates exploration feedback for one node.
// Counters only grow within a session; they reset at process restart.
type FeedbackRecord struct {
	Visits     int `json:"visits"`
	Insightful int `json:"insightful"`
	Neutral    int `json:"neutral"`
	Familiar   int `json:"familiar"`
}

// Total returns the number of feedback submissions (visits excluded)
func (r FeedbackRecord) Total() int {
	return r.Insightful + r.Neutral + r.Familiar
}

// Score derives the exploration score in [-2, 2]. Insightful feedback
// pulls a node forward, familiar feedback pushes it back, neutral only
// dilutes. Zero feedback scores zero.
func (r FeedbackRecord) Score() float64 {
	total := r.Total()
	if total == 0 {
		return 0
	}
	return float64(r.Insightful*2-r.Familiar*2) / float64(total)
}
