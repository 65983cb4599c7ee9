package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackRecord_Score(t *testing.T) {
	tests := []struct {
		name     string
		record   FeedbackRecord
		expected float64
	}{
		{
			name:     "no feedback scores zero",
			record:   FeedbackRecord{},
			expected: 0,
		},
		{
			name:     "visits alone do not affect score",
			record:   FeedbackRecord{Visits: 10},
			expected: 0,
		},
		{
			name:     "all insightful maxes out",
			record:   FeedbackRecord{Insightful: 2},
			expected: 2,
		},
		{
			name:     "all familiar bottoms out",
			record:   FeedbackRecord{Familiar: 2},
			expected: -2,
		},
		{
			name:     "neutral dilutes",
			record:   FeedbackRecord{Insightful: 1, Neutral: 1},
			expected: 1,
		},
		{
			name:     "mixed feedback cancels",
			record:   FeedbackRecord{Insightful: 1, Familiar: 1},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.record.Score(), 1e-9)
		})
	}
}

func TestFeedbackRecord_ScoreRange(t *testing.T) {
	// Any counter combination stays inside [-2, 2]
	for insightful := 0; insightful <= 4; insightful++ {
		for neutral := 0; neutral <= 4; neutral++ {
			for familiar := 0; familiar <= 4; familiar++ {
				record := FeedbackRecord{
					Insightful: insightful,
					Neutral:    neutral,
					Familiar:   familiar,
				}
				score := record.Score()
				assert.GreaterOrEqual(t, score, -2.0)
				assert.LessOrEqual(t, score, 2.0)
			}
		}
	}
}

func TestParseFeedbackKind(t *testing.T) {
	// Valid kinds parse
	for _, kind := range []string{"insightful", "neutral", "familiar"} {
		parsed, err := ParseFeedbackKind(kind)
		require.NoError(t, err)
		assert.Equal(t, kind, parsed.String())
	}

	// Anything else is rejected
	_, err := ParseFeedbackKind("brilliant")
	assert.Error(t, err)
	_, err = ParseFeedbackKind("")
	assert.Error(t, err)
}
