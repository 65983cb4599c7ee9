package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkimh/Cybernetic-Design-Network/domain/core/valueobjects"
)

func TestFeedbackStore_Accumulation(t *testing.T) {
	// Arrange
	store := NewFeedbackStore()
	node := valueobjects.MustNodeID("homeostasis")

	// Act
	store.RecordVisit(node)
	store.RecordVisit(node)
	store.RecordFeedback(node, valueobjects.FeedbackInsightful)
	store.RecordFeedback(node, valueobjects.FeedbackInsightful)
	store.RecordFeedback(node, valueobjects.FeedbackInsightful)
	store.RecordFeedback(node, valueobjects.FeedbackNeutral)

	// Assert: counters accumulate, never reset
	record := store.Record(node)
	assert.Equal(t, 2, record.Visits)
	assert.Equal(t, 3, record.Insightful)
	assert.Equal(t, 1, record.Neutral)
	assert.Equal(t, 0, record.Familiar)
	assert.InDelta(t, 1.5, store.Score(node), 1e-9)
}

func TestFeedbackStore_UnknownNodeIsZero(t *testing.T) {
	store := NewFeedbackStore()
	ghost := valueobjects.MustNodeID("ghost")

	assert.Equal(t, valueobjects.FeedbackRecord{}, store.Record(ghost))
	assert.Zero(t, store.Score(ghost))
	assert.Empty(t, store.Snapshot())
}

func TestFeedbackStore_SnapshotIsACopy(t *testing.T) {
	store := NewFeedbackStore()
	node := valueobjects.MustNodeID("emergence")
	store.RecordFeedback(node, valueobjects.FeedbackFamiliar)

	snapshot := store.Snapshot()
	snapshot[node] = valueobjects.FeedbackRecord{Familiar: 99}

	// Mutating the snapshot must not touch the store
	assert.Equal(t, 1, store.Record(node).Familiar)
}

func TestFeedbackStore_ConcurrentRecording(t *testing.T) {
	store := NewFeedbackStore()
	node := valueobjects.MustNodeID("recursion")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.RecordVisit(node)
			store.RecordFeedback(node, valueobjects.FeedbackInsightful)
			_ = store.Score(node)
		}()
	}
	wg.Wait()

	record := store.Record(node)
	assert.Equal(t, 50, record.Visits)
	assert.Equal(t, 50, record.Insightful)
}
