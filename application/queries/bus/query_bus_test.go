package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testQuery struct {
	ID string
}

func (q testQuery) Validate() error {
	if q.ID == "" {
		return errors.New("id is required")
	}
	return nil
}

type mapCache struct {
	entries map[string]interface{}
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]interface{})}
}

func (c *mapCache) Get(ctx context.Context, key string) (interface{}, bool) {
	value, ok := c.entries[key]
	return value, ok
}

func (c *mapCache) Set(ctx context.Context, key string, value interface{}, ttl int) error {
	c.entries[key] = value
	return nil
}

type recordingMetrics struct {
	queryType string
	success   bool
	calls     int
}

func (m *recordingMetrics) ObserveQuery(queryType string, success bool, seconds float64) {
	m.queryType = queryType
	m.success = success
	m.calls++
}

func TestQueryBus_Dispatch(t *testing.T) {
	b := NewQueryBus()
	require.NoError(t, b.Register(testQuery{}, QueryHandlerFunc(
		func(ctx context.Context, query Query) (interface{}, error) {
			return query.(testQuery).ID, nil
		})))

	result, err := b.Ask(context.Background(), testQuery{ID: "x"})

	require.NoError(t, err)
	assert.Equal(t, "x", result)
}

func TestQueryBus_ValidationRejectsBadQuery(t *testing.T) {
	b := NewQueryBus()
	require.NoError(t, b.Register(testQuery{}, QueryHandlerFunc(
		func(ctx context.Context, query Query) (interface{}, error) {
			return nil, nil
		})))

	_, err := b.Ask(context.Background(), testQuery{})
	assert.Error(t, err)
}

func TestQueryBus_WrappedHandlerErrorKeepsChain(t *testing.T) {
	b := NewQueryBus()
	want := errors.New("storage down")
	require.NoError(t, b.Register(testQuery{}, QueryHandlerFunc(
		func(ctx context.Context, query Query) (interface{}, error) {
			return nil, want
		})))

	_, err := b.Ask(context.Background(), testQuery{ID: "x"})

	// Ask wraps for context but the original error stays reachable
	require.Error(t, err)
	assert.True(t, errors.Is(err, want))
}

func TestCachingMiddleware_SecondAskHitsCache(t *testing.T) {
	calls := 0
	handler := QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		calls++
		return "computed", nil
	})
	wrapped := NewCachingMiddleware(newMapCache(), 60).Wrap(handler)

	first, err := wrapped.Handle(context.Background(), testQuery{ID: "x"})
	require.NoError(t, err)
	second, err := wrapped.Handle(context.Background(), testQuery{ID: "x"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestCachingMiddleware_ErrorsAreNotCached(t *testing.T) {
	calls := 0
	handler := QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("transient")
		}
		return "ok", nil
	})
	wrapped := NewCachingMiddleware(newMapCache(), 60).Wrap(handler)

	_, err := wrapped.Handle(context.Background(), testQuery{ID: "x"})
	require.Error(t, err)
	result, err := wrapped.Handle(context.Background(), testQuery{ID: "x"})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
}

func TestMetricsMiddleware_RecordsOutcome(t *testing.T) {
	metrics := &recordingMetrics{}
	wrapped := NewMetricsMiddleware(metrics).Wrap(QueryHandlerFunc(
		func(ctx context.Context, query Query) (interface{}, error) {
			return nil, errors.New("boom")
		}))

	_, err := wrapped.Handle(context.Background(), testQuery{ID: "x"})

	require.Error(t, err)
	assert.Equal(t, 1, metrics.calls)
	assert.Equal(t, "testQuery", metrics.queryType)
	assert.False(t, metrics.success)
}
