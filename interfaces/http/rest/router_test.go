package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dkimh/Cybernetic-Design-Network/application/queries"
	"github.com/dkimh/Cybernetic-Design-Network/application/services"
	"github.com/dkimh/Cybernetic-Design-Network/infrastructure/config"
	"github.com/dkimh/Cybernetic-Design-Network/infrastructure/di"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerAddress: ":0",
		Environment:   "test",
		RandomSeed:    7,

		LayoutIterations:       20,
		LayoutRandomIterations: 40,
		LayoutTargetSpan:       8.0,

		TraversalChunkSize: 3,
		MinDegree:          3,

		EnableMetrics: true,
		EnableCORS:    false,
	}
}

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := testConfig()
	logger := zap.NewNop()

	graph, err := di.ProvideGraph(cfg)
	require.NoError(t, err)
	graphRepo := di.ProvideGraphRepository(graph)
	feedback := di.ProvideFeedbackStore()
	metrics := di.ProvideMetrics(cfg)
	sessions := di.ProvideSessionManager(
		graphRepo, feedback, di.ProvideLayoutConfig(cfg), cfg, logger)
	commandBus, err := di.ProvideCommandBus(sessions, logger)
	require.NoError(t, err)
	queryBus, err := di.ProvideQueryBus(sessions, graphRepo, feedback, metrics, logger)
	require.NoError(t, err)

	router := NewRouter(cfg, sessions, commandBus, queryBus, metrics, logger)
	server := httptest.NewServer(router.Setup())
	t.Cleanup(server.Close)
	return server
}

// envelope mirrors the response wrapper every endpoint uses
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doRequest(t *testing.T, server *httptest.Server, method, path string, body interface{}) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func createSession(t *testing.T, server *httptest.Server) string {
	t.Helper()
	status, env := doRequest(t, server, http.MethodPost, "/api/v1/sessions/", nil)
	require.Equal(t, http.StatusCreated, status)
	require.True(t, env.Success)

	var created struct {
		Session services.Snapshot       `json:"session"`
		Layout  queries.GetLayoutResult `json:"layout"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotEmpty(t, created.Session.ID)
	require.NotEmpty(t, created.Layout.Positions)
	return created.Session.ID
}

func TestHealthEndpoints(t *testing.T) {
	server := testServer(t)

	for _, path := range []string{"/health", "/ready"} {
		resp, err := server.Client().Get(server.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}

	resp, err := server.Client().Get(server.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetGraphData(t *testing.T) {
	server := testServer(t)

	status, env := doRequest(t, server, http.MethodGet, "/api/v1/graph", nil)

	require.Equal(t, http.StatusOK, status)
	var graph queries.GetGraphDataResult
	require.NoError(t, json.Unmarshal(env.Data, &graph))
	assert.Greater(t, len(graph.Nodes), 20)
	assert.Greater(t, len(graph.Edges), len(graph.Nodes))
	assert.Equal(t, len(graph.Nodes), graph.Stats.NodeCount)
	assert.Equal(t, len(graph.Edges), graph.Stats.EdgeCount)
	assert.Greater(t, graph.Stats.Density, 0.0)
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	server := testServer(t)
	sessionID := createSession(t, server)
	base := "/api/v1/sessions/" + sessionID

	// Fetch the snapshot back
	status, env := doRequest(t, server, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, status)
	var snapshot services.Snapshot
	require.NoError(t, json.Unmarshal(env.Data, &snapshot))
	assert.Equal(t, sessionID, snapshot.ID)
	assert.Empty(t, snapshot.ActiveNode)

	// Activate a node; the refreshed snapshot carries the layering
	status, env = doRequest(t, server, http.MethodPost, base+"/activate",
		map[string]string{"node_id": "feedback-loops"})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &snapshot))
	assert.Equal(t, "feedback-loops", snapshot.ActiveNode)
	require.NotNil(t, snapshot.Current)
	assert.Equal(t, "feedback-loops", snapshot.Current.Start.String())
	assert.Nil(t, snapshot.Previous)

	// A second activation shifts the history
	status, env = doRequest(t, server, http.MethodPost, base+"/activate",
		map[string]string{"node_id": "homeostasis"})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &snapshot))
	require.NotNil(t, snapshot.Previous)
	assert.Equal(t, "feedback-loops", snapshot.Previous.Start.String())

	// Delete, then the session is gone
	status, _ = doRequest(t, server, http.MethodDelete, base, nil)
	require.Equal(t, http.StatusOK, status)
	status, env = doRequest(t, server, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestGetLayout(t *testing.T) {
	server := testServer(t)
	sessionID := createSession(t, server)
	base := "/api/v1/sessions/" + sessionID

	status, env := doRequest(t, server, http.MethodGet, base+"/layout", nil)
	require.Equal(t, http.StatusOK, status)
	var layout queries.GetLayoutResult
	require.NoError(t, json.Unmarshal(env.Data, &layout))
	assert.Equal(t, sessionID, layout.SessionID)
	assert.NotEmpty(t, layout.Positions)
	assert.False(t, layout.Randomized)

	// The committed layout is stable between reads
	_, env = doRequest(t, server, http.MethodGet, base+"/layout", nil)
	var again queries.GetLayoutResult
	require.NoError(t, json.Unmarshal(env.Data, &again))
	assert.Equal(t, layout.Positions, again.Positions)

	// A randomized recompute reports it
	status, env = doRequest(t, server, http.MethodGet, base+"/layout?recompute=true&randomize=true", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &again))
	assert.True(t, again.Randomized)
	assert.Len(t, again.Positions, len(layout.Positions))
}

func TestSubmitFeedbackAndStats(t *testing.T) {
	server := testServer(t)
	sessionID := createSession(t, server)
	base := "/api/v1/sessions/" + sessionID

	_, _ = doRequest(t, server, http.MethodPost, base+"/activate",
		map[string]string{"node_id": "emergence"})
	for i := 0; i < 3; i++ {
		status, _ := doRequest(t, server, http.MethodPost, base+"/feedback",
			map[string]string{"node_id": "emergence", "kind": "insightful"})
		require.Equal(t, http.StatusOK, status)
	}

	status, env := doRequest(t, server, http.MethodGet, "/api/v1/feedback/stats", nil)
	require.Equal(t, http.StatusOK, status)
	var stats queries.GetFeedbackStatsResult
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 1, stats.VisitedNodes)
	assert.Equal(t, 1, stats.TotalVisits)
	assert.Equal(t, 3, stats.TotalInsightful)
	require.Len(t, stats.Nodes, 1)
	assert.Equal(t, "emergence", stats.Nodes[0].NodeID)
	assert.InDelta(t, 2.0, stats.Nodes[0].Score, 1e-9)
}

func TestSubmitFeedback_RejectsUnknownKind(t *testing.T) {
	server := testServer(t)
	sessionID := createSession(t, server)

	status, env := doRequest(t, server, http.MethodPost,
		fmt.Sprintf("/api/v1/sessions/%s/feedback", sessionID),
		map[string]string{"node_id": "emergence", "kind": "amazing"})

	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION", env.Error.Code)
}

func TestActivateNode_UnknownNodeOverHTTP(t *testing.T) {
	server := testServer(t)
	sessionID := createSession(t, server)

	status, env := doRequest(t, server, http.MethodPost,
		fmt.Sprintf("/api/v1/sessions/%s/activate", sessionID),
		map[string]string{"node_id": "not-a-concept"})

	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestRandomizeLinksOverHTTP(t *testing.T) {
	server := testServer(t)
	sessionID := createSession(t, server)
	base := "/api/v1/sessions/" + sessionID

	status, env := doRequest(t, server, http.MethodPost, base+"/randomize-links", nil)

	require.Equal(t, http.StatusOK, status)
	var layout queries.GetLayoutResult
	require.NoError(t, json.Unmarshal(env.Data, &layout))
	assert.NotEmpty(t, layout.Positions)
}

func TestSetModeOverHTTP(t *testing.T) {
	server := testServer(t)
	sessionID := createSession(t, server)
	base := "/api/v1/sessions/" + sessionID

	_, _ = doRequest(t, server, http.MethodPost, base+"/activate",
		map[string]string{"node_id": "requisite-variety"})

	status, env := doRequest(t, server, http.MethodPost, base+"/mode",
		map[string]bool{"cybernetic": true})

	require.Equal(t, http.StatusOK, status)
	var snapshot services.Snapshot
	require.NoError(t, json.Unmarshal(env.Data, &snapshot))
	assert.True(t, snapshot.CyberneticMode)
	require.NotNil(t, snapshot.Current)
	// Chunked layers never exceed the configured size after level 0
	for _, layer := range snapshot.Current.Layers[1:] {
		assert.LessOrEqual(t, len(layer.Nodes), 3)
	}
}

func TestUnknownSessionIsNotFound(t *testing.T) {
	server := testServer(t)

	status, env := doRequest(t, server, http.MethodGet,
		"/api/v1/sessions/00000000-0000-0000-0000-000000000000", nil)

	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}
