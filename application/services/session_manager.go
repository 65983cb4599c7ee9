package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dkimh/Cybernetic-Design-Network/application/ports"
	domainservices "github.com/dkimh/Cybernetic-Design-Network/domain/services"
)

// SessionManager owns all live sessions. Each session gets its own
// random source and layout service so concurrent sessions never contend
// on a shared rand.Rand; the feedback store is shared across all of
// them for the process lifetime.
type SessionManager struct {
	graphRepo ports.GraphRepository
	feedback  ports.FeedbackStore
	layoutCfg domainservices.LayoutConfig
	chunkSize int
	minDegree int
	seed      int64
	logger    *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
	created  int64
}

// NewSessionManager creates a session manager. A non-zero seed makes
// session random sources reproducible (each session offsets the seed by
// its creation index); a zero seed uses wall-clock seeding.
func NewSessionManager(
	graphRepo ports.GraphRepository,
	feedback ports.FeedbackStore,
	layoutCfg domainservices.LayoutConfig,
	chunkSize int,
	minDegree int,
	seed int64,
	logger *zap.Logger,
) *SessionManager {
	return &SessionManager{
		graphRepo: graphRepo,
		feedback:  feedback,
		layoutCfg: layoutCfg,
		chunkSize: chunkSize,
		minDegree: minDegree,
		seed:      seed,
		logger:    logger,
		sessions:  make(map[string]*Session),
	}
}

// CreateSession starts a new exploration session with the dataset's
// edge set and an initial committed layout
func (m *SessionManager) CreateSession(ctx context.Context, randomizeLayout bool) (*Session, error) {
	graph, err := m.graphRepo.Graph(ctx)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.created++
	seed := m.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	} else {
		seed += m.created
	}
	m.mu.Unlock()

	rng := rand.New(rand.NewSource(seed))
	session := &Session{
		id:        uuid.New().String(),
		createdAt: time.Now(),
		graph:     graph,
		edges:     graph.Edges(),
		layout:    domainservices.NewLayoutService(m.layoutCfg, rng),
		traversal: domainservices.NewTraversalService(m.chunkSize),
		feedback:  m.feedback,
		rng:       rng,
		minDegree: m.minDegree,
	}
	session.ComputeLayout(randomizeLayout)

	m.mu.Lock()
	m.sessions[session.id] = session
	m.mu.Unlock()

	m.logger.Info("session created",
		zap.String("sessionID", session.id),
		zap.Bool("randomizeLayout", randomizeLayout),
	)
	return session, nil
}

// Get looks up a live session
func (m *SessionManager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[id]
	return session, ok
}

// Delete drops a session. Feedback recorded during the session is kept;
// it belongs to the process, not the session.
func (m *SessionManager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// Count returns the number of live sessions
func (m *SessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
