package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	commandbus "github.com/dkimh/Cybernetic-Design-Network/application/commands/bus"
	querybus "github.com/dkimh/Cybernetic-Design-Network/application/queries/bus"
	"github.com/dkimh/Cybernetic-Design-Network/application/services"
	"github.com/dkimh/Cybernetic-Design-Network/infrastructure/config"
	"github.com/dkimh/Cybernetic-Design-Network/interfaces/http/rest/handlers"
	"github.com/dkimh/Cybernetic-Design-Network/interfaces/http/rest/middleware"
	"github.com/dkimh/Cybernetic-Design-Network/pkg/observability"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg        *config.Config
	sessions   *services.SessionManager
	commandBus *commandbus.CommandBus
	queryBus   *querybus.QueryBus
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	sessions *services.SessionManager,
	commandBus *commandbus.CommandBus,
	queryBus *querybus.QueryBus,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:        cfg,
		sessions:   sessions,
		commandBus: commandBus,
		queryBus:   queryBus,
		metrics:    metrics,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if rt.cfg.EnableMetrics {
		router.Use(middleware.Metrics(rt.metrics))
	}

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	// Health and operational endpoints
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	if rt.cfg.EnableMetrics {
		router.Handle("/metrics", rt.metrics.Handler())
	}

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		graphHandler := handlers.NewGraphHandler(rt.queryBus, rt.logger)
		r.Get("/graph", graphHandler.GetGraphData)

		feedbackHandler := handlers.NewFeedbackHandler(rt.queryBus, rt.logger)
		r.Get("/feedback/stats", feedbackHandler.GetStats)

		r.Route("/sessions", func(r chi.Router) {
			sessionHandler := handlers.NewSessionHandler(
				rt.sessions, rt.commandBus, rt.queryBus, rt.logger)
			r.Post("/", sessionHandler.CreateSession)
			r.Get("/{sessionID}", sessionHandler.GetSession)
			r.Delete("/{sessionID}", sessionHandler.DeleteSession)
			r.Get("/{sessionID}/layout", sessionHandler.GetLayout)
			r.Post("/{sessionID}/activate", sessionHandler.ActivateNode)
			r.Post("/{sessionID}/feedback", sessionHandler.SubmitFeedback)
			r.Post("/{sessionID}/randomize-links", sessionHandler.RandomizeLinks)
			r.Post("/{sessionID}/mode", sessionHandler.SetMode)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests. The dataset loads at
// startup, so a running process is a ready process.
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
