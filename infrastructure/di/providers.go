package di

import (
	"go.uber.org/zap"

	"github.com/dkimh/Cybernetic-Design-Network/application/commands"
	commandbus "github.com/dkimh/Cybernetic-Design-Network/application/commands/bus"
	commandhandlers "github.com/dkimh/Cybernetic-Design-Network/application/commands/handlers"
	"github.com/dkimh/Cybernetic-Design-Network/application/ports"
	"github.com/dkimh/Cybernetic-Design-Network/application/queries"
	querybus "github.com/dkimh/Cybernetic-Design-Network/application/queries/bus"
	queryhandlers "github.com/dkimh/Cybernetic-Design-Network/application/queries/handlers"
	appservices "github.com/dkimh/Cybernetic-Design-Network/application/services"
	"github.com/dkimh/Cybernetic-Design-Network/domain/core/aggregates"
	domainservices "github.com/dkimh/Cybernetic-Design-Network/domain/services"
	"github.com/dkimh/Cybernetic-Design-Network/infrastructure/config"
	"github.com/dkimh/Cybernetic-Design-Network/infrastructure/dataset"
	"github.com/dkimh/Cybernetic-Design-Network/infrastructure/persistence/memory"
	"github.com/dkimh/Cybernetic-Design-Network/pkg/observability"
)

// graphDataCacheTTL is how long the static graph query result stays
// cached, in seconds
const graphDataCacheTTL = 300

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	GraphRepo  ports.GraphRepository
	Feedback   ports.FeedbackStore
	Sessions   *appservices.SessionManager
	CommandBus *commandbus.CommandBus
	QueryBus   *querybus.QueryBus
	Metrics    *observability.Metrics
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideGraph loads the design-factor graph from the configured
// dataset (embedded unless DATASET_PATH is set)
func ProvideGraph(cfg *config.Config) (*aggregates.Graph, error) {
	return dataset.Load(cfg.DatasetPath)
}

// ProvideGraphRepository creates the in-memory graph repository
func ProvideGraphRepository(graph *aggregates.Graph) ports.GraphRepository {
	return memory.NewGraphRepository(graph)
}

// ProvideFeedbackStore creates the process-wide feedback store
func ProvideFeedbackStore() ports.FeedbackStore {
	return memory.NewFeedbackStore()
}

// ProvideMetrics creates the prometheus instruments
func ProvideMetrics(cfg *config.Config) *observability.Metrics {
	return observability.NewMetrics("design_network")
}

// ProvideLayoutConfig maps configuration onto the layout tunables
func ProvideLayoutConfig(cfg *config.Config) domainservices.LayoutConfig {
	layoutCfg := domainservices.DefaultLayoutConfig()
	layoutCfg.Iterations = cfg.LayoutIterations
	layoutCfg.RandomIterations = cfg.LayoutRandomIterations
	layoutCfg.TargetSpan = cfg.LayoutTargetSpan
	return layoutCfg
}

// ProvideSessionManager creates the session manager
func ProvideSessionManager(
	graphRepo ports.GraphRepository,
	feedback ports.FeedbackStore,
	layoutCfg domainservices.LayoutConfig,
	cfg *config.Config,
	logger *zap.Logger,
) *appservices.SessionManager {
	return appservices.NewSessionManager(
		graphRepo,
		feedback,
		layoutCfg,
		cfg.TraversalChunkSize,
		cfg.MinDegree,
		cfg.RandomSeed,
		logger,
	)
}

// ProvideCommandBus creates the command bus with all handlers
// registered behind logging middleware
func ProvideCommandBus(
	sessions *appservices.SessionManager,
	logger *zap.Logger,
) (*commandbus.CommandBus, error) {
	b := commandbus.NewCommandBus()
	logging := commandbus.NewLoggingMiddleware(logger)

	register := func(cmd commandbus.Command, handler commandbus.CommandHandler) error {
		return b.Register(cmd, logging.Wrap(handler))
	}

	if err := register(commands.ActivateNodeCommand{},
		commandhandlers.NewActivateNodeHandler(sessions, logger)); err != nil {
		return nil, err
	}
	if err := register(commands.SubmitFeedbackCommand{},
		commandhandlers.NewSubmitFeedbackHandler(sessions, logger)); err != nil {
		return nil, err
	}
	if err := register(commands.RandomizeLinksCommand{},
		commandhandlers.NewRandomizeLinksHandler(sessions, logger)); err != nil {
		return nil, err
	}
	if err := register(commands.SetCyberneticModeCommand{},
		commandhandlers.NewSetCyberneticModeHandler(sessions, logger)); err != nil {
		return nil, err
	}
	if err := register(commands.DeleteSessionCommand{},
		commandhandlers.NewDeleteSessionHandler(sessions, logger)); err != nil {
		return nil, err
	}

	return b, nil
}

// ProvideQueryBus creates the query bus with all handlers registered.
// Every handler gets metrics; the static graph-data query additionally
// gets caching.
func ProvideQueryBus(
	sessions *appservices.SessionManager,
	graphRepo ports.GraphRepository,
	feedback ports.FeedbackStore,
	metrics *observability.Metrics,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	b := querybus.NewQueryBus()
	instrument := querybus.NewMetricsMiddleware(metrics)
	caching := querybus.NewCachingMiddleware(memory.NewCache(), graphDataCacheTTL)

	if err := b.Register(queries.GetGraphDataQuery{},
		instrument.Wrap(caching.Wrap(
			queryhandlers.NewGetGraphDataHandler(graphRepo, logger)))); err != nil {
		return nil, err
	}
	if err := b.Register(queries.GetLayoutQuery{},
		instrument.Wrap(queryhandlers.NewGetLayoutHandler(sessions, logger))); err != nil {
		return nil, err
	}
	if err := b.Register(queries.GetSessionQuery{},
		instrument.Wrap(queryhandlers.NewGetSessionHandler(sessions, logger))); err != nil {
		return nil, err
	}
	if err := b.Register(queries.GetFeedbackStatsQuery{},
		instrument.Wrap(queryhandlers.NewGetFeedbackStatsHandler(graphRepo, feedback, logger))); err != nil {
		return nil, err
	}

	return b, nil
}
