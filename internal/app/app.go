package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"function-insights/internal/aggregators"
	"function-insights/internal/events"
	internalhttp "function-insights/internal/http"
	"function-insights/internal/ingestors"
	"function-insights/internal/models"
	"function-insights/internal/registries"
	"function-insights/internal/shared/configs"
	"function-insights/internal/shared/filestorages"
	"function-insights/internal/shared/loggers"
	"function-insights/internal/stores"
	"function-insights/internal/streams"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	invocationBatchQueue    *streams.PartitionedQueue[events.InvocationBatchStoredEvent]
	invocationBatchConsumer streams.InvocationBatchConsumer
	backgroundCtx           context.Context
	backgroundCancel        context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "function-insights").
		Logger()

	defaultPeriod, err := models.NewWindowPeriodFromString(config.Stats.DefaultPeriod)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize default stats period: %w", err)
	}

	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	recordStore := stores.NewInvocationRecordStore(fileStorage)
	registryStore := stores.NewFunctionRegistryStore(fileStorage)

	// Stats engine and its per-user record index cache
	indexCache := aggregators.NewRecordIndexCache(recordStore)
	windowAggregator := aggregators.NewWindowAggregator()
	rollupBuilder := aggregators.NewRollupBuilder(windowAggregator)
	statsService := aggregators.NewStatsService(indexCache, registryStore, windowAggregator, rollupBuilder)

	registryService := registries.NewRegistryService(registryStore)

	// Ingestion publishes stored batches; the consumer invalidates cached indexes
	invocationBatchQueue := streams.NewPartitionedQueue[events.InvocationBatchStoredEvent](config.Stream.Partitions, config.Stream.Buffer)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	invocationBatchConsumer := streams.NewInvocationBatchConsumer(invocationBatchQueue, indexCache, consumerLogger)
	invocationBatchProducer := streams.NewInvocationBatchProducer(invocationBatchQueue)
	ingestionService := ingestors.NewIngestionService(recordStore, invocationBatchProducer)

	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(statsService, registryService, ingestionService, defaultPeriod, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:                  config,
		appLogger:               appLogger,
		server:                  server,
		invocationBatchQueue:    invocationBatchQueue,
		invocationBatchConsumer: invocationBatchConsumer,
	}, nil
}

// Handler exposes the router, mainly for in-process tests.
func (app *App) Handler() http.Handler {
	return app.server.Handler
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting function-insights service on port %d (log_level=%s, file_storage_root_dir=%s, default_period=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.config.Stats.DefaultPeriod)

	app.startBackground()

	return app.server.ListenAndServe()
}

func (app *App) startBackground() {
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.invocationBatchConsumer.Start(app.backgroundCtx)
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server, no more batches get published after this
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Close the queue and cancel background consumers
	app.invocationBatchQueue.Close()
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background consumers cancelled")
	}

	// 3) Wait for background consumers to finish
	app.invocationBatchConsumer.Stop()
	app.appLogger.Info().Msg("Background consumers stopped")

	return nil
}
