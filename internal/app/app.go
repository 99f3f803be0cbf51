package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"log-summary/internal/aggregators"
	"log-summary/internal/events"
	"log-summary/internal/exporters"
	internalhttp "log-summary/internal/http"
	"log-summary/internal/ingestors"
	"log-summary/internal/parsers"
	"log-summary/internal/shared/configs"
	"log-summary/internal/shared/filestorages"
	"log-summary/internal/shared/loggers"
	"log-summary/internal/stores"
	"log-summary/internal/streams"
	"log-summary/internal/summarizers"

	"golang.org/x/time/rate"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	summaryCreatedConsumer streams.SummaryCreatedConsumer
	backgroundCtx          context.Context
	backgroundCancel       context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.NewWithFormat(config.Log.Level, config.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "log-summary").
		Logger()

	// Initialize blob store
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	summaryStore := stores.NewSummaryStore(fileStorage)
	pathExportStore := stores.NewPathExportStore(fileStorage)
	rawLogStore, err := stores.NewRawLogStore(fileStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize raw log store: %w", err)
	}

	// Initialize log parsing
	location, err := parsers.LoadLocation(config.Analysis.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize time zone: %w", err)
	}
	patterns := parsers.NewPatterns(location)
	summaryBuilder := summarizers.NewSummaryBuilder(
		parsers.NewRecordReconstructor(patterns),
		parsers.NewVersionExtractor(patterns),
		parsers.NewTimingExtractor(patterns),
		aggregators.NewSatisfactionClassifier(aggregators.DefaultThresholds),
		summarizers.BuilderOptions{
			TimingClassName: config.Analysis.TimingClassName,
			SlowestLimit:    config.Analysis.SlowestLimit,
		},
	)

	// Initialize stream queue and export consumer
	summaryCreatedQueue := streams.NewPartitionedQueue[events.SummaryCreatedEvent]()
	exportService := exporters.NewExportService(pathExportStore)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	summaryCreatedConsumer := streams.NewSummaryCreatedConsumer(summaryCreatedQueue, exportService, consumerLogger)

	// Initialize services
	summaryCreatedProducer := streams.NewSummaryCreatedProducer(summaryCreatedQueue)
	ingestionService := ingestors.NewIngestionService(
		summaryBuilder,
		summaryStore,
		rawLogStore,
		summaryCreatedProducer,
		config.Analysis.MaxLogBytes,
	)
	historyService := summarizers.NewHistoryService(summaryStore, rawLogStore, config.Analysis.HistoryLimit)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(internalhttp.RouterDeps{
		IngestionService: ingestionService,
		HistoryService:   historyService,
		ExportService:    exportService,
		DefaultServer:    config.Analysis.ServerName,
		UploadLimiter:    newUploadLimiter(config.Server),
	}, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:                 config,
		appLogger:              appLogger,
		server:                 server,
		summaryCreatedConsumer: summaryCreatedConsumer,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting log-summary service on port %d (log_level=%s, file_storage_root_dir=%s, timing_class_name=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.config.Analysis.TimingClassName)

	// start background consumers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.summaryCreatedConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	// 2) Cancel background consumers
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background consumers cancelled")
	}

	// 3) Wait for background consumers to finish
	app.summaryCreatedConsumer.Stop()
	app.appLogger.Info().Msg("Background consumers stopped")

	return nil
}

func newUploadLimiter(config configs.ServerConfig) *rate.Limiter {
	if config.UploadRateLimit <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(config.UploadRateLimit), max(config.UploadBurst, 1))
}
