package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	logger_adapter "listing-service/internal/adapters/logger"
	postgres_adapter "listing-service/internal/adapters/postgres"
	rabbitmq_adapter "listing-service/internal/adapters/rabbitmq"
	"listing-service/internal/adapters/rest"
	"listing-service/internal/configs"
	"listing-service/internal/constants"
	"listing-service/internal/core/port"
	"listing-service/internal/core/usecase"
	"listing-service/internal/snapshot"

	fluentlogger "listing-service/pkg/fluent_logger"
	"listing-service/pkg/postgres"
	"listing-service/pkg/rabbitmq/rabbitmq_common"
	"listing-service/pkg/rabbitmq/rabbitmq_consumer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App is the application container.
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	recordEventsListener *rabbitmq_adapter.RecordEventsConsumerAdapter
}

// NewApp is the composition root: every dependency is created and wired
// here.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. Loggers ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 2. PostgreSQL pool and record source adapters ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	allotmentSource, err := postgres_adapter.NewAllotmentSource(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create allotment source: %w", err)
	}
	parcelSource, err := postgres_adapter.NewParcelSource(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create parcel source: %w", err)
	}
	buildingSource, err := postgres_adapter.NewBuildingSource(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create building source: %w", err)
	}
	infrastructureSource, err := postgres_adapter.NewInfrastructureSource(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create infrastructure source: %w", err)
	}

	locationDirectory, err := postgres_adapter.NewLocationDirectoryAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create location directory: %w", err)
	}
	appLogger.Info("Postgres record source adapters initialized.", nil)

	// --- 3. Core use cases ---
	buildCollectionUseCase := usecase.NewBuildCollectionUseCase(locationDirectory,
		allotmentSource, parcelSource, buildingSource, infrastructureSource)

	snapshotCache := snapshot.NewCache(buildCollectionUseCase,
		time.Duration(appConfig.Snapshot.TTLSeconds)*time.Second, baseLogger)

	findListingsUseCase := usecase.NewFindListingsUseCase(snapshotCache)
	getListingDetailsUseCase := usecase.NewGetListingDetailsUseCase(snapshotCache)
	getSimilarListingsUseCase := usecase.NewGetSimilarListingsUseCase(snapshotCache)
	getListingStatsUseCase := usecase.NewGetListingStatsUseCase(snapshotCache)

	appLogger.Info("All use cases initialized.", nil)

	// --- 4. Incoming adapters ---
	connManagerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"})
	connManager, err := rabbitmq_common.GetManager(appConfig.RabbitMQ.URL, rabbitmq_adapter.NewPkgLoggerBridge(connManagerLogger))
	if err != nil {
		appLogger.Error("Failed to create connection manager", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	appLogger.Info("RabbitMQ Connection Manager initialized.", nil)

	recordEventsCfg := rabbitmq_consumer.ConsumerConfig{
		Config:                 rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
		QueueName:              constants.QueueRecordEvents,
		DeclareQueue:           true,
		DurableQueue:           true,
		ExchangeNameForBind:    constants.RecordEventsExchange,
		DeclareExchangeForBind: true,
		ExchangeTypeForBind:    "direct",
		DurableExchangeForBind: true,
		RoutingKeyForBind:      constants.RoutingKeyRecordChanged,
		PrefetchCount:          1,
		ConsumerTag:            "listing-snapshot-invalidator",
	}
	recordEventsListener, err := rabbitmq_adapter.NewRecordEventsConsumerAdapter(recordEventsCfg, snapshotCache, baseLogger, connManager)
	if err != nil {
		appLogger.Error("Failed to create record events listener", err, nil)
		dbPool.Close()
		return nil, err
	}
	appLogger.Info("Record Events Listener initialized.", nil)

	// --- 5. REST API server ---
	listingsHandler := rest.NewListingsHandler(findListingsUseCase, getListingDetailsUseCase,
		getSimilarListingsUseCase, getListingStatsUseCase)
	apiServer := rest.NewServer(appConfig.Rest.PORT, listingsHandler, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:               appConfig,
		dbPool:               dbPool,
		apiServer:            apiServer,
		fluentClient:         fluentClient,
		logger:               appLogger,
		recordEventsListener: recordEventsListener,
	}, nil
}

// Run starts every component and manages the application lifecycle.
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.recordEventsListener != nil {
			if err := a.recordEventsListener.Close(); err != nil {
				a.logger.Error("Error closing record events listener", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// stdout: fluent may already be unreachable at this point.
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	if err := a.recordEventsListener.Start(); err != nil {
		return fmt.Errorf("failed to start record events listener: %w", err)
	}

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	}

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
