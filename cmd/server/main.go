package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	appcatalog "github.com/pizzeria/backend/internal/application/catalog"
	appcustomer "github.com/pizzeria/backend/internal/application/customer"
	apporder "github.com/pizzeria/backend/internal/application/order"
	"github.com/pizzeria/backend/internal/domain/order"
	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/pizzeria/backend/internal/infrastructure/cache"
	"github.com/pizzeria/backend/internal/infrastructure/config"
	"github.com/pizzeria/backend/internal/infrastructure/event"
	"github.com/pizzeria/backend/internal/infrastructure/logger"
	"github.com/pizzeria/backend/internal/infrastructure/migration"
	"github.com/pizzeria/backend/internal/infrastructure/persistence"
	"github.com/pizzeria/backend/internal/infrastructure/telemetry"
	"github.com/pizzeria/backend/internal/interfaces/http/handler"
	"github.com/pizzeria/backend/internal/interfaces/http/router"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		Service:    cfg.App.Name,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting pizza order service",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("database_driver", cfg.Database.Driver),
	)

	ctx := context.Background()

	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, cfg.App.Version, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	meterProvider, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, cfg.App.Version, log)
	if err != nil {
		log.Fatal("Failed to initialize metrics", zap.Error(err))
	}
	defer func() {
		if err := meterProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down meter provider", zap.Error(err))
		}
	}()

	loggerProvider, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry, cfg.App.Version, log)
	if err != nil {
		log.Fatal("Failed to initialize log export", zap.Error(err))
	}
	defer func() {
		if err := loggerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down logger provider", zap.Error(err))
		}
	}()
	log = loggerProvider.Bridge(log, cfg.Telemetry.ServiceName, logger.ParseLevel(cfg.Log.Level))

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), cfg.Telemetry.DBSlowQueryThresh)

	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		DBName:          cfg.Database.DBName,
	}, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	if cfg.Database.AutoMigrate {
		if err := migrateSchema(&cfg.Database, db, log); err != nil {
			log.Fatal("Failed to migrate database schema", zap.Error(err))
		}
	}

	// Repositories are built here and injected; nothing below reaches for a global handle
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	pizzaRepo := persistence.NewGormPizzaRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB, db.TxOptions())

	customerService := appcustomer.NewService(customerRepo, log.Named("customer"))
	pizzaService := appcatalog.NewPizzaService(pizzaRepo, orderRepo, log.Named("catalog"))
	orderService := apporder.NewService(orderRepo, customerRepo, txScope, log.Named("order"))
	if cfg.Order.EnforceTransitions {
		orderService.SetTransitionPolicy(order.StrictTransitions{})
		log.Info("Order status transitions restricted to the lifecycle table")
	}

	// Event bus: audit log always, broker forwarding when configured
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewOrderAuditHandler(log))
	if meterProvider.IsEnabled() {
		orderMetrics, err := telemetry.NewOrderMetrics(meterProvider.Meter("pizza.orders"), log)
		if err != nil {
			log.Fatal("Failed to create order metrics", zap.Error(err))
		}
		eventBus.Subscribe(orderMetrics)
	}

	var idempotencyStore shared.IdempotencyStore
	if cfg.Broker.Enabled {
		forwarder, err := event.DialAMQPForwarder(cfg.Broker, log)
		if err != nil {
			log.Fatal("Failed to connect to message broker", zap.Error(err))
		}
		defer func() {
			if err := forwarder.Close(); err != nil {
				log.Error("Error closing broker connection", zap.Error(err))
			}
		}()

		idempotencyStore = cache.NewIdempotencyStore(ctx, cfg.Redis, log)
		eventBus.Subscribe(event.NewIdempotentHandler("amqp-forwarder", forwarder, idempotencyStore, log))
		log.Info("Forwarding order events to broker", zap.String("exchange", cfg.Broker.Exchange))
	}

	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	orderService.SetEventPublisher(eventBus)

	if cfg.Seed.Enabled {
		seeded, err := pizzaService.SeedMenu(ctx)
		if err != nil {
			log.Fatal("Failed to seed the menu", zap.Error(err))
		}
		if seeded > 0 {
			log.Info("Sample menu loaded", zap.Int("pizzas", seeded))
		}
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine, err := router.NewEngine(router.EngineConfig{
		ServiceName:    cfg.Telemetry.ServiceName,
		HTTP:           cfg.HTTP,
		TracingEnabled: cfg.Telemetry.Enabled,
		Meter:          httpMeter(meterProvider),
	}, log, router.Handlers{
		Orders:    handler.NewOrderHandler(orderService),
		Customers: handler.NewCustomerHandler(customerService),
		Pizzas:    handler.NewPizzaHandler(pizzaService),
		System:    handler.NewSystemHandler(cfg.App.Name, cfg.App.Version, db),
	})
	if err != nil {
		log.Fatal("Failed to build HTTP engine", zap.Error(err))
	}

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// In-flight requests are done; stop accepting events before the broker closes
	if err := eventBus.Stop(shutdownCtx); err != nil {
		log.Error("Error stopping event bus", zap.Error(err))
	}
	if idempotencyStore != nil {
		if err := idempotencyStore.Close(); err != nil {
			log.Error("Error closing idempotency store", zap.Error(err))
		}
	}

	log.Info("Server exited gracefully")
}

func httpMeter(mp *telemetry.MeterProvider) metric.Meter {
	if !mp.IsEnabled() {
		return nil
	}
	return mp.Meter("http.server")
}

// migrateSchema brings the schema up to date. In-memory sqlite databases live
// on the application's single connection, so the migrations run over that pool
// instead of a dedicated one.
func migrateSchema(cfg *config.DatabaseConfig, db *persistence.Database, log *zap.Logger) error {
	if cfg.Driver == config.DriverSQLite && strings.Contains(cfg.SQLitePath, ":memory:") {
		log.Info("Applying migrations to in-memory database")
		sqlDB, err := db.SQLDB()
		if err != nil {
			return err
		}
		return migration.UpInPlace(sqlDB, cfg.Driver, log)
	}

	m, err := migration.Open(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn("Error closing migrator", zap.Error(err))
		}
	}()

	start := time.Now()
	if err := m.Up(); err != nil {
		return err
	}
	log.Info("Database schema up to date", zap.Duration("took", time.Since(start)))
	return nil
}
