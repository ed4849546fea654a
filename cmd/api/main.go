package main

import (
	"context"
	"database/sql"
	"net"
	"os"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"docdraft/docs"
	"docdraft/internal/composer"
	"docdraft/internal/config"
	"docdraft/internal/database"
	"docdraft/internal/database/migration"
	"docdraft/internal/draft"
	handlers "docdraft/internal/http/handler"
	"docdraft/internal/http/middleware"
	"docdraft/internal/logger"
	"docdraft/internal/metrics"
	"docdraft/internal/navigation"
	"docdraft/internal/otel"
	"docdraft/internal/picker"
	"docdraft/internal/remote"
	"docdraft/internal/repository/postgres"
	"docdraft/internal/service"
	"docdraft/internal/storage"
)

// @title Document Draft API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, os.Stdout)

	shutdownTracing, err := otel.Init(context.Background(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(ctx)
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	workflow, err := metrics.NewWorkflow(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register workflow metrics")
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register http metrics")
	}

	deps := handlers.Deps{
		LibraryPrefix: cfg.MinIO.Prefix,
		PresignExpiry: time.Duration(cfg.MinIO.PresignExpirySec) * time.Second,
		UploadRoot:    cfg.Remote.UploadRoot,
	}

	// The downloads list needs PostgreSQL; without DB_HOST it is disabled.
	var db *sql.DB
	if cfg.Database.Enabled() {
		db, err = database.NewPostgres(context.Background(), cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err = migration.EnsureMigrated(ctx, db, log, cfg.Database.Host)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("database migration failed")
		}
		deps.DB = db
		deps.Downloads = service.NewDownloadService(postgres.NewKeyValuePostgres(db))
	}

	// The image pickers browse an S3-compatible bucket when one is configured.
	if cfg.MinIO.Enabled() {
		lib, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize media library")
		}
		deps.Library = lib
	}

	api := remote.NewHTTP(cfg.Remote)
	store := draft.Default()
	stack := navigation.NewStack(navigation.RouteComposer)

	comp := composer.New(store, api,
		composer.WithLogger(log.With().Str("component", "composer").Logger()),
		composer.WithMetrics(workflow),
	)
	comp.Attach(stack)

	deps.Store = store
	deps.Stack = stack
	deps.Composer = comp
	deps.Catalog = api
	deps.Collector = picker.NewCollector(store, stack,
		picker.WithLogger(log.With().Str("component", "picker").Logger()),
		picker.WithMetrics(workflow),
		picker.WithUploadRoot(cfg.Remote.UploadRoot),
	)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || c.Path() == "/healthz"
	})))
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(log))
	app.Use(httpMetrics.Handler())

	app.Get("/metrics", handlers.Metrics(reg))
	handlers.RegisterRoutes(app, deps)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	// No route authenticates the caller, so expose the server beyond loopback only through BIND_HOST.
	addr := net.JoinHostPort(cfg.BindHost, cfg.Port)
	log.Info().
		Str("addr", addr).
		Bool("local_files", cfg.Remote.UploadRoot != "").
		Bool("downloads_enabled", deps.Downloads != nil).
		Bool("library_enabled", deps.Library != nil).
		Str("remote", api.Base).
		Msg("server starting")

	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
