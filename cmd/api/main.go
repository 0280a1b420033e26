package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"campusdocs/internal/config"
	"campusdocs/internal/database"
	"campusdocs/internal/database/migration"
	handlers "campusdocs/internal/http/handler"
	"campusdocs/internal/http/middleware"
	"campusdocs/internal/logging"
	"campusdocs/internal/notifier"
	"campusdocs/internal/otel"
	"campusdocs/internal/render"
	"campusdocs/internal/repository"
	"campusdocs/internal/repository/postgres"
	"campusdocs/internal/service"
	"campusdocs/internal/storage"
	"campusdocs/internal/worker"
)

// @title Campus Docs API
// @version 1.0
// @description Renders event certificates, ID cards and invitation letters as PNG files.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logging.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("tracing_init_failed")
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("database_connect_failed")
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		log.Fatal().Err(err).Msg("database_migration_failed")
	}

	store, err := newStorage(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Storage.Backend).Msg("storage_init_failed")
	}

	renderer, err := newRenderer(cfg.Render, log)
	if err != nil {
		log.Fatal().Err(err).Msg("renderer_init_failed")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, cfg.Database.Name),
	)

	renderMetrics, err := service.NewMetrics(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("metrics_register_failed")
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("metrics_register_failed")
	}

	docRepo := postgres.NewDocumentPostgres(db)
	eventRepo := postgres.NewEventPostgres(db)

	renderSvc := service.NewRenderService(renderer, store, docRepo, service.RenderOptions{
		BatchConcurrency: cfg.Render.BatchConcurrency,
		CleanupOrphans:   cfg.Render.CleanupOrphans,
		Stamper:          storage.NewStamper(),
		Metrics:          renderMetrics,
		Logger:           log,
	})
	docSvc := service.NewDocumentService(store, docRepo, log)
	eventSvc := service.NewEventService(eventRepo)

	if cfg.Retention.Days > 0 {
		keep := time.Duration(cfg.Retention.Days) * 24 * time.Hour
		go worker.Every(ctx, cfg.Retention.Interval, log, "retention", func(ctx context.Context) error {
			n, err := docSvc.Purge(ctx, time.Now().Add(-keep))
			if n > 0 {
				log.Info().Int("purged", n).Msg("documents_purged")
			}
			return err
		})
	}

	if cfg.Notifier.Enabled {
		poller, closeClaims, err := newPoller(cfg.Notifier, eventRepo, reg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("notifier_init_failed")
		}
		defer closeClaims()
		go worker.Every(ctx, cfg.Notifier.Interval, log, "notifier", func(ctx context.Context) error {
			_, err := poller.Scan(ctx)
			return err
		})
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    8 * 1024 * 1024,
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || c.Path() == "/healthz"
	})))
	app.Use(middleware.Logger(log))
	app.Use(httpMetrics.Handler())

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:            db,
		Render:        renderSvc,
		Documents:     docSvc,
		Events:        eventSvc,
		Store:         store,
		Gatherer:      reg,
		PublicBaseURL: cfg.PublicBaseURL,
	})

	go func() {
		<-ctx.Done()
		log.Info().Msg("server_shutting_down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("server_shutdown_failed")
		}
	}()

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("storage", cfg.Storage.Backend).Msg("server_starting")
	if err := app.Listen(addr); err != nil {
		log.Error().Err(err).Msg("server_stopped")
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		log.Error().Err(err).Msg("tracing_shutdown_failed")
	}
}

func newStorage(ctx context.Context, cfg config.StorageConfig) (storage.Storage, error) {
	switch cfg.Backend {
	case "", "disk":
		return storage.NewDisk(cfg.RootDir)
	case "minio":
		return storage.NewMinIO(ctx, cfg.MinIO)
	default:
		return nil, errors.New("unknown storage backend " + cfg.Backend)
	}
}

func newRenderer(cfg config.RenderConfig, log zerolog.Logger) (*render.Renderer, error) {
	branding, err := config.LoadBranding(cfg.BrandingFile)
	if err != nil {
		return nil, err
	}
	fonts, err := render.LoadFonts(map[render.FontStyle]string{
		render.Regular: cfg.FontRegular,
		render.Bold:    cfg.FontBold,
		render.Italic:  cfg.FontItalic,
	})
	if err != nil {
		return nil, err
	}
	return render.New(render.Options{
		Fonts:    fonts,
		Assets:   render.NewDirAssets(cfg.AssetsDir, render.WithCache()),
		Photos:   render.NewDirAssets(cfg.UploadsDir, render.WithStripPrefix("uploads")),
		Branding: branding,
		Logger:   log,
	})
}

// newPoller uses Redis claims when an address is configured, so several replicas
// announce each event once. The returned func closes the Redis client.
func newPoller(cfg config.NotifierConfig, events repository.EventRepository, reg prometheus.Registerer, log zerolog.Logger) (*notifier.Poller, func(), error) {
	metrics, err := notifier.NewMetrics(reg)
	if err != nil {
		return nil, nil, err
	}

	var (
		claims notifier.Claimer = notifier.NewMemoryClaimer()
		closer                  = func() {}
	)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		claims = notifier.NewRedisClaimer(rdb)
		closer = func() { _ = rdb.Close() }
	}

	sender := notifier.LogSender{Log: log.With().Str("component", "notifier").Logger()}
	return notifier.NewPoller(events, claims, sender, cfg.Window, metrics, log), closer, nil
}
