package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	"coffeeapi/docs"
	"coffeeapi/internal/config"
	"coffeeapi/internal/database"
	"coffeeapi/internal/database/migration"
	handlers "coffeeapi/internal/http/handler"
	"coffeeapi/internal/http/middleware"
	"coffeeapi/internal/model"
	tracing "coffeeapi/internal/otel"
	"coffeeapi/internal/repository"
	"coffeeapi/internal/repository/memory"
	"coffeeapi/internal/repository/postgres"
	"coffeeapi/internal/repository/sqlite"
	"coffeeapi/internal/seed"
	"coffeeapi/internal/service"
	"coffeeapi/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// store is the selected catalog backend. db is nil for the memory driver.
// fresh is set when the backing schema did not exist before this boot.
type store struct {
	db    *sql.DB
	repo  repository.CoffeeRepository
	fresh bool
}

func (s store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// openStore connects the configured driver and brings its schema up to date.
func openStore(ctx context.Context, c config.DatabaseConfig, loc *time.Location, host string) (store, error) {
	switch c.Driver {
	case config.DriverMemory:
		repo, err := memory.NewCoffeeMemDB()
		if err != nil {
			return store{}, fmt.Errorf("memdb: %w", err)
		}
		return store{repo: repo, fresh: true}, nil

	case config.DriverPostgres:
		db, err := database.NewPostgres(c)
		if err != nil {
			return store{}, fmt.Errorf("failed to connect to database: %w", err)
		}
		created, err := migration.EnsureMigrated(ctx, db, migration.Postgres, loc, host)
		if err != nil {
			db.Close()
			return store{}, err
		}
		return store{db: db, repo: postgres.NewCoffeePostgres(db), fresh: created}, nil

	case config.DriverSQLite:
		db, err := database.NewSQLite(c)
		if err != nil {
			return store{}, fmt.Errorf("failed to open sqlite: %w", err)
		}
		created, err := migration.EnsureMigrated(ctx, db, migration.SQLite, loc, c.SQLitePath)
		if err != nil {
			db.Close()
			return store{}, err
		}
		return store{db: db, repo: sqlite.NewCoffeeSQLite(db), fresh: created}, nil

	default:
		return store{}, fmt.Errorf("unsupported DB_DRIVER %q", c.Driver)
	}
}

// seedStore loads the initial catalog on the first boot of st.
func seedStore(ctx context.Context, st store, loc *time.Location) error {
	if !st.fresh {
		logJSON(loc, "info", "seed_skip", map[string]any{"component": "seed", "reason": "existing schema"})
		return nil
	}
	return seed.Run(ctx, st.repo, loc)
}

// newApp builds the Fiber app with middleware, API routes, metrics and Swagger UI.
func newApp(st store, coffeeSvc service.CoffeeService, snapSvc service.SnapshotService, greeting model.Greeting, loc *time.Location, reg *prometheus.Registry) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.LoggerWithWriter(os.Stdout, loc))
	app.Use(metrics.Handler())

	handlers.RegisterRoutes(app, st.db, coffeeSvc, snapSvc, greeting)

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

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

	return app, nil
}

func run(ctx context.Context, opts options, flags *pflag.FlagSet) error {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	if opts.port != "" {
		cfg.Port = opts.port
	}

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", cfg.TimeZone, err)
	}

	v, err := config.NewViper(opts.configFile, flags)
	if err != nil {
		return err
	}
	greeting, err := config.BindGreeting(v)
	if err != nil {
		return err
	}

	shutdownTracing, err := tracing.Init(ctx, loc)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logJSON(loc, "error", "tracing_shutdown_failed", map[string]any{"error": err.Error()})
		}
	}()

	st, err := openStore(ctx, cfg.Database, loc, cfg.Database.Host)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := seedStore(ctx, st, loc); err != nil {
		return err
	}

	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			return fmt.Errorf("failed to initialize object storage: %w", err)
		}
	}

	coffeeSvc := service.NewCoffeeService(st.repo)
	snapSvc := service.NewSnapshotService(objStore, st.repo, time.Duration(cfg.MinIO.URLExpirySec)*time.Second)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app, err := newApp(st, coffeeSvc, snapSvc, greeting, loc, reg)
	if err != nil {
		return err
	}

	return serve(ctx, app, net.JoinHostPort(cfg.AppHost, cfg.Port), loc)
}

// serve listens until the listener fails or SIGINT/SIGTERM arrives.
func serve(ctx context.Context, app *fiber.App, addr string, loc *time.Location) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logJSON(loc, "info", "server_listening", map[string]any{"addr": addr})
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logJSON(loc, "info", "server_shutting_down", nil)
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(sctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func logJSON(loc *time.Location, level, msg string, fields map[string]any) {
	entry := map[string]any{
		"ts":    time.Now().In(loc).Format(time.RFC3339Nano),
		"level": level,
		"msg":   msg,
	}
	for k, v := range fields {
		entry[k] = v
	}
	if b, err := json.Marshal(entry); err == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
