package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"esg-assistant/internal/api"
	"esg-assistant/internal/chatapi"
	"esg-assistant/internal/config"
	"esg-assistant/internal/database"
	"esg-assistant/internal/repository"
	"esg-assistant/internal/service"
	"esg-assistant/pkg/logger"
)

const (
	shutdownTimeout   = 15 * time.Second
	serviceWait       = 30 * time.Second
	serviceRetryDelay = 3 * time.Second
)

// App is the wired application: store, services and HTTP server.
type App struct {
	Config   *config.Config
	Log      *zap.Logger
	Server   *http.Server
	Store    repository.Store
	Client   chatapi.Client
	Sessions *service.SessionService
	Prefs    *service.PreferenceService

	closers []func() error
}

// Run loads the configuration, serves until SIGINT or SIGTERM and returns the
// process exit code.
func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// The logger depends on the configuration; fall back to a development logger.
		zap.NewExample().Error("failed to load configuration", zap.Error(err))
		return 1
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		zap.NewExample().Error("failed to build logger", zap.Error(err))
		return 1
	}
	defer func() { _ = log.Sync() }()

	if src := cfg.Source(); src != "" {
		log.Info("loaded configuration from file", zap.String("file", src))
	} else {
		log.Info("configuration file not found, using environment variables and defaults")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize application", zap.Error(err))
		return 1
	}
	defer app.Close()

	waitForAnalysisService(ctx, app.Client, log, serviceWait, serviceRetryDelay)

	if err := app.Serve(ctx); err != nil {
		log.Error("server failed", zap.Error(err))
		return 1
	}
	return 0
}

// NewApp opens the configured store, restores the session and preferences and
// builds the HTTP server. It does not start listening.
func NewApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	app := &App{Config: cfg, Log: log}

	store, err := app.openStore(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Store = store

	app.Client = chatapi.NewClient(cfg.ChatAPIURL, chatapi.Paths{
		Chat:      cfg.ChatPath,
		Upload:    cfg.UploadPath,
		Companies: cfg.CompaniesPath,
		Health:    cfg.HealthPath,
	}, &http.Client{})

	app.Sessions = service.NewSessionService(store, log.Named("session"), cfg.PlaceholderTitle)
	app.Sessions.Initialize(ctx)
	app.Prefs = service.NewPreferenceService(store, log.Named("preferences"))
	theme := app.Prefs.Initialize(ctx)
	log.Info("loaded preferences", zap.String("theme", theme))

	exchange := service.NewExchangeService(app.Sessions, app.Client, cfg.ChatTimeout, log.Named("exchange"))
	documents := service.NewDocumentService(app.Sessions, app.Client, cfg.UploadTimeout, log.Named("documents"))

	chatHandler := api.NewChatHandler(app.Sessions, exchange, documents, log.Named("api"))
	prefHandler := api.NewPreferenceHandler(app.Prefs, app.Client, log.Named("api"))
	router := api.NewRouter(chatHandler, prefHandler, log.Named("http"), api.RouterOptions{
		CORSOrigins:        cfg.CORSOrigins,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	})

	app.Server = &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // exchanges are bounded by CHAT_TIMEOUT and UPLOAD_TIMEOUT
		IdleTimeout:       120 * time.Second,
	}
	return app, nil
}

func (a *App) openStore(ctx context.Context) (repository.Store, error) {
	switch a.Config.StoreBackend {
	case config.StoreRedis:
		rdb := redis.NewClient(&redis.Options{Addr: a.Config.RedisAddr})
		a.closers = append(a.closers, rdb.Close)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", a.Config.RedisAddr, err)
		}
		a.Log.Info("connected to redis", zap.String("addr", a.Config.RedisAddr))
		return repository.NewRedisStore(rdb, a.Config.KeyPrefix, a.Log.Named("store")), nil
	default:
		db, err := database.InitDB(a.Config.DatabasePath, a.Log)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		a.Log.Info("connected to SQLite database", zap.String("path", a.Config.DatabasePath))
		return repository.NewSQLiteStore(db, a.Config.KeyPrefix, a.Log.Named("store")), nil
	}
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully.
func (a *App) Serve(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("starting server", zap.String("addr", a.Server.Addr))
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.Log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return a.Server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Close releases the store connections.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.Log.Error("failed to close resource", zap.Error(err))
		}
	}
	a.closers = nil
}

// waitForAnalysisService polls the analysis service until it answers or maxWait
// elapses. The application starts either way; exchanges fail individually while
// the service is down.
func waitForAnalysisService(ctx context.Context, client chatapi.Client, log *zap.Logger, maxWait, retryDelay time.Duration) bool {
	log.Info("waiting for the analysis service to be ready")
	deadline := time.Now().Add(maxWait)
	for {
		probeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := client.Health(probeCtx)
		cancel()
		if err == nil {
			log.Info("analysis service is ready")
			return true
		}
		if time.Now().Add(retryDelay).After(deadline) {
			log.Warn("analysis service not reachable, starting anyway", zap.Error(err))
			return false
		}
		log.Debug("analysis service not ready yet, retrying", zap.Duration("delay", retryDelay), zap.Error(err))

		select {
		case <-ctx.Done():
			return false
		case <-time.After(retryDelay):
		}
	}
}
