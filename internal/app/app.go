package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/compasshq/compass/internal/account"
	"github.com/compasshq/compass/internal/catalog"
	"github.com/compasshq/compass/internal/config"
	"github.com/compasshq/compass/internal/graph"
	"github.com/compasshq/compass/internal/httpserver"
	"github.com/compasshq/compass/internal/httpserver/deps"
	"github.com/compasshq/compass/internal/logger"
	"github.com/compasshq/compass/internal/metrics"
	redisconn "github.com/compasshq/compass/internal/redis"
	"github.com/compasshq/compass/internal/session"
	"github.com/compasshq/compass/internal/sources/navfile"
	"github.com/compasshq/compass/internal/version"
)

type App struct {
	cfg         config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
}

// New assembles the service: catalog, sessions, account provider, schema,
// HTTP server. Configuration problems abort here, before anything listens.
func New(cfg config.Config) (*App, error) {
	log := logger.New(cfg.Logging.Level, cfg.Logging.Pretty)

	log.Info("loading navigation catalog", logger.String("file", cfg.Catalog.File))
	raw, err := navfile.NewLoader(cfg.Catalog.File).Load()
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Load(navfile.NewMapper().Map(raw))
	if err != nil {
		return nil, err
	}
	log.Info("navigation catalog loaded",
		logger.String("datacenter", cat.CurrentDatacenter().Name),
		logger.Int("regions", len(cat.Regions())),
		logger.Int("categories", len(cat.Categories())))

	var (
		sessions    session.Store
		redisClient *goredis.Client
	)
	if cfg.Redis.Addr != "" {
		redisClient, err = redisconn.New(redisconn.ConnectOptions{
			Addr:           cfg.Redis.Addr,
			User:           cfg.Redis.User,
			Password:       cfg.Redis.Password,
			DB:             cfg.Redis.DB,
			DialTimeout:    cfg.Redis.DialTimeout,
			ReadTimeout:    cfg.Redis.ReadTimeout,
			WriteTimeout:   cfg.Redis.WriteTimeout,
			PoolSize:       cfg.Redis.PoolSize,
			ConnectTimeout: cfg.Redis.ConnectTimeout,
			RetryInterval:  cfg.Redis.RetryInterval,
			MaxWait:        cfg.Redis.MaxWait,
			PingTimeout:    cfg.Redis.PingTimeout,
		}, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect session store: %w", err)
		}
		sessions = session.NewRedisStore(redisClient)
	} else {
		log.Warn("redis not configured, using in-memory dev sessions")
		sessions = session.NewMemoryStore(cfg.Auth.DevSessions)
	}

	fetcher := account.NewHTTPFetcher(cfg.Account.APIURL, cfg.Account.Timeout, log)
	resolvers := &graph.Resolvers{
		Catalog:  cat,
		Accounts: account.NewProvider(fetcher, log),
		Logger:   log,
	}
	schema, err := graph.NewSchema(resolvers)
	if err != nil {
		return nil, fmt.Errorf("failed to build schema: %w", err)
	}

	mets := metrics.New()

	d := deps.Deps{
		Logger:          log,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		Schema:          schema,
		Catalog:         cat,
		Sessions:        sessions,
		RedisClient:     redisClient,
		Metrics:         mets,
		LoginURL:        cfg.Auth.LoginURL,
		CookieName:      cfg.Auth.CookieName,
		TrustProxy:      cfg.Server.TrustProxy,
		RateLimitBurst:  cfg.Server.RateLimitBurst,
		RateLimitPerMin: cfg.Server.RateLimitPerMin,
		MetricsEnabled:  cfg.Metrics.Enabled,
	}

	return &App{
		cfg:         cfg,
		logger:      log,
		server:      httpserver.New(cfg, log, d),
		redisClient: redisClient,
	}, nil
}

// Run starts the server and blocks until a signal or a server error.
func (a *App) Run() error {
	a.logger.Infof("starting compass %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		}
	}

	a.logger.Info("compass stopped cleanly")
	return nil
}
