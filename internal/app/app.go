package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/wordassist-backend/internal/adapter/postgres"
	entryrepo "github.com/heartmarshall/wordassist-backend/internal/adapter/postgres/entry"
	tagrepo "github.com/heartmarshall/wordassist-backend/internal/adapter/postgres/tag"
	userrepo "github.com/heartmarshall/wordassist-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/wordassist-backend/internal/adapter/redis/draft"
	"github.com/heartmarshall/wordassist-backend/internal/auth"
	"github.com/heartmarshall/wordassist-backend/internal/config"
	authsvc "github.com/heartmarshall/wordassist-backend/internal/service/auth"
	"github.com/heartmarshall/wordassist-backend/internal/service/registration"
	"github.com/heartmarshall/wordassist-backend/internal/service/search"
	tagsvc "github.com/heartmarshall/wordassist-backend/internal/service/tag"
	usersvc "github.com/heartmarshall/wordassist-backend/internal/service/user"
	"github.com/heartmarshall/wordassist-backend/internal/transport/middleware"
	"github.com/heartmarshall/wordassist-backend/internal/transport/rest"
)

const metricsPath = "/metrics"

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and Redis, wires the services and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	gen := newGenerator(cfg.Generator)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("generator", gen.Name()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	rdb, err := draft.NewClient(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close() //nolint:errcheck

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler, err := buildHandler(cfg, logger, infra{pool: pool, redis: rdb, gen: gen, limiter: limiter})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

type infra struct {
	pool    *pgxpool.Pool
	redis   *redis.Client
	gen     contentGenerator
	limiter *middleware.RateLimiter
}

// buildHandler wires repositories, services and the router on top of
// already connected infrastructure.
func buildHandler(cfg *config.Config, logger *slog.Logger, in infra) (http.Handler, error) {
	// Repositories
	entries := entryrepo.New(in.pool)
	tags := tagrepo.New(in.pool)
	users := userrepo.New(in.pool)
	drafts := draft.New(in.redis, cfg.Draft.TTL)
	tx := postgres.NewTxManager(in.pool)
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Services
	authService, err := authsvc.NewService(logger, users, jwt, cfg.Auth, cfg.Gate)
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}
	registrationService := registration.NewService(logger, entries, tags, drafts, in.gen, tx)
	searchService := search.NewService(logger, entries, tags)
	tagService := tagsvc.NewService(logger, tags)
	userService := usersvc.NewService(logger, users, cfg.Auth.BcryptCost)

	// Transport
	landing := cfg.Gate.LandingPath
	return rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.Check{Name: "database", Ping: in.pool.Ping},
			rest.Check{Name: "redis", Ping: func(ctx context.Context) error { return in.redis.Ping(ctx).Err() }},
		),
		Auth:      rest.NewAuthHandler(authService, logger, landing),
		Landing:   rest.NewLandingHandler(searchService, logger, landing),
		Entries:   rest.NewEntryHandler(registrationService, logger, landing),
		Search:    rest.NewSearchHandler(searchService, logger, landing),
		TagAdmin:  rest.NewTagAdminHandler(tagService, logger, landing),
		UserAdmin: rest.NewUserAdminHandler(userService, logger, landing),
	}, rest.RouterDeps{
		Gate:        cfg.Gate,
		RateLimit:   cfg.RateLimit,
		Limiter:     in.limiter,
		Recovery:    middleware.Recovery(logger),
		CORS:        middleware.CORS(cfg.CORS),
		Auth:        middleware.Auth(authService),
		Logger:      middleware.Logger(logger),
		MetricsPath: metricsPath,
	}), nil
}
