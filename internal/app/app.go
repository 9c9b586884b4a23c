package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/boards-backend/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/boards-backend/internal/adapter/postgres/activity"
	boardrepo "github.com/heartmarshall/boards-backend/internal/adapter/postgres/board"
	cardrepo "github.com/heartmarshall/boards-backend/internal/adapter/postgres/card"
	checklistrepo "github.com/heartmarshall/boards-backend/internal/adapter/postgres/checklist"
	commentrepo "github.com/heartmarshall/boards-backend/internal/adapter/postgres/comment"
	labelrepo "github.com/heartmarshall/boards-backend/internal/adapter/postgres/label"
	listrepo "github.com/heartmarshall/boards-backend/internal/adapter/postgres/list"
	"github.com/heartmarshall/boards-backend/internal/auth"
	"github.com/heartmarshall/boards-backend/internal/config"
	"github.com/heartmarshall/boards-backend/internal/license"
	"github.com/heartmarshall/boards-backend/internal/service/activity"
	"github.com/heartmarshall/boards-backend/internal/service/board"
	"github.com/heartmarshall/boards-backend/internal/service/card"
	"github.com/heartmarshall/boards-backend/internal/service/checklist"
	"github.com/heartmarshall/boards-backend/internal/service/comment"
	"github.com/heartmarshall/boards-backend/internal/service/label"
	"github.com/heartmarshall/boards-backend/internal/service/list"
	"github.com/heartmarshall/boards-backend/internal/transport/middleware"
	"github.com/heartmarshall/boards-backend/internal/transport/rest"
	"github.com/heartmarshall/boards-backend/internal/transport/rest/dataloader"
)

// Run connects to its dependencies, serves HTTP until ctx is cancelled and
// then shuts the server down within cfg.Server.ShutdownTimeout.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("feature_source", cfg.Features.Source),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	features, err := newFeatureSource(ctx, cfg, pool)
	if err != nil {
		return err
	}
	defer features.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupPeriod)
	defer limiter.Stop()

	handler := newHandler(cfg, logger, pool, features, reg, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// newHandler assembles repositories, services and the HTTP stack.
func newHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	features *featureSource,
	reg *prometheus.Registry,
	limiter *middleware.RateLimiter,
) http.Handler {
	txm := postgres.NewTxManager(pool)

	boards := boardrepo.New(pool)
	lists := listrepo.New(pool)
	cards := cardrepo.New(pool)
	labels := labelrepo.New(pool)
	comments := commentrepo.New(pool)
	checklists := checklistrepo.New(pool)
	activities := activityrepo.New(pool)

	step := cfg.Boards.PositionStep

	boardSvc := board.NewService(logger, boards, lists, cards, labels, activities, txm, board.Config{
		PositionStep: step,
		SeedDefaults: cfg.Boards.SeedDefaults,
	})
	listSvc := list.NewService(logger, boards, lists, activities, txm, step)
	cardSvc := card.NewService(logger, boards, lists, cards, labels, comments, checklists, activities, txm, step)
	commentSvc := comment.NewService(logger, boards, cards, comments, activities, txm)
	checklistSvc := checklist.NewService(logger, boards, cards, checklists, activities, txm, step)
	labelSvc := label.NewService(logger, boards, labels, activities, txm)
	activitySvc := activity.NewService(logger, boards, activities,
		activity.WithLimits(cfg.Boards.ActivityPageSize, cfg.Boards.ActivityMaxPageSize))

	lookup := license.NewLookup(logger, features.source, cfg.Features.CacheTTL)

	checks := []rest.HealthCheck{{Name: "database", Pinger: pool}}
	if features.pinger != nil {
		checks = append(checks, rest.HealthCheck{Name: "redis", Pinger: features.pinger})
	}

	mux := rest.NewRouter(rest.Handlers{
		Board:     rest.NewBoardHandler(boardSvc, logger),
		List:      rest.NewListHandler(listSvc, logger),
		Card:      rest.NewCardHandler(cardSvc, logger),
		Comment:   rest.NewCommentHandler(commentSvc, logger),
		Checklist: rest.NewChecklistHandler(checklistSvc, logger),
		Label:     rest.NewLabelHandler(labelSvc, logger),
		Activity:  rest.NewActivityHandler(activitySvc, logger),
		Health:    rest.NewHealthHandler(BuildVersion(), checks...),
	}, rest.RouterOptions{
		Gate: middleware.RequireFeature(cfg.Features.Required, lookup, middleware.DenyOptions{
			RedirectURL: cfg.Features.DenyURL,
			Logger:      logger,
		}),
		Loaders:        dataloader.Middleware(&dataloader.Repos{Card: cards, Checklist: checklists}),
		Metrics:        middleware.NewMetrics(reg),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	})

	var rateLimit middleware.Middleware
	if cfg.RateLimit.Enabled {
		rateLimit = limiter.Limit(cfg.RateLimit.PerMinute)
	}

	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimit,
		maxBytes(cfg.Server.MaxBodyBytes),
		middleware.Auth(tokens, logger),
	)(mux)
}

func maxBytes(limit int64) middleware.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
