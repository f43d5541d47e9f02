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
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/taskflow-backend/internal/adapter/postgres"
	changelogrepo "github.com/heartmarshall/taskflow-backend/internal/adapter/postgres/changelog"
	commentrepo "github.com/heartmarshall/taskflow-backend/internal/adapter/postgres/comment"
	noterepo "github.com/heartmarshall/taskflow-backend/internal/adapter/postgres/note"
	revisionrepo "github.com/heartmarshall/taskflow-backend/internal/adapter/postgres/revision"
	todorepo "github.com/heartmarshall/taskflow-backend/internal/adapter/postgres/todo"
	userrepo "github.com/heartmarshall/taskflow-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/taskflow-backend/internal/auth"
	"github.com/heartmarshall/taskflow-backend/internal/config"
	"github.com/heartmarshall/taskflow-backend/internal/service/changelog"
	"github.com/heartmarshall/taskflow-backend/internal/service/comment"
	"github.com/heartmarshall/taskflow-backend/internal/service/note"
	"github.com/heartmarshall/taskflow-backend/internal/service/revision"
	"github.com/heartmarshall/taskflow-backend/internal/service/todo"
	"github.com/heartmarshall/taskflow-backend/internal/transport/middleware"
	"github.com/heartmarshall/taskflow-backend/internal/transport/rest"
)

// Run loads configuration, wires repositories, services and transport, and
// serves HTTP until ctx is cancelled. Shutdown drains in-flight requests for
// at most Server.ShutdownTimeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	handler, stop := newHandler(cfg, pool, logger, clockwork.NewRealClock())
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// newHandler wires repositories, services and transport on top of pool and
// returns the root HTTP handler. stop releases background resources.
func newHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger, clock clockwork.Clock) (handler http.Handler, stop func()) {
	txm := postgres.NewTxManager(pool)

	todos := todorepo.New(pool)
	notes := noterepo.New(pool)
	comments := commentrepo.New(pool)

	recorder := changelog.NewRecorder(changelogrepo.New(pool), clock)
	revisions := revision.NewStore(notes, revisionrepo.New(pool), txm, clock, cfg.Note.MaxRevisions)

	todoSvc := todo.NewService(logger, todos, recorder, txm, clock)
	noteSvc := note.NewService(logger, notes, revisions, txm, clock)
	commentSvc := comment.NewService(logger, comments, todos, txm, clock, cfg.Comment.EditWindow)

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, clock)
	authenticator := auth.NewAuthenticator(tokens, userrepo.New(pool))

	pages := rest.Pagination{
		DefaultPerPage: cfg.Pagination.DefaultPerPage,
		MaxPerPage:     cfg.Pagination.MaxPerPage,
	}
	mux := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(map[string]rest.CheckFunc{"database": pool.Ping}, Version, clock),
		Todos:    rest.NewTodoHandler(todoSvc, pages, logger),
		Notes:    rest.NewNoteHandler(noteSvc, pages, logger),
		Comments: rest.NewCommentHandler(commentSvc, pages, logger),
		Metrics:  promhttp.Handler(),
	})

	// Logger and the rate limiter sit inside Auth so they see the actor;
	// Metrics wraps the mux directly so it sees the matched pattern.
	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authenticator),
		middleware.Logger(logger),
	}
	stop = func() {}
	if cfg.RateLimit.RequestsPerMinute > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.CleanupInterval)
		stop = limiter.Stop
		mws = append(mws, limiter.Limit())
	}
	return middleware.Chain(mws...)(middleware.Metrics(mux)), stop
}
