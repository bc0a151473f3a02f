package server

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"finance-tracker/internal/app"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/middleware"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options carries the collaborators the router needs beyond the App
type Options struct {
	Registerer   prometheus.Registerer
	Gatherer     prometheus.Gatherer
	TokenService services.TokenServiceInterface
	Logger       *slog.Logger
}

// New builds the echo router with middleware and all routes registered
func New(a *app.App, opts Options) *echo.Echo {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewErrorHandler(opts.Registerer).Handle

	cfg := a.Config
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(opts.Logger))
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.CORS(cfg.Server.CORSAllowOrigins))

	var checker handlers.HealthChecker
	if a.UsesDatabase() {
		checker = a
	}
	health := handlers.NewHealthCheckHandler(a.Store, checker)
	e.GET("/healthz", health.Liveness)
	e.GET("/readyz", health.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	e.GET("/docs/openapi.json", handlers.NewDocsHandler().ServeOpenAPI)

	api := e.Group("/api/v1")
	if cfg.RateLimit.PerSecond > 0 {
		api.Use(middleware.NewRateLimiter(cfg.RateLimit).Middleware())
	}
	if cfg.AuthEnabled() && opts.TokenService != nil {
		api.Use(middleware.RequireAuth(opts.TokenService, a.Metrics))
	}

	transactions := handlers.NewTransactionHandler(a.Store)
	api.GET("/transactions", transactions.ListTransactions)
	api.POST("/transactions", transactions.CreateTransaction)
	api.DELETE("/transactions/:id", transactions.DeleteTransaction)

	summary := handlers.NewSummaryHandler(a.Summary)
	api.GET("/summary", summary.GetSummary)
	api.GET("/summary/monthly", summary.GetMonthlySummary)
	api.GET("/summary/categories", summary.GetCategoryBreakdown)
	api.GET("/categories", summary.ListCategories)

	return e
}

// Run serves e until ctx is cancelled, then shuts down within shutdownTimeout
func Run(ctx context.Context, e *echo.Echo, addr string, readTimeout, writeTimeout, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           e,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting HTTP server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down HTTP server", "timeout", shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
