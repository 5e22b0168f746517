package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "boutique/internal/app"
	"boutique/internal/handlers/rest/customer_delete"
	"boutique/internal/handlers/rest/customer_get"
	"boutique/internal/handlers/rest/customer_order_post"
	"boutique/internal/handlers/rest/customer_orders_get"
	"boutique/internal/handlers/rest/customer_post"
	"boutique/internal/handlers/rest/customer_put"
	"boutique/internal/handlers/rest/customers_get"
	"boutique/internal/handlers/rest/design_delete"
	"boutique/internal/handlers/rest/design_get"
	"boutique/internal/handlers/rest/design_post"
	"boutique/internal/handlers/rest/design_put"
	"boutique/internal/handlers/rest/design_stats_get"
	"boutique/internal/handlers/rest/designs_get"
	"boutique/internal/handlers/rest/healthcheck_head"
	"boutique/internal/handlers/rest/order_advance_post"
	"boutique/internal/handlers/rest/order_delete"
	"boutique/internal/handlers/rest/order_get"
	"boutique/internal/handlers/rest/order_put"
	"boutique/internal/handlers/rest/order_status_put"
	"boutique/internal/handlers/rest/orders_get"
	"boutique/internal/handlers/rest/orders_ws_get"
	"boutique/internal/handlers/rest/ping_get"
	"boutique/internal/handlers/rest/report_monthly_get"
	"boutique/internal/handlers/rest/report_status_counts_get"
	"boutique/internal/handlers/rest/report_top_customers_get"
	"boutique/internal/pkg/config"
	"boutique/internal/pkg/dotenv"
	"boutique/internal/pkg/filestorage"
	"boutique/internal/pkg/middlewares/graceful_shutdown"
	"boutique/internal/pkg/middlewares/metrics"
	"boutique/internal/pkg/middlewares/rate_limiter"
	"boutique/internal/pkg/middlewares/timeout"
	"boutique/pkg/logger"
	"boutique/pkg/logger/zap_adapter"
	"boutique/pkg/token_bucket"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	err := dotenv.Load()
	if err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.LogLevel)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting boutique application")

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx намеренно наследуются от context.Background() для graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	businessApp, cleanup, err := application.InitializeApplication(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer cleanup()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// websocket соединения живут вне server.Shutdown, хаб закрывает их сам
	hubDone := make(chan struct{})
	go func() {
		defer close(hubDone)
		businessApp.Hub.Run(ongoingCtx)
	}()

	runLog.With(
		logger.NewField("sinks", businessApp.Publisher.Sinks()),
		logger.NewField("status_policy", cfg.Orders.StatusPolicy),
	).Info("order events configured")

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // при выключенном pprof канал nil и кейс не срабатывает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	<-hubDone
	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	api.Handle("/customers", customers_get.New(log, app.ServiceCustomer)).Methods("GET")
	api.Handle("/customers", customer_post.New(log, app.ServiceCustomer)).Methods("POST")
	api.Handle("/customers/{id}", customer_get.New(log, app.ServiceCustomer)).Methods("GET")
	api.Handle("/customers/{id}", customer_put.New(log, app.ServiceCustomer)).Methods("PUT")
	api.Handle("/customers/{id}", customer_delete.New(log, app.ServiceCustomer)).Methods("DELETE")
	api.Handle("/customers/{id}/orders", customer_orders_get.New(log, app.ServiceCustomer)).Methods("GET")
	api.Handle("/customers/{id}/orders", customer_order_post.New(log, app.ServiceOrder, app.FileStorage)).Methods("POST")

	// ws до /orders/{id}, иначе "ws" попадет в id
	api.Handle("/orders/ws", orders_ws_get.New(log, app.Hub)).Methods("GET")
	api.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods("GET")
	api.Handle("/orders/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	api.Handle("/orders/{id}", order_put.New(log, app.ServiceOrder)).Methods("PUT")
	api.Handle("/orders/{id}", order_delete.New(log, app.ServiceOrder)).Methods("DELETE")
	api.Handle("/orders/{id}/status", order_status_put.New(log, app.ServiceOrder)).Methods("PUT")
	api.Handle("/orders/{id}/advance", order_advance_post.New(log, app.ServiceOrder)).Methods("POST")

	api.Handle("/reports/monthly", report_monthly_get.New(log, app.ServiceReport)).Methods("GET")
	api.Handle("/reports/status-counts", report_status_counts_get.New(log, app.ServiceReport)).Methods("GET")
	api.Handle("/reports/top-customers", report_top_customers_get.New(log, app.ServiceReport)).Methods("GET")

	api.Handle("/designs/stats", design_stats_get.New(log, app.ServiceDesign)).Methods("GET")
	api.Handle("/designs", designs_get.New(log, app.ServiceDesign)).Methods("GET")
	api.Handle("/designs", design_post.New(log, app.ServiceDesign)).Methods("POST")
	api.Handle("/designs/{id}", design_get.New(log, app.ServiceDesign)).Methods("GET")
	api.Handle("/designs/{id}", design_put.New(log, app.ServiceDesign)).Methods("PUT")
	api.Handle("/designs/{id}", design_delete.New(log, app.ServiceDesign)).Methods("DELETE")

	router.PathPrefix(filestorage.URLPrefix).Handler(app.FileStorage.Handler()).Methods("GET", "HEAD")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
