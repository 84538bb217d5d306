package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"Coilcalc/internal"
	"Coilcalc/internal/calc/batch"
	"Coilcalc/internal/calc/battery"
	"Coilcalc/internal/calc/coil"
	"Coilcalc/internal/calc/importer"
	"Coilcalc/internal/calc/recommend"
	"Coilcalc/internal/calc/report"
	"Coilcalc/internal/calc/wire"
	"Coilcalc/internal/limit"
	"Coilcalc/internal/metrics"
	"Coilcalc/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(origin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func HandleList(router *mux.Router, cfg *internal.Config, logger *slog.Logger) {
	router.Use(metrics.Middleware)
	router.NotFoundHandler = metrics.Middleware(http.NotFoundHandler())
	router.MethodNotAllowedHandler = metrics.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}))
	router.Use(middleware.NewRequestLoggingMiddleware(logger).Handler)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	}).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	limiter := limit.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst, logger)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	wireH := &wire.Handler{}
	api.HandleFunc("/materials", wireH.ListMaterials).Methods("GET")
	api.HandleFunc("/materials/{id}", wireH.GetMaterial).Methods("GET")
	api.HandleFunc("/gauges", wireH.ListGauges).Methods("GET")
	api.HandleFunc("/gauges/nearest", wireH.Nearest).Methods("GET")
	api.HandleFunc("/gauges/{awg:[0-9]+}", wireH.GetGauge).Methods("GET")

	coilH := &coil.Handler{}
	batteryH := &battery.Handler{}
	recommendH := &recommend.Handler{}
	batchH := &batch.Handler{Logger: logger}
	importH := &importer.Handler{Logger: logger}
	reportH := &report.Handler{}

	api.HandleFunc("/coil-types", coilH.CoilTypes).Methods("GET")
	api.HandleFunc("/styles", coilH.Styles).Methods("GET")

	api.HandleFunc("/tools/coil/calc", coilH.Calc).Methods("POST")
	api.HandleFunc("/tools/battery/check", batteryH.Check).Methods("POST")
	api.HandleFunc("/tools/battery/life", batteryH.Life).Methods("POST")
	api.HandleFunc("/tools/recommend/build", recommendH.Build).Methods("POST")
	api.HandleFunc("/tools/batch/calc", batchH.Coils).Methods("POST")
	api.HandleFunc("/tools/import/xlsx", importH.Coils).Methods("POST")
	api.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
}

func main() {
	cfg, err := internal.NewConfig()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	router := mux.NewRouter()
	HandleList(router, cfg, logger)

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: CORS(cfg.CORSOrigin, router),
	}

	logger.Info("starting server", "addr", cfg.Addr(), "env", cfg.Env, "tls", cfg.TLSEnabled())

	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLSEnabled() {
			err = server.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received, closing active connections")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")

	wg.Wait()
}
