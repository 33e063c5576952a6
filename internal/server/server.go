package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Houeta/hrms-api/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter assembles the HTTP surface: health probes, prometheus
// exposition and the record-keeping API.
func NewRouter(
	log *slog.Logger,
	mtr *metrics.Metrics,
	service RecordService,
	db DBPinger,
	reg *prometheus.Registry,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), CORS(), RequestLogger(log), RequestMetrics(mtr))

	health := NewHealthChecker(db, log)
	router.GET("/", health.Root)
	router.GET("/healthz", health.Healthz)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	Register(router.Group("/api"), log, service)

	return router
}

// Start runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully.
func Start(ctx context.Context, log *slog.Logger, router *gin.Engine, port string) error {
	readHeaderTO := 5
	shutdownTO := 10

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: time.Duration(readHeaderTO) * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownTO)*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Failed to shut down HTTP server gracefully", "error", err)
		}
	}()

	log.InfoContext(ctx, "HTTP server listening", "addr", srv.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}

	return nil
}
