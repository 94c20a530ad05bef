// Copyright (C) 2022, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.
package exporter

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/speedtest-community/speedtest-exporter/pkg/constants"
	"github.com/speedtest-community/speedtest-exporter/pkg/speedtest"
	"github.com/speedtest-community/speedtest-exporter/pkg/utils"
	"github.com/speedtest-community/speedtest-exporter/pkg/ux"
)

// Exporter serves cached speedtest results as prometheus gauges. A scrape
// only triggers a new run once the previous result is older than cacheTTL,
// so aggressive scrape intervals don't saturate the link under test.
type Exporter struct {
	log        *zap.Logger
	runner     speedtest.Runner
	metrics    *Metrics
	registry   *prometheus.Registry
	cacheTTL   time.Duration
	runTimeout time.Duration

	mu         sync.Mutex
	validUntil time.Time
	clock      func() time.Time
}

func New(log *zap.Logger, runner speedtest.Runner, cacheTTL, runTimeout time.Duration) *Exporter {
	registry := prometheus.NewRegistry()
	return &Exporter{
		log:        log,
		runner:     runner,
		metrics:    NewMetrics(registry),
		registry:   registry,
		cacheTTL:   cacheTTL,
		runTimeout: runTimeout,
		clock:      time.Now,
	}
}

// refresh runs a speedtest if the cached result expired. Concurrent scrapes
// serialize here; the losers see the fresh deadline and return immediately.
func (e *Exporter) refresh(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.clock().Before(e.validUntil) {
		return
	}

	runCtx, cancel := context.WithTimeout(ctx, e.runTimeout)
	defer cancel()

	result, err := e.runner.Run(runCtx)
	if err != nil {
		e.log.Error("speedtest runner failed", zap.Error(err))
		result = speedtest.Result{}
	}
	e.metrics.Set(result)
	e.validUntil = e.clock().Add(e.cacheTTL)

	e.log.Info("speedtest run recorded",
		zap.Int64("server", result.ServerID),
		zap.Float64("jitter-ms", result.JitterMs),
		zap.Float64("ping-ms", result.PingMs),
		zap.Float64("download-mbps", utils.BitsToMegabits(result.DownloadBps)),
		zap.Float64("upload-mbps", utils.BitsToMegabits(result.UploadBps)),
		zap.Bool("success", result.Success),
	)
}

// Handler returns the exporter's http routes: /metrics and an index page.
func (e *Exporter) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, "Speedtest exporter")
	})

	metricsHandler := promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		e.refresh(r.Context())
		metricsHandler.ServeHTTP(w, r)
	})
	return mux
}

// Serve blocks on the exporter's http listener.
func (e *Exporter) Serve(host string, port int) error {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	srv := &http.Server{
		Addr:              addr,
		Handler:           e.Handler(),
		ReadHeaderTimeout: constants.HTTPReadHeaderTimeout,
	}
	ux.Logger.PrintToUser("Starting exporter on http://%s", addr)
	return srv.ListenAndServe()
}
