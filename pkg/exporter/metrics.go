// Copyright (C) 2022, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.
package exporter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/speedtest-community/speedtest-exporter/pkg/speedtest"
)

// Metrics are the gauges published on /metrics. Names are fixed: dashboards
// and alerts exist against them.
type Metrics struct {
	serverID prometheus.Gauge
	jitter   prometheus.Gauge
	ping     prometheus.Gauge
	download prometheus.Gauge
	upload   prometheus.Gauge
	status   prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		serverID: factory.NewGauge(prometheus.GaugeOpts{
			Name: "speedtest_server_id",
			Help: "Speedtest server ID used to test",
		}),
		jitter: factory.NewGauge(prometheus.GaugeOpts{
			Name: "speedtest_jitter_latency_milliseconds",
			Help: "Speedtest current Jitter in ms",
		}),
		ping: factory.NewGauge(prometheus.GaugeOpts{
			Name: "speedtest_ping_latency_milliseconds",
			Help: "Speedtest current Ping in ms",
		}),
		download: factory.NewGauge(prometheus.GaugeOpts{
			Name: "speedtest_download_bits_per_second",
			Help: "Speedtest current Download Speed in bit/s",
		}),
		upload: factory.NewGauge(prometheus.GaugeOpts{
			Name: "speedtest_upload_bits_per_second",
			Help: "Speedtest current Upload speed in bits/s",
		}),
		status: factory.NewGauge(prometheus.GaugeOpts{
			Name: "speedtest_status",
			Help: "Speedtest status for whether the scrape worked",
		}),
	}
}

// Set publishes a run. A failed run zeroes every gauge, status included.
func (m *Metrics) Set(r speedtest.Result) {
	m.serverID.Set(float64(r.ServerID))
	m.jitter.Set(r.JitterMs)
	m.ping.Set(r.PingMs)
	m.download.Set(r.DownloadBps)
	m.upload.Set(r.UploadBps)
	if r.Success {
		m.status.Set(1)
	} else {
		m.status.Set(0)
	}
}
