// Copyright (C) 2022, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.
package speedtest

// Result holds a single speedtest run with bandwidths already converted to
// bits per second. A zero Result with Success false is a failed run.
type Result struct {
	ServerID    int64
	JitterMs    float64
	PingMs      float64
	DownloadBps float64
	UploadBps   float64
	Success     bool
}

// JSON envelope of the Ookla CLI output. The CLI emits a stream of objects:
// log lines, an error object on socket trouble, and one result object.
type outputEnvelope struct {
	Type      string          `json:"type"`
	Timestamp string          `json:"timestamp"`
	Message   string          `json:"message"`
	Error     string          `json:"error"`
	Ping      *pingStats      `json:"ping"`
	Download  *bandwidthStats `json:"download"`
	Upload    *bandwidthStats `json:"upload"`
	Server    *serverInfo     `json:"server"`
}

type pingStats struct {
	Jitter  float64 `json:"jitter"`
	Latency float64 `json:"latency"`
}

type bandwidthStats struct {
	// bytes per second on the wire
	Bandwidth float64 `json:"bandwidth"`
}

type serverInfo struct {
	ID int64 `json:"id"`
}
