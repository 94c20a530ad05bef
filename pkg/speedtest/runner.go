// Copyright (C) 2022, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.
package speedtest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os/exec"

	"github.com/speedtest-community/speedtest-exporter/pkg/utils"

	"go.uber.org/zap"
)

const (
	typeLog    = "log"
	typeResult = "result"
)

type Runner interface {
	Run(ctx context.Context) (Result, error)
}

type cliRunner struct {
	log      *zap.Logger
	binPath  string
	serverID string
}

var _ Runner = (*cliRunner)(nil)

// NewRunner returns a Runner backed by the Ookla CLI at binPath. serverID
// pins the test to a specific upstream server; empty lets the CLI choose.
func NewRunner(log *zap.Logger, binPath string, serverID string) Runner {
	return &cliRunner{
		log:      log,
		binPath:  binPath,
		serverID: serverID,
	}
}

// Run executes one speedtest. A test that fails upstream (socket errors,
// CLI exit code, malformed output) is not an error: it yields a zero Result
// so the exporter can publish status 0. The returned error is reserved for
// the runner itself being unusable (binary missing, context canceled).
func (r *cliRunner) Run(ctx context.Context) (Result, error) {
	args := []string{
		"--format=json",
		"--progress=no",
		"--accept-license",
		"--accept-gdpr",
	}
	if r.serverID != "" {
		args = append(args, "--server-id="+r.serverID)
	}

	cmd := exec.CommandContext(ctx, r.binPath, args...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Result{}, err
		}
		// the CLI reports some failures as JSON on stdout with a nonzero
		// exit code; those still carry a usable error object
		if !json.Valid(bytes.TrimSpace(out)) {
			r.log.Error("speedtest CLI error not in JSON format", zap.Error(err))
			return Result{}, nil
		}
	}
	return r.parse(out), nil
}

func (r *cliRunner) parse(out []byte) Result {
	dec := json.NewDecoder(bytes.NewReader(out))
	for {
		var env outputEnvelope
		if err := dec.Decode(&env); err == io.EOF {
			break
		} else if err != nil {
			r.log.Error("speedtest output is not valid JSON", zap.Error(err))
			return Result{}
		}

		if env.Error != "" {
			r.log.Error("socket error while speedtest", zap.String("error", env.Error))
			return Result{}
		}

		switch env.Type {
		case typeLog:
			r.log.Info("speedtest: "+env.Message, zap.String("timestamp", env.Timestamp))
		case typeResult:
			if env.Server == nil || env.Ping == nil || env.Download == nil || env.Upload == nil {
				r.log.Error("speedtest result is missing fields")
				return Result{}
			}
			return Result{
				ServerID:    env.Server.ID,
				JitterMs:    env.Ping.Jitter,
				PingMs:      env.Ping.Latency,
				DownloadBps: utils.BytesPerSecToBits(env.Download.Bandwidth),
				UploadBps:   utils.BytesPerSecToBits(env.Upload.Bandwidth),
				Success:     true,
			}
		}
	}
	r.log.Error("successful speedtest had no json result")
	return Result{}
}
