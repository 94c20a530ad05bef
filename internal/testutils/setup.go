// Copyright (C) 2022, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"io"
	"testing"

	"github.com/speedtest-community/speedtest-exporter/pkg/application"
	"github.com/speedtest-community/speedtest-exporter/pkg/config"
	"github.com/speedtest-community/speedtest-exporter/pkg/ux"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func SetupTest(t *testing.T) *require.Assertions {
	// use io.Discard to not print anything
	ux.NewUserLog(zap.NewNop(), io.Discard)
	return require.New(t)
}

func SetupTestInTempDir(t *testing.T) *application.Exporter {
	testDir := t.TempDir()

	app := application.New()
	app.Setup(testDir, zap.NewNop(), config.New(), application.NewDownloader())
	return app
}
