// Copyright (C) 2022, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"time"

	"github.com/speedtest-community/speedtest-exporter/pkg/binutils"
	"github.com/speedtest-community/speedtest-exporter/pkg/constants"
	"github.com/speedtest-community/speedtest-exporter/pkg/exporter"
	"github.com/speedtest-community/speedtest-exporter/pkg/speedtest"

	"github.com/spf13/cobra"
)

var (
	serveHost           string
	servePort           int
	serveBinPath        string
	serveInstallVersion string
	serveServerID       string
	serveCacheTimeout   int
	serveRunTimeout     int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve speedtest results as Prometheus metrics",
	Long: `Runs the exporter http listener. A scrape of /metrics triggers a
speedtest when the cached result expired; until then the previous gauges are
served. Configuration comes from flags or SPEEDTEST_* environment variables
(flags win).`,
	RunE: runServe,
	Args: cobra.ExactArgs(0),
}

func runServe(cmd *cobra.Command, args []string) error {
	// flags explicitly set win over env/config values
	host := serveHost
	if !cmd.Flags().Changed("host") {
		host = app.Conf.GetConfigStringValue(constants.ConfigHostKey)
	}
	port := servePort
	if !cmd.Flags().Changed("port") {
		port = app.Conf.GetConfigIntValue(constants.ConfigPortKey)
	}
	serverID := serveServerID
	if !cmd.Flags().Changed("server-id") {
		serverID = app.Conf.GetConfigStringValue(constants.ConfigServerIDKey)
	}
	cacheSecs := serveCacheTimeout
	if !cmd.Flags().Changed("cache-timeout") {
		cacheSecs = app.Conf.GetConfigIntValue(constants.ConfigCacheTimeoutKey)
	}
	runSecs := serveRunTimeout
	if !cmd.Flags().Changed("run-timeout") {
		runSecs = app.Conf.GetConfigIntValue(constants.ConfigRunTimeoutKey)
	}

	binPath := serveBinPath
	if serveInstallVersion != "" {
		var err error
		binPath, err = binutils.SetupSpeedtest(app, serveInstallVersion)
		if err != nil {
			return err
		}
	}

	runner := speedtest.NewRunner(app.Log, binPath, serverID)
	exp := exporter.New(
		app.Log,
		runner,
		time.Duration(cacheSecs)*time.Second,
		time.Duration(runSecs)*time.Second,
	)
	return exp.Serve(host, port)
}
