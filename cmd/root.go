// Copyright (C) 2022, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/speedtest-community/speedtest-exporter/pkg/application"
	"github.com/speedtest-community/speedtest-exporter/pkg/config"
	"github.com/speedtest-community/speedtest-exporter/pkg/constants"
	"github.com/speedtest-community/speedtest-exporter/pkg/ux"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	baseDir  string
	logLevel string

	Version = ""

	app *application.Exporter

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use: "speedtest-exporter",
		Long: `Speedtest exporter provisions the Ookla speedtest CLI for the host
architecture and serves its results as Prometheus metrics.

To get started, install the vendor binary with
speedtest-exporter install --version 1.2.0 and then run
speedtest-exporter serve.`,
		PersistentPreRunE: setupApp,
		Version:           Version,
	}
)

func setupApp(cmd *cobra.Command, args []string) error {
	log, err := setupLogging()
	if err != nil {
		return err
	}
	// create the user facing logger as a global var
	ux.NewUserLog(log, os.Stdout)

	conf := config.New()
	conf.SetConfig(log, filepath.Join(baseDir, "config.json"))

	app = application.New()
	app.Setup(baseDir, log, conf, application.NewDownloader())
	return nil
}

func setupLogging() (*zap.Logger, error) {
	logDir := filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(logDir, constants.DefaultPerms755); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	level, err := zap.ParseAtomicLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level configured: %s", logLevel)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.OutputPaths = []string{filepath.Join(logDir, "speedtest-exporter.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	return cfg.Build()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Set base dir
	usr, err := user.Current()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get system user %s\n", err)
		os.Exit(1)
	}
	baseDir = filepath.Join(usr.HomeDir, constants.BaseDirName)

	// Create base dir if it doesn't exist
	err = os.MkdirAll(baseDir, os.ModePerm)
	if err != nil {
		// no logger here yet
		fmt.Printf("failed creating the basedir %s: %s\n", baseDir, err)
		os.Exit(1)
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level for the application")

	// install
	rootCmd.AddCommand(installCmd)
	installCmd.Flags().StringVar(&installVersion, "version", "", "speedtest CLI version to install (ex: 1.2.0)")
	installCmd.Flags().StringVar(&installDir, "bin-dir", constants.DefaultInstallDir, "directory on the search path the binary is installed to")
	installCmd.Flags().StringVar(&installWorkDir, "work-dir", constants.DefaultWorkDir, "application working directory handed over to --user")
	installCmd.Flags().StringVar(&installOwner, "user", constants.DefaultRunAsUser, "unprivileged account owning the working directory, empty to skip the handover")
	_ = installCmd.MarkFlagRequired("version")

	// serve
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", constants.DefaultHTTPHost, "address the exporter listens on")
	serveCmd.Flags().IntVar(&servePort, "port", constants.DefaultHTTPPort, "port the exporter listens on")
	serveCmd.Flags().StringVar(&serveBinPath, "speedtest-bin", constants.SpeedtestBinName, "path of the provisioned speedtest binary")
	serveCmd.Flags().StringVar(&serveInstallVersion, "install-version", "", "provision this speedtest version under the app dir before serving")
	serveCmd.Flags().StringVar(&serveServerID, "server-id", "", "pin speedtests to this upstream server id")
	serveCmd.Flags().IntVar(&serveCacheTimeout, "cache-timeout", int(constants.DefaultCacheTimeout.Seconds()), "seconds a result is served from cache before a new test runs")
	serveCmd.Flags().IntVar(&serveRunTimeout, "run-timeout", int(constants.DefaultRunTimeout.Seconds()), "seconds a single speedtest run may take")
}
