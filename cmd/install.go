// Copyright (C) 2022, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"github.com/speedtest-community/speedtest-exporter/pkg/binutils"
	"github.com/speedtest-community/speedtest-exporter/pkg/utils"
	"github.com/speedtest-community/speedtest-exporter/pkg/ux"

	"github.com/spf13/cobra"
)

var (
	installVersion string
	installDir     string
	installWorkDir string
	installOwner   string
)

// installCmd represents the install command
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the Ookla speedtest CLI for this host",
	Long: `Downloads the versioned Ookla speedtest archive matching the host CPU
architecture, unpacks it, installs the executable on the search path and
hands the working directory over to the unprivileged account the exporter
runs as. Temporary artifacts are removed whether or not the install
succeeds.`,
	RunE: runInstall,
	Args: cobra.ExactArgs(0),
}

func runInstall(cmd *cobra.Command, args []string) error {
	cfg := binutils.InstallConfig{
		Version:    installVersion,
		InstallDir: utils.ExpandHome(installDir),
		WorkDir:    utils.ExpandHome(installWorkDir),
		Owner:      installOwner,
	}
	binaryPath, err := binutils.InstallSpeedtest(app, cfg, binutils.NewOoklaDownloader(), binutils.NewInstaller(app.Downloader))
	if err != nil {
		return err
	}
	ux.Logger.PrintToUser("speedtest available at %s", binaryPath)
	return nil
}
