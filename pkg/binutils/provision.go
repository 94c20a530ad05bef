// Copyright (C) 2022, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.

package binutils

import (
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strconv"

	"github.com/speedtest-community/speedtest-exporter/pkg/application"
	"github.com/speedtest-community/speedtest-exporter/pkg/constants"
	"github.com/speedtest-community/speedtest-exporter/pkg/utils"
	"github.com/speedtest-community/speedtest-exporter/pkg/ux"

	"go.uber.org/zap"
)

// InstallConfig carries where the resolver puts things. Paths are explicit so
// tests can point installation at a scratch directory.
type InstallConfig struct {
	Version    string
	InstallDir string
	// WorkDir is the application working directory handed over to Owner
	// after install. Empty skips the handover.
	WorkDir string
	Owner   string
}

// InstallSpeedtest downloads the versioned Ookla archive for the host
// architecture, unpacks it, and installs the speedtest executable under
// cfg.InstallDir. Temporary artifacts are removed on every exit path; their
// removal failing is never fatal.
func InstallSpeedtest(
	app *application.Exporter,
	cfg InstallConfig,
	downloader OoklaDownloader,
	installer Installer,
) (string, error) {
	if !utils.IsValidVersion(cfg.Version) {
		return "", fmt.Errorf(
			"invalid version string. Must be a plain semantic version ex: 1.2.0: %s", cfg.Version)
	}

	ux.Logger.PrintToUser("Installing speedtest %s...", cfg.Version)

	installURL, ext, err := downloader.GetDownloadURL(cfg.Version, installer)
	if err != nil {
		return "", fmt.Errorf("unable to determine speedtest install URL: %w", err)
	}

	app.Log.Debug("starting download...", zap.String("download-url", installURL))
	archive, err := installer.DownloadRelease(installURL)
	if err != nil {
		return "", fmt.Errorf("unable to download speedtest: %w", err)
	}

	app.Log.Debug("download successful. unpacking archive...")
	tmpDir, err := os.MkdirTemp("", "speedtest-install")
	if err != nil {
		return "", err
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			app.Log.Debug("cleanup of temporary artifacts failed", zap.Error(err))
		}
	}()

	if err := ExtractArchive(ext, archive, tmpDir); err != nil {
		return "", fmt.Errorf("unable to unpack speedtest archive: %w", err)
	}

	// the archive carries the executable at its top level, next to licenses
	payload := filepath.Join(tmpDir, constants.SpeedtestBinName)
	if !utils.FileExists(payload) {
		return "", fmt.Errorf("speedtest archive has unexpected layout: %s missing", constants.SpeedtestBinName)
	}

	if err := os.MkdirAll(cfg.InstallDir, constants.DefaultPerms755); err != nil {
		return "", fmt.Errorf("failed to create install directory: %w", err)
	}
	binaryPath := filepath.Join(cfg.InstallDir, constants.SpeedtestBinName)
	if err := copyFile(payload, binaryPath); err != nil {
		return "", fmt.Errorf("failed copying speedtest to install dir: %w", err)
	}

	if cfg.Owner != "" {
		if cfg.WorkDir != "" {
			if err := os.MkdirAll(cfg.WorkDir, constants.DefaultPerms755); err != nil {
				return "", fmt.Errorf("failed to create working directory: %w", err)
			}
		}
		if err := ChownRecursively(cfg.Owner, cfg.WorkDir, binaryPath); err != nil {
			return "", err
		}
	}

	ux.Logger.GreenCheckmarkToUser("speedtest %s installation successful", cfg.Version)
	return binaryPath, nil
}

// SetupSpeedtest makes sure a speedtest binary of the wanted version is
// available under the app bin dir, provisioning it if not there yet.
func SetupSpeedtest(app *application.Exporter, version string) (string, error) {
	binDir := app.GetSpeedtestBinDir()

	binChecker := NewBinaryChecker()
	exists, versionDir, err := binChecker.ExistsWithVersion(binDir, speedtestBinPrefix, version)
	if err != nil {
		return "", fmt.Errorf("failed trying to locate speedtest binary: %s", binDir)
	}
	if exists {
		app.Log.Debug("speedtest " + version + " found. Skipping installation")
		return filepath.Join(versionDir, constants.SpeedtestBinName), nil
	}

	app.Log.Info("Using speedtest version", zap.String("version", version))

	cfg := InstallConfig{
		Version:    version,
		InstallDir: filepath.Join(binDir, speedtestBinPrefix+version),
	}
	return InstallSpeedtest(app, cfg, NewOoklaDownloader(), NewInstaller(app.Downloader))
}

// ChownRecursively hands every given path, including anything below it, over
// to the named account.
func ChownRecursively(owner string, paths ...string) error {
	usr, err := user.Lookup(owner)
	if err != nil {
		return fmt.Errorf("failed to look up user %s: %w", owner, err)
	}
	uid, err := strconv.Atoi(usr.Uid)
	if err != nil {
		return fmt.Errorf("failed parsing uid for %s: %w", owner, err)
	}
	gid, err := strconv.Atoi(usr.Gid)
	if err != nil {
		return fmt.Errorf("failed parsing gid for %s: %w", owner, err)
	}
	for _, root := range paths {
		if root == "" {
			continue
		}
		err := filepath.WalkDir(root, func(path string, _ fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			return os.Chown(path, uid, gid)
		})
		if err != nil {
			return fmt.Errorf("failed changing ownership of %s: %w", root, err)
		}
	}
	return nil
}
