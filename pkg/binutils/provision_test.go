// Copyright (C) 2022, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.

package binutils

import (
	"errors"
	"os"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/speedtest-community/speedtest-exporter/internal/mocks"
	"github.com/speedtest-community/speedtest-exporter/internal/testutils"
	"github.com/speedtest-community/speedtest-exporter/pkg/constants"

	"github.com/stretchr/testify/mock"
)

const testVersion = "1.2.0"

var speedtestBinary = []byte{0xde, 0xad, 0xbe, 0xef}

func installTempArtifacts(t *testing.T) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(os.TempDir(), "speedtest-install*"))
	if err != nil {
		t.Fatal(err)
	}
	return matches
}

func TestInstallSpeedtest(t *testing.T) {
	require := testutils.SetupTest(t)
	app := testutils.SetupTestInTempDir(t)

	srcDir := t.TempDir()
	tgz := filepath.Join(t.TempDir(), "ookla-speedtest.tgz")
	testutils.CreateSpeedtestArchive(require, srcDir, tgz, speedtestBinary)
	tgzBytes, err := os.ReadFile(tgz)
	require.NoError(err)

	mockInstaller := &mocks.Installer{}
	mockInstaller.On("GetArch").Return("x86_64", "linux")
	mockInstaller.On("DownloadRelease", mock.Anything).Return(tgzBytes, nil)

	tempBefore := installTempArtifacts(t)

	installDir := t.TempDir()
	workDir := filepath.Join(t.TempDir(), "work")

	usr, err := user.Current()
	require.NoError(err)

	cfg := InstallConfig{
		Version:    testVersion,
		InstallDir: installDir,
		WorkDir:    workDir,
		Owner:      usr.Username,
	}
	binaryPath, err := InstallSpeedtest(app, cfg, NewOoklaDownloader(), mockInstaller)
	require.NoError(err)
	require.Equal(filepath.Join(installDir, constants.SpeedtestBinName), binaryPath)

	// installed payload is intact and executable
	installed, err := os.ReadFile(binaryPath)
	require.NoError(err)
	require.Equal(speedtestBinary, installed)
	info, err := os.Stat(binaryPath)
	require.NoError(err)
	require.NotZero(info.Mode() & 0o100)

	// working directory was created for the owner
	require.DirExists(workDir)

	// no temporary artifacts left behind
	require.Equal(tempBefore, installTempArtifacts(t))
}

func TestInstallSpeedtest_DownloadFailure(t *testing.T) {
	require := testutils.SetupTest(t)
	app := testutils.SetupTestInTempDir(t)

	mockInstaller := &mocks.Installer{}
	mockInstaller.On("GetArch").Return("x86_64", "linux")
	mockInstaller.On("DownloadRelease", mock.Anything).Return([]byte{}, errors.New("unexpected http status code: 404"))

	installDir := filepath.Join(t.TempDir(), "bin")
	cfg := InstallConfig{
		Version:    testVersion,
		InstallDir: installDir,
	}
	_, err := InstallSpeedtest(app, cfg, NewOoklaDownloader(), mockInstaller)
	require.ErrorContains(err, "unable to download speedtest")

	// nothing may be installed, not even partially
	require.NoFileExists(filepath.Join(installDir, constants.SpeedtestBinName))
}

func TestInstallSpeedtest_CorruptArchive(t *testing.T) {
	require := testutils.SetupTest(t)
	app := testutils.SetupTestInTempDir(t)

	mockInstaller := &mocks.Installer{}
	mockInstaller.On("GetArch").Return("x86_64", "linux")
	mockInstaller.On("DownloadRelease", mock.Anything).Return([]byte("truncated junk"), nil)

	tempBefore := installTempArtifacts(t)

	installDir := filepath.Join(t.TempDir(), "bin")
	cfg := InstallConfig{
		Version:    testVersion,
		InstallDir: installDir,
	}
	_, err := InstallSpeedtest(app, cfg, NewOoklaDownloader(), mockInstaller)
	require.ErrorContains(err, "unable to unpack speedtest archive")
	require.NoFileExists(filepath.Join(installDir, constants.SpeedtestBinName))

	// cleanup runs on the error path too
	require.Equal(tempBefore, installTempArtifacts(t))
}

func TestInstallSpeedtest_PayloadMissing(t *testing.T) {
	require := testutils.SetupTest(t)
	app := testutils.SetupTestInTempDir(t)

	// an archive with licenses only, no executable
	srcDir := t.TempDir()
	err := os.WriteFile(filepath.Join(srcDir, "speedtest.md"), []byte("EULA"), 0o644)
	require.NoError(err)
	tgz := filepath.Join(t.TempDir(), "ookla-speedtest.tgz")
	testutils.CreateTarGz(require, srcDir, tgz, false)
	tgzBytes, err := os.ReadFile(tgz)
	require.NoError(err)

	mockInstaller := &mocks.Installer{}
	mockInstaller.On("GetArch").Return("x86_64", "linux")
	mockInstaller.On("DownloadRelease", mock.Anything).Return(tgzBytes, nil)

	cfg := InstallConfig{
		Version:    testVersion,
		InstallDir: filepath.Join(t.TempDir(), "bin"),
	}
	_, err = InstallSpeedtest(app, cfg, NewOoklaDownloader(), mockInstaller)
	require.ErrorContains(err, "unexpected layout")
}

func TestInstallSpeedtest_InvalidVersion(t *testing.T) {
	require := testutils.SetupTest(t)
	app := testutils.SetupTestInTempDir(t)

	cfg := InstallConfig{
		Version:    "v1.2.0",
		InstallDir: t.TempDir(),
	}
	_, err := InstallSpeedtest(app, cfg, NewOoklaDownloader(), &mocks.Installer{})
	require.ErrorContains(err, "invalid version string")
}

func TestSetupSpeedtest_SkipsExistingInstall(t *testing.T) {
	require := testutils.SetupTest(t)
	app := testutils.SetupTestInTempDir(t)

	versionDir := filepath.Join(app.GetSpeedtestBinDir(), speedtestBinPrefix+testVersion)
	require.NoError(os.MkdirAll(versionDir, 0o755))
	binaryPath := filepath.Join(versionDir, constants.SpeedtestBinName)
	require.NoError(os.WriteFile(binaryPath, speedtestBinary, 0o755))

	// with the binary already provisioned no download may happen
	path, err := SetupSpeedtest(app, testVersion)
	require.NoError(err)
	require.Equal(binaryPath, path)
}
