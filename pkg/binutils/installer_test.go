// Copyright (C) 2022, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.

package binutils

import (
	"runtime"
	"testing"

	"github.com/speedtest-community/speedtest-exporter/internal/mocks"
	"github.com/speedtest-community/speedtest-exporter/internal/testutils"
)

func TestGetArch(t *testing.T) {
	require := testutils.SetupTest(t)

	machine, goos := NewInstaller(nil).GetArch()
	require.NotEmpty(machine)
	require.Equal(runtime.GOOS, goos)
}

func TestDownloadRelease(t *testing.T) {
	require := testutils.SetupTest(t)

	url := "https://install.speedtest.net/app/cli/ookla-speedtest-1.2.0-linux-x86_64.tgz"
	payload := []byte{0xde, 0xad, 0xbe, 0xef}

	mockDownloader := mocks.NewDownloader(t)
	mockDownloader.On("DownloadWithTee", url).Return(payload, nil)

	archive, err := NewInstaller(mockDownloader).DownloadRelease(url)
	require.NoError(err)
	require.Equal(payload, archive)
}
