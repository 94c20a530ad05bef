// Copyright (C) 2022, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.

package binutils

import (
	"runtime"

	"github.com/speedtest-community/speedtest-exporter/pkg/application"

	"golang.org/x/sys/unix"
)

type Installer interface {
	GetArch() (string, string)
	DownloadRelease(releaseURL string) ([]byte, error)
}

type installerImpl struct {
	downloader application.Downloader
}

func NewInstaller(downloader application.Downloader) Installer {
	return &installerImpl{downloader: downloader}
}

// goarch tokens for machines the kernel could not be asked about.
var goarchMachineTokens = map[string]string{
	"amd64": "x86_64",
	"386":   "i386",
	"arm64": "aarch64",
	"arm":   "armv7l",
}

// GetArch returns the machine token as the kernel reports it (uname -m) and
// the OS token.
func (installerImpl) GetArch() (string, string) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err == nil {
		return unix.ByteSliceToString(uts.Machine[:]), runtime.GOOS
	}
	if machine, ok := goarchMachineTokens[runtime.GOARCH]; ok {
		return machine, runtime.GOOS
	}
	return runtime.GOARCH, runtime.GOOS
}

func (i installerImpl) DownloadRelease(releaseURL string) ([]byte, error) {
	return i.downloader.DownloadWithTee(releaseURL)
}
