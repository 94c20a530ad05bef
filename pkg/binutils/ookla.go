// Copyright (C) 2022, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.

package binutils

import (
	"fmt"

	"github.com/speedtest-community/speedtest-exporter/pkg/constants"
)

const (
	linux = "linux"

	tgzExtension = "tgz"

	armv7MachineToken = "armv7l"
	armhfVendorToken  = "armhf"
)

type OoklaDownloader interface {
	GetDownloadURL(version string, installer Installer) (string, string, error)
}

type ooklaDownloader struct{}

var _ OoklaDownloader = (*ooklaDownloader)(nil)

func NewOoklaDownloader() OoklaDownloader {
	return &ooklaDownloader{}
}

// mapMachineToken rewrites the kernel machine token to the one Ookla uses in
// release file names. Ookla names 32-bit ARM v7 builds armhf; every other
// token is used as-is.
func mapMachineToken(machine string) string {
	if machine == armv7MachineToken {
		return armhfVendorToken
	}
	return machine
}

func (ooklaDownloader) GetDownloadURL(version string, installer Installer) (string, string, error) {
	// NOTE: if any of the underlying URLs change (vendor host, release file names, etc.) this fails
	machine, goos := installer.GetArch()

	switch goos {
	case linux:
		ooklaURL := fmt.Sprintf(
			"%s/ookla-speedtest-%s-linux-%s.tgz",
			constants.OoklaDownloadBaseURL,
			version,
			mapMachineToken(machine),
		)
		return ooklaURL, tgzExtension, nil
	default:
		return "", "", fmt.Errorf("OS not supported: %s", goos)
	}
}
