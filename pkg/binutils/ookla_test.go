// Copyright (C) 2022, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.

package binutils

import (
	"errors"
	"testing"

	"github.com/speedtest-community/speedtest-exporter/internal/mocks"

	"github.com/stretchr/testify/assert"
)

type urlTest struct {
	version     string
	machine     string
	goos        string
	expectedURL string
	expectedExt string
	expectedErr error
}

func TestGetDownloadURL_Ookla(t *testing.T) {
	tests := []urlTest{
		{
			version:     "1.2.0",
			machine:     "x86_64",
			goos:        "linux",
			expectedURL: "https://install.speedtest.net/app/cli/ookla-speedtest-1.2.0-linux-x86_64.tgz",
			expectedExt: tgzExtension,
			expectedErr: nil,
		},
		{
			version:     "1.2.0",
			machine:     "aarch64",
			goos:        "linux",
			expectedURL: "https://install.speedtest.net/app/cli/ookla-speedtest-1.2.0-linux-aarch64.tgz",
			expectedExt: tgzExtension,
			expectedErr: nil,
		},
		{
			version:     "1.2.0",
			machine:     "armv7l",
			goos:        "linux",
			expectedURL: "https://install.speedtest.net/app/cli/ookla-speedtest-1.2.0-linux-armhf.tgz",
			expectedExt: tgzExtension,
			expectedErr: nil,
		},
		{
			version:     "1.1.1",
			machine:     "armv7l",
			goos:        "linux",
			expectedURL: "https://install.speedtest.net/app/cli/ookla-speedtest-1.1.1-linux-armhf.tgz",
			expectedExt: tgzExtension,
			expectedErr: nil,
		},
		{
			version:     "1.2.0",
			machine:     "i386",
			goos:        "linux",
			expectedURL: "https://install.speedtest.net/app/cli/ookla-speedtest-1.2.0-linux-i386.tgz",
			expectedExt: tgzExtension,
			expectedErr: nil,
		},
		{
			version:     "1.2.0",
			machine:     "x86_64",
			goos:        "solaris",
			expectedURL: "",
			expectedExt: "",
			expectedErr: errors.New("OS not supported: solaris"),
		},
	}

	for _, tt := range tests {
		assert := assert.New(t)
		mockInstaller := &mocks.Installer{}
		mockInstaller.On("GetArch").Return(tt.machine, tt.goos)

		downloader := NewOoklaDownloader()

		url, ext, err := downloader.GetDownloadURL(tt.version, mockInstaller)
		assert.Equal(tt.expectedURL, url)
		assert.Equal(tt.expectedExt, ext)
		assert.Equal(tt.expectedErr, err)
	}
}

func TestGetDownloadURL_Deterministic(t *testing.T) {
	assert := assert.New(t)
	mockInstaller := &mocks.Installer{}
	mockInstaller.On("GetArch").Return("armv7l", "linux")

	downloader := NewOoklaDownloader()

	url1, _, err := downloader.GetDownloadURL("1.2.0", mockInstaller)
	assert.NoError(err)
	url2, _, err := downloader.GetDownloadURL("1.2.0", mockInstaller)
	assert.NoError(err)
	assert.Equal(url1, url2)
}

func Test_mapMachineToken(t *testing.T) {
	assert := assert.New(t)

	// only the 32-bit ARM v7 token gets rewritten
	assert.Equal("armhf", mapMachineToken("armv7l"))

	for _, machine := range []string{"x86_64", "i386", "aarch64", "armel", "riscv64"} {
		assert.Equal(machine, mapMachineToken(machine))
	}
}
