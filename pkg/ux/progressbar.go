// Copyright (C) 2025, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.
package ux

import (
	ansi "github.com/k0kubun/go-ansi"
	progressbar "github.com/schollz/progressbar/v3"
)

// DownloadBar returns a byte-count progress bar for an archive download of
// totalBytes size. totalBytes may be -1 when the size is unknown upfront.
func DownloadBar(totalBytes int64, title string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(totalBytes,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription(title),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
