// Copyright (C) 2022, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.
package binutils

const (
	speedtestBinPrefix = "speedtest-"
	maxCopy            = 2147483648 // 2 GB
)
