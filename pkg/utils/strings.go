// Copyright (C) 2023, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"strings"

	"golang.org/x/mod/semver"
)

// IsValidVersion reports whether version is a semantic-version-like token
// as used in Ookla release file names (e.g. "1.2.0", no leading v).
func IsValidVersion(version string) bool {
	if version == "" || strings.HasPrefix(version, "v") {
		return false
	}
	return semver.IsValid("v" + version)
}

// BytesPerSecToBits converts a bandwidth reading from bytes/s to bits/s.
func BytesPerSecToBits(bytesPerSec float64) float64 {
	return bytesPerSec * 8
}

// BitsToMegabits rounds a bits/s reading to Mbit/s with two decimals,
// for human-readable log lines only.
func BitsToMegabits(bitsPerSec float64) float64 {
	return float64(int(bitsPerSec*1e-6*100+0.5)) / 100
}
