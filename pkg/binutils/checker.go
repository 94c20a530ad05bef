// Copyright (C) 2022, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.
package binutils

import (
	"path/filepath"

	"github.com/speedtest-community/speedtest-exporter/pkg/constants"
	"github.com/speedtest-community/speedtest-exporter/pkg/utils"
)

var _ BinaryChecker = (*binaryChecker)(nil)

type BinaryChecker interface {
	ExistsWithVersion(binDir, binPrefix, version string) (bool, string, error)
}

type binaryChecker struct{}

func NewBinaryChecker() BinaryChecker {
	return &binaryChecker{}
}

// ExistsWithVersion returns true if a provisioned speedtest of the given
// version can be found under binDir, and at what path. A version dir left
// behind by an interrupted install does not count, the binary itself must
// be there.
func (*binaryChecker) ExistsWithVersion(binDir, binPrefix, version string) (bool, string, error) {
	match, err := filepath.Glob(filepath.Join(binDir, binPrefix) + version)
	if err != nil {
		return false, "", err
	}
	for _, versionDir := range match {
		if utils.FileExists(filepath.Join(versionDir, constants.SpeedtestBinName)) {
			return true, versionDir, nil
		}
	}
	return false, "", nil
}
