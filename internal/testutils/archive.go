// Copyright (C) 2022, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/stretchr/testify/require"
)

// CreateTarGz packs src into a tgz at dest. With includeTopLevel the archive
// carries src's basename as its top dir, otherwise entries sit at the root
// the way Ookla ships its release archives.
func CreateTarGz(require *require.Assertions, src string, dest string, includeTopLevel bool) {
	tgz, err := os.Create(dest)
	require.NoError(err)
	defer tgz.Close()

	gw := gzip.NewWriter(tgz)
	defer gw.Close()

	tarball := tar.NewWriter(gw)
	defer tarball.Close()

	info, err := os.Stat(src)
	require.NoError(err)

	var baseDir string
	if includeTopLevel && info.IsDir() {
		baseDir = filepath.Base(src)
	} else {
		baseDir = ""
	}

	err = filepath.Walk(src,
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			header, err := tar.FileInfoHeader(info, info.Name())
			if err != nil {
				return err
			}

			if baseDir != "" {
				header.Name = filepath.Join(baseDir, strings.TrimPrefix(path, src))
			}

			if strings.TrimSuffix(header.Name, "/") == filepath.Base(src) {
				return nil
			}

			if err := tarball.WriteHeader(header); err != nil {
				return err
			}

			if info.IsDir() {
				return nil
			}

			file, err := os.Open(path)
			if err != nil {
				return err
			}

			defer func() {
				err := file.Close()
				require.NoError(err)
			}()
			_, err = io.Copy(tarball, file)
			return err
		})
	require.NoError(err)
}

// CreateSpeedtestArchive lays out a vendor-shaped release dir (executable
// payload next to its license file) and packs it flat into a tgz at dest.
func CreateSpeedtestArchive(require *require.Assertions, srcDir string, dest string, payload []byte) {
	err := os.WriteFile(filepath.Join(srcDir, "speedtest"), payload, 0o755)
	require.NoError(err)
	err = os.WriteFile(filepath.Join(srcDir, "speedtest.5"), []byte("man page"), 0o644)
	require.NoError(err)
	err = os.WriteFile(filepath.Join(srcDir, "speedtest.md"), []byte("EULA"), 0o644)
	require.NoError(err)

	CreateTarGz(require, srcDir, dest, false)
}
