// Copyright (C) 2022, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"path/filepath"

	"github.com/speedtest-community/speedtest-exporter/pkg/config"
	"github.com/speedtest-community/speedtest-exporter/pkg/constants"

	"go.uber.org/zap"
)

type Exporter struct {
	Log        *zap.Logger
	baseDir    string
	Conf       *config.Config
	Downloader Downloader
}

func New() *Exporter {
	return &Exporter{}
}

func (app *Exporter) Setup(baseDir string, log *zap.Logger, conf *config.Config, downloader Downloader) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Downloader = downloader
}

func (app *Exporter) GetBaseDir() string {
	return app.baseDir
}

func (app *Exporter) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

// GetSpeedtestBinDir is where provisioned speedtest binaries are kept when no
// explicit install dir is requested, one subdir per version.
func (app *Exporter) GetSpeedtestBinDir() string {
	return filepath.Join(app.baseDir, constants.BinDir)
}
