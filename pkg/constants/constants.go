// Copyright (C) 2022, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "time"

const (
	DefaultPerms755    = 0o755
	WriteReadReadPerms = 0o644

	BaseDirName = ".speedtest-exporter"
	LogDir      = "logs"
	BinDir      = "bin"

	OoklaDownloadBaseURL = "https://install.speedtest.net/app/cli"
	SpeedtestBinName     = "speedtest"

	DefaultInstallDir = "/usr/local/bin"
	DefaultWorkDir    = "/app"
	DefaultRunAsUser  = "speedtest"

	DefaultHTTPHost     = "0.0.0.0"
	DefaultHTTPPort     = 8000
	DefaultCacheTimeout = 15 * time.Minute
	DefaultRunTimeout   = 90 * time.Second

	HTTPReadHeaderTimeout = 10 * time.Second

	ConfigHostKey         = "host"
	ConfigPortKey         = "port"
	ConfigServerIDKey     = "server"
	ConfigCacheTimeoutKey = "cache-timeout"
	ConfigRunTimeoutKey   = "run-timeout"

	EnvPrefix = "SPEEDTEST"
)
