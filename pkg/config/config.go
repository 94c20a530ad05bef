// Copyright (C) 2022, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.
package config

import (
	"path/filepath"
	"strings"

	"github.com/speedtest-community/speedtest-exporter/pkg/constants"
	"github.com/speedtest-community/speedtest-exporter/pkg/utils"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct{}

func New() *Config {
	return &Config{}
}

func (*Config) SetConfig(log *zap.Logger, s string) {
	viper.SetConfigType("json")
	d := filepath.Dir(s)
	viper.AddConfigPath(d)
	viper.SetConfigFile(s)
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// defaults register the keys, so env values resolve without a config file
	viper.SetDefault(constants.ConfigHostKey, constants.DefaultHTTPHost)
	viper.SetDefault(constants.ConfigPortKey, constants.DefaultHTTPPort)
	viper.SetDefault(constants.ConfigServerIDKey, "")
	viper.SetDefault(constants.ConfigCacheTimeoutKey, int(constants.DefaultCacheTimeout.Seconds()))
	viper.SetDefault(constants.ConfigRunTimeoutKey, int(constants.DefaultRunTimeout.Seconds()))
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Info("Using config file", zap.String("config-file", s))
	} else {
		log.Info("No config file found")
	}
}

func (*Config) GetConfigPath() string {
	return viper.ConfigFileUsed()
}

func (c *Config) ConfigFileExists() bool {
	return utils.FileExists(c.GetConfigPath())
}

// SetConfigValue sets the value of a configuration key.
func (*Config) SetConfigValue(key string, value interface{}) error {
	viper.Set(key, value)
	err := viper.WriteConfig()
	return err
}

func (*Config) ConfigValueIsSet(key string) bool {
	return viper.IsSet(key)
}

func (*Config) GetConfigBoolValue(key string) bool {
	return viper.GetBool(key)
}

func (*Config) GetConfigStringValue(key string) string {
	return viper.GetString(key)
}

func (*Config) GetConfigIntValue(key string) int {
	return viper.GetInt(key)
}
