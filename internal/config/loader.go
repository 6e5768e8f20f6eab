// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".avlstress"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for avlstress settings.
const envPrefix = "AVLSTRESS"

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("workload.seed", DefaultSeed)
	v.SetDefault("workload.ops", DefaultOps)
	v.SetDefault("workload.key_space", DefaultKeySpace)
	v.SetDefault("workload.erase_ratio", DefaultEraseRatio)
	v.SetDefault("workload.index_ratio", DefaultIndexRatio)
	v.SetDefault("workload.check_every", DefaultCheckEvery)
	v.SetDefault("compare.btree_degree", DefaultBTreeDegree)
	v.SetDefault("report.color", DefaultColor)
}
