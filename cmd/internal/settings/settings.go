/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package settings merges the global CLI flags into the loaded config.
package settings

import (
	"github.com/spf13/viper"

	"bennypowers.dev/tokenwind/config"
	"bennypowers.dev/tokenwind/fs"
)

// LoadConfig resolves the config file named by --config (or found under
// rootDir) and applies --brand-prefix on top of it.
func LoadConfig(filesystem fs.FileSystem, rootDir string) (*config.Config, error) {
	cfg, err := config.Resolve(filesystem, rootDir, viper.GetString("config"))
	if err != nil {
		return nil, err
	}
	if prefix := viper.GetString("brand-prefix"); prefix != "" {
		cfg.BrandPrefix = prefix
	}
	return cfg, nil
}
