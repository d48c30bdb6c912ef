package config

import (
	"os"

	"github.com/pseudomuto/sqlfmt/pkg/consts"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Loads .sqlfmt.yaml from the working directory if it exists. Returns an
	// empty Config otherwise so the dialect presets apply unchanged. Flags on
	// the fmt command are merged on top of this.
	func() (*Config, error) {
		if _, err := os.Stat(consts.DefaultConfigFile); os.IsNotExist(err) {
			return &Config{}, nil
		}

		return LoadConfigFile(consts.DefaultConfigFile)
	},
))
