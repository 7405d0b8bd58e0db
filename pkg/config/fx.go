package config

import (
	"os"

	"github.com/vqltools/vqlkeeper/pkg/consts"
	"github.com/vqltools/vqlkeeper/pkg/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Function attempts to load the configuration from vqlkeeper.yaml if it
	// exists. Returns nil if the file doesn't exist, allowing commands that
	// don't require config (like init, help, version) to function properly.
	func() (*Config, error) {
		if _, err := os.Stat(consts.ConfigFileName); os.IsNotExist(err) {
			return nil, nil
		}

		return LoadConfigFile(consts.ConfigFileName)
	},
	func(c *Config) *repository.Repository {
		if c == nil {
			return nil
		}
		return repository.New(c.Repo)
	},
))
