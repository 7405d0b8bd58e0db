package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/vqltools/vqlkeeper/pkg/consts"
	"gopkg.in/yaml.v3"
)

// Config represents the project configuration for a VQL code base.
type Config struct {
	// Repo is the directory holding the split repository tree.
	Repo string `yaml:"repo"`

	// Exports is the directory holding raw export files.
	Exports string `yaml:"exports"`

	// Base names the reference snapshot in diff reports.
	Base string `yaml:"base,omitempty"`

	// Comp names the comparison snapshot in diff reports.
	Comp string `yaml:"comp,omitempty"`
}

// LoadConfig parses a project configuration from the provided io.Reader.
// Missing values are filled with defaults.
//
// Example:
//
//	yamlData := `
//	repo: repo
//	exports: exports
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//	    panic(err)
//	}
//
//	fmt.Printf("Repository dir: %s\n", cfg.Repo)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal project config")
	}

	if cfg.Repo == "" {
		cfg.Repo = consts.DefaultRepositoryDir
	}
	if cfg.Exports == "" {
		cfg.Exports = consts.DefaultExportsDir
	}
	if cfg.Base == "" {
		cfg.Base = "base"
	}
	if cfg.Comp == "" {
		cfg.Comp = "compare"
	}

	return &cfg, nil
}

// LoadConfigFile loads a project configuration from the specified file
// path. This is a convenience function that opens the file and calls
// LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}
