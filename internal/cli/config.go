package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rootpack/rootpack/internal/paths"
)

// Optional file-based configuration.
//
// Everything in it extends the built-in defaults; nothing replaces them.
type fileConfig struct {
	Exclude struct {
		Files   []string `yaml:"files"`
		Folders []string `yaml:"folders"`
	} `yaml:"exclude"`
	Interp string `yaml:"interp"`
}

// Loads the configuration file at path, falling back to the default XDG
// location when path is empty.
//
// A missing file at the default location is not an error; a missing file
// named explicitly is.
func loadConfig(path string) (*fileConfig, error) {
	explicit := path != ""
	if !explicit {
		path = paths.ConfigFile()
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &fileConfig{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}
