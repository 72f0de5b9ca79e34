package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Name used for directory and file naming.
const toolName = "rootpack"

// Default path to the optional configuration file.
//
//	Linux:   $XDG_CONFIG_HOME/rootpack/config.yaml
//	macOS:   ~/Library/Application Support/rootpack/config.yaml
func ConfigFile() string {
	return filepath.Join(xdg.ConfigHome, toolName, "config.yaml")
}
