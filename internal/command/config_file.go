package command

import (
	"os"
	"path/filepath"

	"github.com/kirsle/configdir"
)

// defaultConfigFile returns the path of the user level configuration file
// if it exists.
func defaultConfigFile(name string) string {
	path := filepath.Join(configdir.LocalConfig(name), "config.yml")

	if _, err := os.Stat(path); err != nil {
		return ""
	}

	return path
}
