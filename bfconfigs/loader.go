package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bfi/cmds"
	"github.com/reusee/bfi/configs"
	"github.com/reusee/bfi/logs"
)

//go:embed schema.cue
var schema string

var configFlag = cmds.Collect[string]("-config")

func init() {
	cmds.Describe("-config", "load a config file before the searched ones")
}

var filenames = []string{
	"bfi.cue",
	".bfi.cue",
	"bfi.toml",
	".bfi.toml",
}

// SearchDirs are the directories searched for config files, in precedence order
type SearchDirs []string

func (Module) SearchDirs() (ret SearchDirs) {
	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		ret = append(ret, workingDir)
	}
	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		ret = append(ret, configDir)
	}
	// system wide dir
	ret = append(ret, "/etc")
	return
}

func (Module) ConfigsLoader(
	dirs SearchDirs,
	logger logs.Logger,
) configs.Loader {

	paths := append([]string(nil), *configFlag...)
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	if len(paths) > 0 {
		logger.Debug("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}
