package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/lvenv/internal/messages"
)

const (
	appDirName     = "lvenv"
	configFileName = "config.toml"
)

var userConfigDir = os.UserConfigDir

// DefaultPath returns the per-user config file path, honoring XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveDirFmt, err)
	}
	return filepath.Join(dir, appDirName, configFileName), nil
}
