package ftsettings

import (
	"os"
	"path/filepath"
)

const (
	AppDirName          = "fileexp"
	SettingsFileName    = "settings.yaml"
	UserCatalogFileName = "user.cfg"

	// DefaultCatalogPath is where packages install the default type catalog.
	DefaultCatalogPath = "/etc/fileexp/default.cfg"

	DefaultUserDir = "~/.config/" + AppDirName
)

var osUserHomeDir = os.UserHomeDir
var osGetenv = os.Getenv

// GetUserDir returns the per-user config dir: $XDG_CONFIG_HOME/fileexp or
// ~/.config/fileexp.
func GetUserDir() (string, error) {
	if configHome := osGetenv("XDG_CONFIG_HOME"); configHome != "" && filepath.IsAbs(configHome) {
		return filepath.Join(configHome, AppDirName), nil
	}
	userHomeDir, err := osUserHomeDir()
	if err != nil {
		return DefaultUserDir, err
	}
	return filepath.Join(userHomeDir, DefaultUserDir[2:]), nil
}

func UserCatalogPath(userDir string) string {
	return filepath.Join(userDir, UserCatalogFileName)
}
