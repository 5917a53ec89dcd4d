package ftsettings

import (
	"fmt"
	"path/filepath"

	"github.com/filetug/fileexp/pkg/fsutils"
	log "github.com/sirupsen/logrus"
)

// Settings are read from settings.yaml in the user dir. Command line flags
// override them.
type Settings struct {
	ShowHidden     bool   `yaml:"show_hidden"`
	MaxColumns     int    `yaml:"max_columns"`
	LogFile        string `yaml:"log_file,omitempty"`
	LogLevel       string `yaml:"log_level,omitempty"`
	DefaultCatalog string `yaml:"default_catalog,omitempty"`
}

func Defaults() Settings {
	return Settings{
		LogLevel:       "info",
		DefaultCatalog: DefaultCatalogPath,
	}
}

// Load reads settings from userDir. A missing dir or file yields defaults.
func Load(userDir string) (Settings, error) {
	settings := Defaults()
	exists, err := fsutils.DirExists(userDir)
	if err != nil {
		return settings, fmt.Errorf("failed to check settings dir: %w", err)
	}
	if !exists {
		log.WithField("path", userDir).Debug("settings dir does not exist, using defaults")
		return settings, nil
	}
	filePath := filepath.Join(userDir, SettingsFileName)
	if err = fsutils.ReadYAMLFile(filePath, false, &settings); err != nil {
		return Defaults(), fmt.Errorf("failed to read settings from %s: %w", filePath, err)
	}
	settings.LogFile = fsutils.ExpandHome(settings.LogFile)
	settings.DefaultCatalog = fsutils.ExpandHome(settings.DefaultCatalog)
	if settings.DefaultCatalog == "" {
		settings.DefaultCatalog = DefaultCatalogPath
	}
	return settings, nil
}
