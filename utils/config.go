package utils

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Catalog settings
type CatalogConfig struct {
	// Source is a filesystem path or an http(s) URL to the catalog JSON.
	Source string `toml:"source"`
}

// Preference storage settings
type PrefsConfig struct {
	Path string `toml:"path"`
}

// Root config
type Config struct {
	Catalog CatalogConfig `toml:"catalog"`
	Prefs   PrefsConfig   `toml:"prefs"`
}

const DefaultCatalogSource = "books.json"

// Global variable to hold config
var AppConfig Config

// expandPath replaces leading "~" with user home dir
func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// LoadConfig reads config.toml into AppConfig. A missing file is not an
// error: the browser runs with defaults against ./books.json.
func LoadConfig(path string) {
	AppConfig = Config{Catalog: CatalogConfig{Source: DefaultCatalogSource}}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return
	}
	if err != nil {
		log.Fatalf("failed to read config: %v", err)
	}

	if err := toml.Unmarshal(data, &AppConfig); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if AppConfig.Catalog.Source == "" {
		AppConfig.Catalog.Source = DefaultCatalogSource
	}
	if !strings.Contains(AppConfig.Catalog.Source, "://") {
		AppConfig.Catalog.Source = expandPath(AppConfig.Catalog.Source)
	}
	AppConfig.Prefs.Path = expandPath(AppConfig.Prefs.Path)
}

func Main() {
	homeDir, _ := os.UserHomeDir()
	LoadConfig(filepath.Join(homeDir, ".config", "estante", "config.toml"))
}
