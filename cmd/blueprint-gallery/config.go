package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Binck360/blueprint/datetime"
)

const defaultSkin = "default"

// galleryConfig holds the gallery's settings. Dates are kept as strings here
// and parsed with the configured format when the widgets are built.
type galleryConfig struct {
	Skin                  string `mapstructure:"skin"`
	Format                string `mapstructure:"format"`
	MinDate               string `mapstructure:"min-date"`
	MaxDate               string `mapstructure:"max-date"`
	Vertical              bool   `mapstructure:"vertical"`
	Animate               bool   `mapstructure:"animate"`
	RenderActivePanelOnly bool   `mapstructure:"render-active-panel-only"`
}

func loadConfig(configPath string) (galleryConfig, error) {
	var cfg galleryConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("BLUEPRINT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("skin", defaultSkin)
	v.SetDefault("format", datetime.DefaultFormat)
	v.SetDefault("min-date", "")
	v.SetDefault("max-date", "")
	v.SetDefault("vertical", false)
	v.SetDefault("animate", true)
	v.SetDefault("render-active-panel-only", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "blueprint", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// parseBound turns a configured bound into a time. Empty means unbounded.
func parseBound(text, format string) (time.Time, error) {
	if text == "" {
		return time.Time{}, nil
	}
	d := datetime.Parse(text, format)
	if !d.IsValid() {
		return time.Time{}, fmt.Errorf("date %q does not match format %q", text, format)
	}
	return d.Time(), nil
}
