// Package config holds exporter-level preferences, separate from park
// documents: where output goes and how assembly is tuned. Preferences load
// from an optional exporter config file in the working directory and from
// EXPORTER_* environment variables; a missing file just means defaults.
package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Prefs are the exporter preferences. Park content never lives here.
type Prefs struct {
	// OutputDir is where export directories are created.
	OutputDir string `mapstructure:"output_dir"`
	// GroundSize overrides the synthesized ground slab's edge length; 0 means
	// the built-in default.
	GroundSize float32 `mapstructure:"ground_size"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`
}

// Default returns the default preferences.
func Default() Prefs {
	return Prefs{OutputDir: "./output"}
}

// Load reads preferences from exporter.{yaml,json,toml} in the working
// directory and EXPORTER_* env vars. A missing config file is not an error;
// a malformed one is.
func Load() (Prefs, error) {
	v := viper.New()
	v.SetConfigName("exporter")
	v.AddConfigPath(".")
	v.SetEnvPrefix("EXPORTER")
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("ground_size", d.GroundSize)
	v.SetDefault("verbose", d.Verbose)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return d, err
		}
	}

	var p Prefs
	if err := v.Unmarshal(&p); err != nil {
		return d, err
	}
	return p, nil
}
