// Package config loads the site configuration from site.toml.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Config is the site-level configuration. Every field has a working default;
// site.toml only needs to override what differs.
type Config struct {
	SiteURL   string `toml:"site_url"`
	SiteTitle string `toml:"site_title"`
	Lang      string `toml:"lang"`

	ContentDir string `toml:"content_dir"`
	OutputDir  string `toml:"output_dir"`
	StaticDir  string `toml:"static_dir"`

	// UTCOffsetMinutes fixes the club's local timezone for composing session
	// start instants. The timezone field of the meeting record is free text
	// and never parsed.
	UTCOffsetMinutes int `toml:"utc_offset_minutes"`

	ServeBind string `toml:"serve_bind"`
}

// Default returns the configuration used when no site.toml exists.
func Default() Config {
	return Config{
		SiteURL:          "https://bookclub.shab.boo",
		SiteTitle:        "باشگاه کتابخوانی گونیا",
		Lang:             "fa",
		ContentDir:       "content",
		OutputDir:        "public",
		StaticDir:        "static",
		UTCOffsetMinutes: 210, // +03:30
		ServeBind:        "127.0.0.1:8000",
	}
}

// Load reads the config file at path, applying defaults for absent fields.
// A missing file is not an error; the defaults stand.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Init writes the sample configuration to path unless a file already exists.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
