// Package campaignprops builds a campaign property registry and prints what
// it holds.
package campaignprops

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	platformcmd "github.com/louisbranch/tabletop/internal/platform/cmd"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds the tool configuration. Flags override the environment.
type Config struct {
	LightsPath string `env:"TABLETOP_LIGHTS_PATH"`
	Locale     string `env:"TABLETOP_LOCALE" envDefault:"en-US"`
	Watch      bool
	Format     string
}

// ParseConfig reads the environment and then fs.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag set is required")
	}
	cfg := Config{Locale: "en-US", Format: FormatText}
	fs.StringVar(&cfg.LightsPath, "lights", cfg.LightsPath, "YAML file overriding the built-in light sources")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for operator alerts")
	fs.BoolVar(&cfg.Watch, "watch", false, "reload the lights file on change until interrupted")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format (text, yaml)")
	if err := platformcmd.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks flag combinations.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.Watch && strings.TrimSpace(c.LightsPath) == "" {
		return errors.New("-watch requires -lights")
	}
	return nil
}
