package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable Config reads.
const EnvPrefix = "PREREQLAB_"

// Config controls runtime behavior for the lab.
type Config struct {
	LogPath     string   `env:"LOG"`
	Debug       bool     `env:"DEBUG"`
	ASCIIOnly   bool     `env:"ASCII"`
	JournalPath string   `env:"JOURNAL"`
	StartTopic  string   `env:"TOPIC"`
	CellWidthPx int      `env:"CELL_WIDTH_PX"`
	UI          UIConfig `envPrefix:"UI_"`
}

type UIConfig struct {
	StyleVariant string `env:"STYLE"`
	MotionLevel  string `env:"MOTION"`
}

func DefaultConfig() Config {
	return Config{
		CellWidthPx: 8,
		UI: UIConfig{
			StyleVariant: "lab_dark",
			MotionLevel:  "full",
		},
	}
}

// LoadConfig starts from DefaultConfig and applies PREREQLAB_* variables.
// A nil environ reads the process environment.
func LoadConfig(environ map[string]string) (Config, error) {
	cfg := DefaultConfig()
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.CellWidthPx == 0 {
		c.CellWidthPx = 8
	}
	if c.CellWidthPx < 1 || c.CellWidthPx > 64 {
		return fmt.Errorf("invalid cell width %dpx (want 1-64)", c.CellWidthPx)
	}
	switch c.UI.StyleVariant {
	case "", "lab_dark", "retro_terminal":
	default:
		return fmt.Errorf("invalid ui style variant %q", c.UI.StyleVariant)
	}
	if c.UI.StyleVariant == "" {
		c.UI.StyleVariant = "lab_dark"
	}
	switch c.UI.MotionLevel {
	case "", "off", "reduced", "full":
	default:
		return fmt.Errorf("invalid ui motion level %q", c.UI.MotionLevel)
	}
	if c.UI.MotionLevel == "" {
		c.UI.MotionLevel = "full"
	}
	return nil
}
