package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/phanxgames/pinchpan"
)

// Config is the replay tool's tuning file. Keys that are absent keep
// their defaults.
type Config struct {
	Threshold float64 `toml:"threshold"`
	Gain      float64 `toml:"gain"`
	MinZoom   float64 `toml:"min_zoom"`
	MaxZoom   float64 `toml:"max_zoom"`
}

// DefaultConfig returns the recognizer defaults and the viewport zoom range.
func DefaultConfig() Config {
	return Config{
		Threshold: pinchpan.DefaultThreshold,
		Gain:      pinchpan.DefaultGain,
		MinZoom:   0.1,
		MaxZoom:   10,
	}
}

// LoadConfig reads path over the defaults. An empty path or a missing
// file yields the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()
	if path == "" {
		return conf, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return conf, nil
	}
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return conf, nil
}

// Validate checks the recognizer tuning and the zoom range.
func (c Config) Validate() error {
	if err := c.Recognizer().Validate(); err != nil {
		return err
	}
	if !(c.MinZoom > 0) || !(c.MaxZoom >= c.MinZoom) {
		return fmt.Errorf("%w: zoom range [%v, %v]", pinchpan.ErrInvalidConfig, c.MinZoom, c.MaxZoom)
	}
	return nil
}

// Recognizer returns the recognizer half of the config.
func (c Config) Recognizer() pinchpan.Config {
	return pinchpan.Config{Threshold: c.Threshold, Gain: c.Gain}
}
