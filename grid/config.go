package grid

import "gopkg.in/yaml.v2"

// Config describes a board to generate. A zero Seed means New seeds the
// board's random source from the wall clock.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Mines  int   `yaml:"mines"`
	Traps  int   `yaml:"traps"`
	Cursed int   `yaml:"cursed"`
	Seed   int64 `yaml:"seed"`
}

func DefaultConfig() Config {
	return Config{
		Width:  30,
		Height: 16,
		Mines:  99,
	}
}

// Validate checks the board parameters and returns a ConfigurationError for
// any violation. It is pure and performs no allocation; New calls it strictly
// before the allocators run, which is what guarantees the rejection-sampling
// loops terminate. The maximum-mines rule requires at least one safe cell
// beyond the mines themselves, and hazards must leave at least one plain
// safe cell on top of that.
func (config Config) Validate() error {
	total := config.Width * config.Height
	switch {
	case config.Width <= 0, config.Height <= 0:
	case config.Mines < 0, config.Traps < 0, config.Cursed < 0:
	case config.Mines >= total-1:
	case config.Mines+config.Traps+config.Cursed >= total-1:
	default:
		return nil
	}

	return &ConfigurationError{
		Width:  config.Width,
		Height: config.Height,
		Mines:  config.Mines,
		Traps:  config.Traps,
		Cursed: config.Cursed,
	}
}

// LoadConfig parses a YAML board preset. Fields absent from the document keep
// their DefaultConfig values. Parameter validation is left to New.
func LoadConfig(in []byte) (Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(in, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}
