// Package config loads the dashboard description used by gaugedemo.
//
// Files are YAML. Environment variables prefixed with TXGAUGE_ override
// the scalar keys, e.g. TXGAUGE_INTERVAL=50ms or TXGAUGE_SOUND=true.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "TXGAUGE"

// Generator names understood by gaugedemo.
const (
	GenSweep  = "sweep"
	GenClock  = "clock"
	GenRandom = "random"
	// GenNone leaves the topics to someone else, e.g. a derived topic.
	GenNone = "none"
)

type Config struct {
	Interval time.Duration `mapstructure:"interval"`
	Columns  int           `mapstructure:"columns"`
	Sound    bool          `mapstructure:"sound"`
	// Size is the minimum width and height of every gauge.
	Size    float32   `mapstructure:"size"`
	Gauges  []Gauge   `mapstructure:"gauges"`
	Derived []Derived `mapstructure:"derived"`
	Presets []Preset  `mapstructure:"presets"`
}

// Preset declares an extra gauge preset, JSON as understood by presets.Decode.
type Preset struct {
	Name string `mapstructure:"name"`
	JSON string `mapstructure:"json"`
}

// Derived publishes Second-First on Topic whenever both were updated.
type Derived struct {
	Topic  string `mapstructure:"topic"`
	First  string `mapstructure:"first"`
	Second string `mapstructure:"second"`
}

// Gauge places one preset on the dashboard. Needle i follows Topics[i].
type Gauge struct {
	Preset    string   `mapstructure:"preset"`
	Topics    []string `mapstructure:"topics"`
	Generator string   `mapstructure:"generator"`
	// Offset and Scale map the generator output, value*Scale+Offset.
	Offset float64 `mapstructure:"offset"`
	Scale  float64 `mapstructure:"scale"`
}

// Default mirrors the four gauges of the original demo.
func Default() *Config {
	return &Config{
		Interval: 100 * time.Millisecond,
		Columns:  2,
		Size:     100,
		Gauges: []Gauge{
			{Preset: "Default", Topics: []string{"g1"}, Generator: GenSweep, Scale: 1},
			{Preset: "Clock", Topics: []string{"clock.hour", "clock.minute", "clock.second"}, Generator: GenClock, Scale: 1},
			{Preset: "Reversed", Topics: []string{"g2"}, Generator: GenSweep, Offset: 50, Scale: 1},
			{Preset: "Thermometer", Topics: []string{"g3"}, Generator: GenSweep, Offset: -40, Scale: 1.8},
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("interval", d.Interval)
	v.SetDefault("columns", d.Columns)
	v.SetDefault("sound", d.Sound)
	v.SetDefault("size", d.Size)
}

// Load reads path, an empty path gives the defaults with env overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config.Load failed: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load failed: %w", err)
	}
	if len(cfg.Gauges) == 0 {
		cfg.Gauges = Default().Gauges
	}
	for i := range cfg.Gauges {
		if cfg.Gauges[i].Scale == 0 {
			cfg.Gauges[i].Scale = 1
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	}
	if c.Columns <= 0 {
		return fmt.Errorf("columns must be positive, got %d", c.Columns)
	}
	if c.Size < 0 {
		return fmt.Errorf("size must not be negative, got %v", c.Size)
	}
	var errs []error
	for i, g := range c.Gauges {
		if g.Preset == "" {
			errs = append(errs, fmt.Errorf("gauges[%d]: missing preset", i))
		}
		if len(g.Topics) == 0 {
			errs = append(errs, fmt.Errorf("gauges[%d]: no topics", i))
		}
		switch g.Generator {
		case "", GenSweep, GenClock, GenRandom, GenNone:
		default:
			errs = append(errs, fmt.Errorf("gauges[%d]: unknown generator %q", i, g.Generator))
		}
	}
	for i, p := range c.Presets {
		if p.Name == "" || p.JSON == "" {
			errs = append(errs, fmt.Errorf("presets[%d]: name and json are required", i))
		}
	}
	for i, d := range c.Derived {
		if d.Topic == "" || d.First == "" || d.Second == "" {
			errs = append(errs, fmt.Errorf("derived[%d]: topic, first and second are required", i))
		}
	}
	return errors.Join(errs...)
}
