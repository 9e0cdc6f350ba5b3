package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/twinpal/internal/order"
	"github.com/san-kum/twinpal/internal/primality"
	"github.com/san-kum/twinpal/internal/survey"
)

const (
	DefaultMinLength = survey.DefaultMinLength
	DefaultMaxLength = survey.DefaultMaxLength
	DefaultWitnesses = primality.DefaultWitnesses
	DefaultSeed      = 1
	DefaultWorkers   = 1
	DefaultLogLevel  = "info"
	DefaultTheme     = "mono"
	DefaultSVGScale  = 4.0
)

type Config struct {
	MinLength int          `yaml:"min_length"`
	MaxLength int          `yaml:"max_length"`
	Order     string       `yaml:"order"`
	Oracle    string       `yaml:"oracle"`
	Witnesses int          `yaml:"witnesses"`
	Seed      int64        `yaml:"seed"`
	Workers   int          `yaml:"workers"`
	CacheSize int          `yaml:"cache_size"`
	LogLevel  string       `yaml:"log_level"`
	Output    OutputConfig `yaml:"output"`
}

type OutputConfig struct {
	Values   bool    `yaml:"values"`
	SVG      bool    `yaml:"svg"`
	PNG      bool    `yaml:"png"`
	Theme    string  `yaml:"theme"`
	SVGScale float64 `yaml:"svg_scale"`
}

func DefaultConfig() *Config {
	return &Config{
		MinLength: DefaultMinLength,
		MaxLength: DefaultMaxLength,
		Order:     string(order.Default),
		Oracle:    primality.KindMillerRabin,
		Witnesses: DefaultWitnesses,
		Seed:      DefaultSeed,
		Workers:   DefaultWorkers,
		LogLevel:  DefaultLogLevel,
		Output: OutputConfig{
			Theme:    DefaultTheme,
			SVGScale: DefaultSVGScale,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOnto(path, DefaultConfig())
}

// LoadOnto reads path over base, so keys missing from the file keep base's
// values. base is modified and returned.
func LoadOnto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, err
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Survey returns the search parameters.
func (c *Config) Survey() survey.Config {
	return survey.Config{
		MinLength: c.MinLength,
		MaxLength: c.MaxLength,
		Workers:   c.Workers,
		Oracle:    c.Oracle,
		Witnesses: c.Witnesses,
		Seed:      c.Seed,
		CacheSize: c.CacheSize,
	}
}

// Policy parses the ordering policy.
func (c *Config) Policy() (order.Policy, error) {
	return order.Parse(c.Order)
}
