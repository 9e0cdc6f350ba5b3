package config

import (
	"sort"

	"github.com/san-kum/twinpal/internal/order"
	"github.com/san-kum/twinpal/internal/primality"
)

func preset(mutate func(c *Config)) *Config {
	c := DefaultConfig()
	mutate(c)
	return c
}

var Presets = map[string]*Config{
	"rug": DefaultConfig(),
	"quick": preset(func(c *Config) {
		c.MaxLength = 20
	}),
	"raw": preset(func(c *Config) {
		c.Order = string(order.Raw)
	}),
	"fringe": preset(func(c *Config) {
		c.Order = string(order.TrimStart)
	}),
	"exact": preset(func(c *Config) {
		c.MaxLength = 30
		c.Oracle = primality.KindExact
		c.CacheSize = 1 << 20
	}),
	"wide": preset(func(c *Config) {
		c.MaxLength = 47
		c.Workers = 8
		c.Output.SVG = true
	}),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
