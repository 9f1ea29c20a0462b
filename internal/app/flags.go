package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim            string
	Scale          int
	TPS            int
	HoursPerSecond int
	Seed           int64
	HUDWidth       int
	Options        Options
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:            "firespread",
		Scale:          6,
		TPS:            60,
		HoursPerSecond: 2,
		Seed:           1337,
		HUDWidth:       300,
		Options:        Options{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.HoursPerSecond, "hps", c.HoursPerSecond, "simulated hours per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels (0 hides it)")
	fs.Var(c.Options, "set", "simulation option in key=value form (repeatable)")
}

// Options collects repeated key=value flags into the map handed to a sim
// factory.
type Options map[string]string

func (o Options) String() string {
	parts := make([]string, 0, len(o))
	for k, v := range o {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (o Options) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("option %q is not key=value", value)
	}
	o[key] = strings.TrimSpace(val)
	return nil
}
