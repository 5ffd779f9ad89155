// ABOUTME: Configuration model: capacities, animation delays, seeds, theme, history and keys
// ABOUTME: Field tags use mapstructure for viper and yaml for the file written by config init

package config

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/mauromedda/dsviz/internal/viz"
	"github.com/mauromedda/dsviz/pkg/ds/seq"
	"github.com/mauromedda/dsviz/pkg/ds/tree"
	"github.com/mauromedda/dsviz/pkg/history"
)

// Config is the merged configuration.
type Config struct {
	Capacity CapacityConfig      `mapstructure:"capacity" yaml:"capacity"`
	Delay    DelayConfig         `mapstructure:"delay" yaml:"delay"`
	Seed     SeedConfig          `mapstructure:"seed" yaml:"seed"`
	History  HistoryConfig       `mapstructure:"history" yaml:"history"`
	Theme    string              `mapstructure:"theme" yaml:"theme"`
	Keys     map[string][]string `mapstructure:"keys" yaml:"keys,omitempty"`
	Log      LogConfig           `mapstructure:"log" yaml:"log"`
}

// CapacityConfig holds the element limit of each structure.
type CapacityConfig struct {
	Array int `mapstructure:"array" yaml:"array"`
	List  int `mapstructure:"list" yaml:"list"`
	Stack int `mapstructure:"stack" yaml:"stack"`
	Queue int `mapstructure:"queue" yaml:"queue"`
	Tree  int `mapstructure:"tree" yaml:"tree"`
}

// DelayConfig holds animation timings.
type DelayConfig struct {
	Playback   time.Duration `mapstructure:"playback" yaml:"playback"`
	Search     time.Duration `mapstructure:"search" yaml:"search"`
	TreeSearch time.Duration `mapstructure:"tree_search" yaml:"tree_search"`
	Traversal  time.Duration `mapstructure:"traversal" yaml:"traversal"`
}

// MarshalYAML writes durations as "800ms" rather than nanoseconds.
func (d DelayConfig) MarshalYAML() (any, error) {
	return map[string]string{
		"playback":    d.Playback.String(),
		"search":      d.Search.String(),
		"tree_search": d.TreeSearch.String(),
		"traversal":   d.Traversal.String(),
	}, nil
}

// SeedConfig holds the initial contents of each structure.
type SeedConfig struct {
	Array []int `mapstructure:"array" yaml:"array,flow"`
	List  []int `mapstructure:"list" yaml:"list,flow"`
	Stack []int `mapstructure:"stack" yaml:"stack,flow"`
	Queue []int `mapstructure:"queue" yaml:"queue,flow"`
	Tree  []int `mapstructure:"tree" yaml:"tree,flow"`
}

// HistoryConfig bounds the undo timeline. Limit 0 keeps every step.
type HistoryConfig struct {
	Limit int `mapstructure:"limit" yaml:"limit"`
}

// LogConfig selects debug logging.
type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	o := viz.DefaultOptions()
	return Config{
		Capacity: CapacityConfig{
			Array: seq.ArrayMax,
			List:  seq.ListMax,
			Stack: seq.StackMax,
			Queue: seq.QueueMax,
			Tree:  tree.MaxNodes,
		},
		Delay: DelayConfig{
			Playback:   history.DefaultInterval,
			Search:     o.Delays.Search,
			TreeSearch: o.Delays.TreeSearch,
			Traversal:  o.Delays.Traversal,
		},
		Seed: SeedConfig{
			Array: o.Seeds.Array,
			List:  o.Seeds.List,
			Stack: []int{},
			Queue: []int{},
			Tree:  o.Seeds.Tree,
		},
		History: HistoryConfig{Limit: 0},
		Theme:   "dark",
		Log:     LogConfig{Level: "info"},
	}
}

// maxTreeNodes keeps the tree layout within a reasonable terminal width.
const maxTreeNodes = 31

// Validate rejects settings no visualizer can run with.
func (c *Config) Validate() error {
	caps := []struct {
		name  string
		value int
		seed  []int
	}{
		{"capacity.array", c.Capacity.Array, c.Seed.Array},
		{"capacity.list", c.Capacity.List, c.Seed.List},
		{"capacity.stack", c.Capacity.Stack, c.Seed.Stack},
		{"capacity.queue", c.Capacity.Queue, c.Seed.Queue},
		{"capacity.tree", c.Capacity.Tree, c.Seed.Tree},
	}
	for _, cp := range caps {
		if cp.value <= 0 {
			return errors.WithHintf(errors.Newf("%s must be positive, got %d", cp.name, cp.value),
				"remove the key to use the default")
		}
		if len(cp.seed) > cp.value {
			return errors.WithHintf(errors.Newf("%s: %d seed values exceed the capacity of %d", cp.name, len(cp.seed), cp.value),
				"shorten the seed list or raise %s", cp.name)
		}
	}
	if c.Capacity.Tree > maxTreeNodes {
		return errors.WithHintf(errors.Newf("capacity.tree must be at most %d, got %d", maxTreeNodes, c.Capacity.Tree),
			"wide trees do not fit a terminal")
	}

	delays := map[string]time.Duration{
		"delay.playback":    c.Delay.Playback,
		"delay.search":      c.Delay.Search,
		"delay.tree_search": c.Delay.TreeSearch,
		"delay.traversal":   c.Delay.Traversal,
	}
	for name, d := range delays {
		if d <= 0 {
			return errors.WithHint(errors.Newf("%s must be positive, got %s", name, d),
				`durations look like "800ms" or "1s"`)
		}
	}
	if c.History.Limit < 0 {
		return errors.Newf("history.limit must not be negative, got %d", c.History.Limit)
	}
	if c.Theme == "" {
		return errors.New("theme must not be empty")
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.Newf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}

// VizOptions converts the configuration into controller options.
func (c *Config) VizOptions() viz.Options {
	return viz.Options{
		Limits: viz.Limits{
			Array: c.Capacity.Array,
			List:  c.Capacity.List,
			Stack: c.Capacity.Stack,
			Queue: c.Capacity.Queue,
			Tree:  c.Capacity.Tree,
		},
		Delays: viz.Delays{
			Playback:   c.Delay.Playback,
			Search:     c.Delay.Search,
			TreeSearch: c.Delay.TreeSearch,
			Traversal:  c.Delay.Traversal,
		},
		Seeds: viz.Seeds{
			Array: c.Seed.Array,
			List:  c.Seed.List,
			Stack: c.Seed.Stack,
			Queue: c.Seed.Queue,
			Tree:  c.Seed.Tree,
		},
		HistoryLimit: c.History.Limit,
	}
}
