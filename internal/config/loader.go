// ABOUTME: Layered config loading with viper: defaults, global file, project file, env, flags
// ABOUTME: WriteDefault renders the built-in settings as YAML for config init

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// envPrefix is the environment variable prefix: DSVIZ_DELAY_PLAYBACK=1s.
const envPrefix = "DSVIZ"

// LoadOptions selects the files and flags Load layers together.
type LoadOptions struct {
	// GlobalFile defaults to GlobalConfigFile().
	GlobalFile string
	// ProjectRoot locates .dsviz/config.yaml; empty means the cwd.
	ProjectRoot string
	// File, when set, replaces the project file and must exist.
	File string
	// Flags maps config keys to command-line flags. Only flags the user
	// actually set override the lower layers.
	Flags map[string]*pflag.Flag
}

// Load merges defaults < global file < project file < DSVIZ_* env vars <
// flags, then validates the result. Missing files are not an error.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	global := opts.GlobalFile
	if global == "" {
		global = GlobalConfigFile()
	}
	if err := mergeFile(v, global, false); err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, required := opts.File, true
	if project == "" {
		root := opts.ProjectRoot
		if root == "" {
			root = "."
		}
		project, required = ProjectConfigFile(root), false
	}
	if err := mergeFile(v, project, required); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	for key, f := range opts.Flags {
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", f.Name, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// mergeFile layers path over what v already holds.
func mergeFile(v *viper.Viper, path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return err
	}
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

func applyDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("capacity.array", d.Capacity.Array)
	v.SetDefault("capacity.list", d.Capacity.List)
	v.SetDefault("capacity.stack", d.Capacity.Stack)
	v.SetDefault("capacity.queue", d.Capacity.Queue)
	v.SetDefault("capacity.tree", d.Capacity.Tree)

	v.SetDefault("delay.playback", d.Delay.Playback)
	v.SetDefault("delay.search", d.Delay.Search)
	v.SetDefault("delay.tree_search", d.Delay.TreeSearch)
	v.SetDefault("delay.traversal", d.Delay.Traversal)

	v.SetDefault("seed.array", d.Seed.Array)
	v.SetDefault("seed.list", d.Seed.List)
	v.SetDefault("seed.stack", d.Seed.Stack)
	v.SetDefault("seed.queue", d.Seed.Queue)
	v.SetDefault("seed.tree", d.Seed.Tree)

	v.SetDefault("history.limit", d.History.Limit)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}

// Marshal renders cfg as a YAML document.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// WriteDefault writes the built-in configuration to path, creating parent
// directories. An existing file is kept unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	data, err := Marshal(Default())
	if err != nil {
		return err
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	header := []byte("# dsviz configuration. Remove a key to fall back to the default.\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
