// ABOUTME: Persistent CLI flags and the per-invocation setup they drive
// ABOUTME: Loads layered config, opens the log file, and activates the theme

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mauromedda/dsviz/internal/config"
	"github.com/mauromedda/dsviz/internal/eventbus"
	"github.com/mauromedda/dsviz/internal/keybindings"
	dlog "github.com/mauromedda/dsviz/internal/log"
	"github.com/mauromedda/dsviz/internal/termfix"
	"github.com/mauromedda/dsviz/internal/viz"
	"github.com/mauromedda/dsviz/pkg/tui/theme"
)

// skipSetup marks commands that must work without a valid config.
const skipSetup = "dsviz/skip-setup"

type globalFlags struct {
	verbose    bool
	logFile    string
	theme      string
	configFile string
}

// env is what setup produced for the running command.
type env struct {
	cfg     *config.Config
	keys    *keybindings.Manager
	bus     *eventbus.Bus[viz.Notice]
	mdStyle string
	closers []func() error
}

type cli struct {
	flags globalFlags
	env   env
}

func (c *cli) register(fs *pflag.FlagSet) {
	fs.BoolVarP(&c.flags.verbose, "verbose", "v", false, "debug logging")
	fs.StringVar(&c.flags.logFile, "log-file", "", "append log output to this file (env DSVIZ_LOG_FILE)")
	fs.StringVar(&c.flags.theme, "theme", "", "builtin theme (dark, light, monochrome) or a theme YAML file")
	fs.StringVar(&c.flags.configFile, "config", "", "config file to use instead of .dsviz/config.yaml")
}

// setup runs before every command not annotated with skipSetup.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[skipSetup] != "" {
		return nil
	}

	flags := map[string]*pflag.Flag{
		"theme":          cmd.Flags().Lookup("theme"),
		"log.file":       cmd.Flags().Lookup("log-file"),
		"delay.playback": cmd.Flags().Lookup("interval"),
	}
	cfg, err := config.Load(config.LoadOptions{File: c.flags.configFile, Flags: flags})
	if err != nil {
		return err
	}
	c.env.cfg = cfg

	if err := c.setupLog(cfg); err != nil {
		return err
	}

	name := cfg.Theme
	th, err := resolveTheme(name)
	if err != nil {
		dlog.Warn("%v; using the default theme", err)
		name = theme.Current().Name
	} else {
		theme.Set(th)
	}
	c.env.mdStyle = termfix.Apply(name)

	keys, unknown := keybindings.New(cfg.Keys)
	for _, a := range unknown {
		dlog.Warn("config keys: unknown action %q (valid: %s)", a, actionNames())
	}
	for _, cf := range keys.Conflicts() {
		dlog.Warn("config keys: %q is bound to %v", cf.Key, cf.Actions)
	}
	c.env.keys = keys

	c.env.bus = eventbus.New[viz.Notice](64)
	unsubscribe := c.env.bus.Subscribe(func(n viz.Notice) {
		dlog.Debug("%s: [%s] %s", n.Kind, n.Level, n.Text)
	})
	c.env.closers = append(c.env.closers, func() error { unsubscribe(); return nil })
	return nil
}

// vizOptions returns controller options wired to the notice bus.
func (c *cli) vizOptions() viz.Options {
	opts := c.env.cfg.VizOptions()
	opts.Bus = c.env.bus
	return opts
}

func (c *cli) setupLog(cfg *config.Config) error {
	switch {
	case c.flags.verbose:
		dlog.SetLevel(dlog.LevelDebug)
	case cfg.Log.Level != "":
		dlog.SetLevel(parseLevel(cfg.Log.Level))
	}
	if cfg.Log.File == "" {
		return nil
	}
	if err := config.EnsureDir(filepath.Dir(cfg.Log.File)); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}
	restore, err := dlog.OpenFile(cfg.Log.File)
	if err != nil {
		return err
	}
	c.env.closers = append(c.env.closers, restore)
	dlog.Debug("dsviz %s starting, config %+v", version, *cfg)
	return nil
}

// teardown releases what setup opened.
func (c *cli) teardown(*cobra.Command, []string) error {
	var first error
	for _, fn := range c.env.closers {
		if err := fn(); err != nil && first == nil {
			first = err
		}
	}
	c.env.closers = nil
	return first
}

// resolveTheme accepts a builtin name, a YAML path, or the name of a
// file in the themes directory.
func resolveTheme(name string) (*theme.Theme, error) {
	th, err := theme.Resolve(name)
	if err == nil {
		return th, nil
	}
	path := filepath.Join(config.ThemesDir(), name+".yaml")
	if _, statErr := os.Stat(path); statErr != nil {
		return nil, err
	}
	return theme.LoadFile(path)
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return dlog.LevelDebug
	case "warn":
		return dlog.LevelWarn
	case "error":
		return dlog.LevelError
	}
	return dlog.LevelInfo
}

func actionNames() string {
	names := make([]string, len(keybindings.Actions))
	for i, a := range keybindings.Actions {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}
