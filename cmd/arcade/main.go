// arcade is a terminal host for wasm-arcade guests: it loads a guest, either
// compiled to WebAssembly or linked in natively, and plays it in the
// terminal or over SSH.
//
// Usage:
//
//	arcade list                  - List registered guests
//	arcade play <guest|file>     - Play a guest (id or .wasm path)
//	arcade menu                  - Pick guests interactively
//	arcade serve                 - Start SSH server for remote play
//	arcade scores <guest>        - Show high scores for a guest
//	arcade smoke <guest|file>    - Check a guest against the ABI
//	arcade config schema         - Print the configuration JSON schema
//
// Global flags:
//
//	--config <path>     - Configuration file
//	--fps <rate>        - Set frame rate (default from config: 60)
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--player <name>     - Name recorded with scores
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wasm-arcade/internal/config"
	"github.com/vovakirdan/wasm-arcade/internal/core"
	"github.com/vovakirdan/wasm-arcade/internal/host"
	"github.com/vovakirdan/wasm-arcade/internal/registry"
	"github.com/vovakirdan/wasm-arcade/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
	flagPlayer   string
)

// env is the state shared by every subcommand, set up before it runs.
var env struct {
	cfg    config.Config
	logger *log.Logger
	loader *host.WasmLoader
	reg    *registry.Registry
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "wasm-arcade - play WebAssembly games in your terminal",
	Long: `wasm-arcade runs guest games that speak the kagura ABI, either compiled
to WebAssembly or linked into the host, and renders them in your terminal.

Available commands:
  list     - Show all registered guests
  play     - Play a guest directly
  menu     - Interactive guest picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  smoke    - Check a guest against the ABI
  config   - Configuration helpers

Examples:
  arcade list
  arcade play flappy
  arcade play ./flappy.wasm
  arcade serve --ssh :2222
  arcade scores flappy`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (empty = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name recorded with scores (default $USER)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(smokeCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the configuration, applies flag overrides, and builds the
// logger and guest registry.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.Host.FPS = flagFPS
	}
	if flagDBPath != "" {
		cfg.Host.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Host.LogLevel = flagLogLevel
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	env.cfg = cfg

	env.logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	level, err := log.ParseLevel(cfg.Host.LogLevel)
	if err != nil {
		return err
	}
	env.logger.SetLevel(level)

	cacheDir, err := storage.ExpandHome(cfg.Host.CacheDir)
	if err != nil {
		return err
	}
	env.loader, err = host.NewWasmLoader(cacheDir)
	if err != nil {
		return err
	}

	env.reg, err = buildRegistry(cfg, env.loader)
	return err
}

func teardown(cmd *cobra.Command, _ []string) error {
	if env.loader == nil {
		return nil
	}
	return env.loader.Close(cmd.Context())
}

// buildRegistry registers the built-in Flappy guest and every compiled guest
// named in the configuration.
func buildRegistry(cfg config.Config, loader *host.WasmLoader) (*registry.Registry, error) {
	params, err := cfg.Flappy.Params()
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	err = reg.Add("flappy", params.Title, func(context.Context) (host.Module, error) {
		return host.NewNativeModule(params), nil
	})
	if err != nil {
		return nil, err
	}

	for _, g := range cfg.Guests {
		path := g.Path
		err := reg.Add(g.ID, g.Title, func(ctx context.Context) (host.Module, error) {
			mod, err := loader.LoadFile(ctx, path)
			if err != nil {
				return nil, err
			}
			return mod, nil
		})
		if err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// runtimeConfig derives the terminal runtime settings from the configuration.
func runtimeConfig(cfg config.Config, width, height int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height
	rc.TickRate = cfg.Host.FPS
	rc.HoldTicks = cfg.Host.HoldTicks
	return rc
}

// openStore opens the scores database, logging instead of failing so games
// still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(env.cfg.Host.DBPath)
	if err != nil {
		env.logger.Warn("could not open scores database", "path", env.cfg.Host.DBPath, "err", err)
		return nil
	}
	return store
}
