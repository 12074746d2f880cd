package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wasm-arcade/internal/host"
	"github.com/vovakirdan/wasm-arcade/internal/platform/tui"
	"github.com/vovakirdan/wasm-arcade/internal/registry"
	"github.com/vovakirdan/wasm-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <guest|file.wasm>",
	Short: "Play a guest",
	Long: `Start playing the specified guest: a registered id or a path to a
compiled .wasm module.

Terminals report key presses but not releases, so a key counts as held for
a few frames after its last event (host.hold_ticks in the configuration).

Controls:
  Space/Up/Click - Flap (any other key is passed to the guest)
  Esc            - Back
  Ctrl+S         - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C       - Quit

Examples:
  arcade play flappy
  arcade play ./flappy.wasm
  arcade play flappy --fps 30
  arcade play flappy --config ./my-arcade.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	sess, guest, err := openSession(ctx, args[0])
	if err != nil {
		return err
	}

	closeLog, err := logToFile()
	if err != nil {
		_ = sess.Close(ctx)
		return err
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	_, err = tui.Run(ctx, sess, guest, playerName(), store, env.logger, runtimeConfig(env.cfg, width, height))
	return err
}

// openSession starts a guest given its registered id or a .wasm path.
func openSession(ctx context.Context, target string) (*host.Session, registry.GuestInfo, error) {
	var (
		mod   host.Module
		guest registry.GuestInfo
	)

	if strings.HasSuffix(target, ".wasm") {
		wasmMod, err := env.loader.LoadFile(ctx, target)
		if err != nil {
			return nil, guest, err
		}
		mod = wasmMod
		guest.ID = strings.TrimSuffix(filepath.Base(target), ".wasm")
	} else {
		if !env.reg.Exists(target) {
			return nil, guest, fmt.Errorf("unknown guest %q; run 'arcade list' to see available guests", target)
		}
		m, err := env.reg.Create(ctx, target)
		if err != nil {
			return nil, guest, err
		}
		mod = m
		guest.ID = target
	}

	sess, err := host.NewSession(ctx, mod, env.logger)
	if err != nil {
		_ = mod.Close(ctx)
		return nil, guest, err
	}
	guest.Title = sess.Info().Title
	return sess, guest, nil
}

// terminalSize returns the size of the controlling terminal, or 80×24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// playerName returns the --player flag, or the login name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	return os.Getenv("USER")
}

// logToFile sends log output to ~/.arcade/arcade.log while a full-screen
// program owns the terminal.
func logToFile() (func(), error) {
	path, err := storage.ExpandHome("~/.arcade/arcade.log")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}

	env.logger.SetOutput(f)
	return func() {
		env.logger.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
