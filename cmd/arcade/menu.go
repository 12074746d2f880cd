package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wasm-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a guest picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a guest.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select guest
  Tab          - High scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	closeLog, err := logToFile()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig(env.cfg, 0, 0)
	cfg.ScreenW, cfg.ScreenH = terminalSize()

	for {
		result, err := tui.RunMenu(env.reg, store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(env.reg, store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		sess, guest, err := openSession(ctx, result.Guest.ID)
		if err != nil {
			env.logger.Error("cannot start guest", "guest", result.Guest.ID, "err", err)
			continue
		}
		guest.Title = result.Guest.Title

		back, err := tui.Run(ctx, sess, guest, playerName(), store, env.logger, cfg)
		if err != nil {
			env.logger.Error("guest stopped", "guest", guest.ID, "err", err)
			continue
		}
		if !back {
			return nil
		}
	}
}
