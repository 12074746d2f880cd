package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wasm-arcade/internal/host"
)

var (
	passStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

var smokeCmd = &cobra.Command{
	Use:   "smoke <guest|file.wasm>",
	Short: "Check a guest against the ABI",
	Long: `Run a headless check of a Flappy guest through the ABI:

  init    - header reports a 320x240 screen and a title
  draw    - the opening frame is sky, ground and bird as opaque quads
  frames  - 60 frames without input run cleanly
  input   - a space press starts the game

Examples:
  arcade smoke flappy
  arcade smoke ./flappy.wasm`,
	Args: cobra.ExactArgs(1),
	RunE: runSmoke,
}

func runSmoke(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	sess, guest, err := openSession(ctx, args[0])
	if err != nil {
		return err
	}
	defer sess.Close(ctx)

	fmt.Printf("Smoke test - %s\n\n", guest.ID)

	checks, err := host.Smoke(ctx, sess)
	for _, c := range checks {
		fmt.Printf("  %s  %-7s %s\n", passStyle.Render("ok"), c.Name, c.Detail)
	}
	if err != nil {
		fmt.Printf("  %s  %v\n", failStyle.Render("FAIL"), err)
		return err
	}

	fmt.Println()
	fmt.Printf("All %d checks passed in %d frames.\n", len(checks), sess.Frames())
	return nil
}
