package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available guests",
	Long: `Shows the built-in guest and every compiled guest registered in the
configuration's guests section.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	guests := env.reg.List()

	fmt.Println("Available guests:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range guests {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range guests {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a guest.")
}
